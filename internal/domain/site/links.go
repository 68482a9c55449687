package site

// Outbound contact points. They are displayed verbatim and never templated
// beyond the fixed prefill text.
const (
	WhatsAppNumber  = "+61 400 123 456"
	WhatsAppLink    = "https://wa.me/61400123456"
	WhatsAppPrefill = "https://wa.me/61400123456?text=Hi%20Build50%2C%20I%20want%20a%20website..."
	EmailAddress    = "hello@build50.com"
	OfficeHours     = "Mon-Fri: 9am - 5pm (AEST)"
	OfficeLocation  = "Melbourne, Australia"
	BrandName       = "Build50"
)
