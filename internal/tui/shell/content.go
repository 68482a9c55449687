package shell

// Static page copy. Catalog data (packages, add-ons, testimonials, process)
// lives in the catalog; this is the prose around it.

type titledText struct {
	title string
	text  string
}

var (
	heroBadge    = "★ Trusted by Australian Businesses"
	heroTitle    = "Helping Australian Small Businesses Grow Online"
	heroSubtitle = "Modern websites, SEO, social media, and digital automation, designed to make your business thrive without the agency price tag."

	homeHighlights = []string{
		"Fast delivery (7–14 days)",
		"Direct WhatsApp support",
		"Built-in security & backups",
		"SEO-ready structure",
	}

	homeProblems = []string{
		"Website looks outdated or doesn't work on mobile",
		"No time to post on social media consistently",
		"Paying too much for agencies with slow service",
		"Confused by SEO, domains, and tech jargon",
	}

	homeSolutions = []string{
		"Modern, fast websites built in 7 days",
		"Social media managed for you automatically",
		"Fixed monthly pricing, no hidden fees",
		"We handle all the tech, hosting & security",
	}

	homeServices = []titledText{
		{"Websites", "Modern, responsive, animated"},
		{"SEO", "Rank higher and attract clients"},
		{"Social Media", "Stay consistent without stress"},
		{"Automation", "Save time with smart workflows"},
	}

	homeBefore = []string{"Outdated website", "No Google visibility", "Low enquiry rate", "Manual follow-ups", "Inconsistent branding"}
	homeAfter  = []string{"Fast modern website", "SEO-ready structure", "Lead capture systems", "Automated responses", "Professional branding"}

	homeTruths = []string{
		"You don’t need a $5,000 website to grow.",
		"Fancy designs mean nothing without SEO.",
		"Posting daily on social media is unnecessary.",
		"Speed and structure matter more than visuals.",
		"Automation saves more money than ads.",
	}

	servicesIntro = "At Build50, we offer simple, affordable, Australian-focused digital services that help businesses get online, grow, and scale. Whether you're just starting or ready for automation, our monthly plans provide everything you need."

	servicesWhatWeDo = []titledText{
		{"Website Development", "Fast, modern, animated websites. Includes dark/light mode and mobile-first design."},
		{"SEO Optimisation", "Rank better on Google and attract customers with speed optimisation, schema markup, and keyword strategy."},
		{"Branding & Identity", "Complete visual identity packages including logo design, colour palettes, fonts, and professional templates."},
		{"Social Media Management", "Consistent posting, engaging captions, and content strategy to keep your audience growing across platforms."},
		{"Business Automation", "Save time with auto-emails, WhatsApp auto-responses, lead funnels, and streamlined sales workflows."},
		{"Security Monitoring", "Sleep easy with daily security checks, automated backups, and protection against online threats."},
	}

	aboutIntro   = "Build50 was created with a simple idea: help Australian small businesses get a modern website without paying agency prices."
	aboutOrigin  = "As a founder who grew up around hardworking tradespeople, retail owners, and local services, I saw one thing in common."
	aboutQuote   = "“Everyone wants more customers, but no one has the time or budget for a $5,000+ agency website.”"
	aboutMission = []string{
		"To give every Australian business a fast, beautiful, affordable online presence without the stress, confusing tech jargon, or massive upfront cost.",
		"We bridge the gap between expensive agencies and low-quality DIY builders by providing fixed-price, subscription websites that grow with you.",
	}

	aboutHowWeHelp = []string{
		"Responsive websites that look premium and convert clients",
		"SEO foundations to rank on Google and bring in customers",
		"Social media systems that keep their brand active",
		"Automation that saves hours of time each week",
		"Monthly support so your site never becomes “outdated” again",
	}

	aboutWhatWeDo = []titledText{
		{"Web Design", "Clean, modern, mobile-first websites built to convert."},
		{"SEO & Growth", "Basic to advanced SEO strategies that help you get found."},
		{"Social & Brand", "Content, branding kits, templates, and assets."},
		{"Automation", "CRM setup, lead tracking, automated follow-ups."},
		{"Management", "Changes, updates, maintenance, monitoring, security."},
		{"Fast Turnaround", "Most builds delivered within 7–14 days."},
	}

	aboutWhyUs = []titledText{
		{"Local Support", "We operate on Aussie time, answer fast, and communicate clearly."},
		{"Fixed Pricing", "No hidden fees, no surprises. Just predictable monthly plans."},
		{"Fast Delivery", "Most sites are delivered in 1–2 weeks, not months."},
		{"Real Humans", "No overseas call centres. You speak directly to the person doing the work."},
		{"Small Biz Friendly", "We understand Aussie small business culture: trust, fairness, straight talk."},
		{"Secure & Reliable", "Australian hosting partners, fast load times, and security monitoring."},
	}

	aboutIndustries = []string{"Trades", "Health", "Retail", "Hospitality", "Education", "Services"}

	aboutStats = []titledText{
		{"10 Days", "Avg Build Time"},
		{"< 2 Hrs", "Response Time"},
		{"90%+", "Client Renewal"},
		{"100%", "Aussie Owned"},
	}

	aboutTech = []string{"React", "Next.js", "Tailwind CSS", "Vercel", "TypeScript", "Framer Motion", "Shopify"}

	privacyUpdated  = "November 26, 2025"
	privacySections = []titledText{
		{"1. Introduction", "Build50 (\"we\", \"us\", \"our\") respects your privacy. This policy explains what personal data we collect, how we use it, and your rights."},
		{"2. Information we collect", "Contact information you provide (name, email, phone, business name) when using our contact or booking forms. Usage data collected via server logs and analytics."},
	}
	privacyUses = []string{
		"To respond to enquiries and provide services.",
		"To send transactional emails.",
		"To improve and secure our site.",
	}

	footerServices = []string{"Web Design", "Branding", "Automation", "SEO Management"}
)
