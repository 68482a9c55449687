package catalog

// AddOnCategory identifies one of the six fixed add-on groupings.
type AddOnCategory string

const (
	CategoryWeb     AddOnCategory = "web"
	CategorySEO     AddOnCategory = "seo"
	CategorySocial  AddOnCategory = "social"
	CategoryAuto    AddOnCategory = "auto"
	CategoryMaint   AddOnCategory = "maint"
	CategoryPremium AddOnCategory = "premium"
)

var categories = []AddOnCategory{
	CategoryWeb,
	CategorySEO,
	CategorySocial,
	CategoryAuto,
	CategoryMaint,
	CategoryPremium,
}

// Categories returns the categories in declared (display) order.
func Categories() []AddOnCategory {
	out := make([]AddOnCategory, len(categories))
	copy(out, categories)
	return out
}

// DefaultCategory is the first declared category.
func DefaultCategory() AddOnCategory {
	return categories[0]
}

// Valid reports whether c belongs to the closed category set.
func (c AddOnCategory) Valid() bool {
	switch c {
	case CategoryWeb, CategorySEO, CategorySocial, CategoryAuto, CategoryMaint, CategoryPremium:
		return true
	default:
		return false
	}
}

// Label returns the tab label for the category.
func (c AddOnCategory) Label() string {
	switch c {
	case CategoryWeb:
		return "Website & Design"
	case CategorySEO:
		return "SEO & Marketing"
	case CategorySocial:
		return "Social Media & Content"
	case CategoryAuto:
		return "Automation & Tech"
	case CategoryMaint:
		return "Maintenance & Security"
	case CategoryPremium:
		return "Premium / Special Services"
	default:
		return string(c)
	}
}

// AddOnRecord is a one-off purchasable service. Price is display text because
// it carries ranges and per-period suffixes.
type AddOnRecord struct {
	Name        string `yaml:"name" json:"name" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
	Price       string `yaml:"price" json:"price" validate:"required"`
}

// Package is a monthly subscription tier.
type Package struct {
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Price       string   `yaml:"price" json:"price" validate:"required"`
	Period      string   `yaml:"period" json:"period"`
	Description string   `yaml:"description" json:"description" validate:"required"`
	Features    []string `yaml:"features" json:"features" validate:"min=1,dive,required"`
	Highlight   bool     `yaml:"highlight" json:"highlight"`
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name string `yaml:"name" json:"name" validate:"required"`
	Role string `yaml:"role" json:"role"`
	Text string `yaml:"text" json:"text" validate:"required"`
}

// ProcessStep is one stage of the engagement process shown on the about page.
type ProcessStep struct {
	Step        string `yaml:"step" json:"step" validate:"required"`
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description" validate:"required"`
}
