package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/build50/build50/internal/validation"
	siteerrors "github.com/build50/build50/pkg/errors"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// EmbeddedPath is the pseudo-path reported in errors for the built-in catalog.
const EmbeddedPath = "<embedded>/catalog.yaml"

// DefaultPackageName is preselected on the contact form.
const DefaultPackageName = "Growth"

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// addOnSet holds one record list per category. Keeping a field per category
// (instead of a map) lets AddOns switch exhaustively over the closed set.
type addOnSet struct {
	Web     []AddOnRecord `yaml:"web" validate:"min=1,dive"`
	SEO     []AddOnRecord `yaml:"seo" validate:"min=1,dive"`
	Social  []AddOnRecord `yaml:"social" validate:"min=1,dive"`
	Auto    []AddOnRecord `yaml:"auto" validate:"min=1,dive"`
	Maint   []AddOnRecord `yaml:"maint" validate:"min=1,dive"`
	Premium []AddOnRecord `yaml:"premium" validate:"min=1,dive"`
}

type document struct {
	AddOns       addOnSet      `yaml:"addons"`
	Packages     []Package     `yaml:"packages" validate:"min=1,dive"`
	Testimonials []Testimonial `yaml:"testimonials" validate:"dive"`
	Process      []ProcessStep `yaml:"process" validate:"dive"`
}

// Catalog is the read-only content the pages render.
type Catalog struct {
	doc document
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. The embedded file is validated by
// tests, so a failure here is a build defect and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(EmbeddedPath, embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load reads and validates a catalog override from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, siteerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates catalog YAML. Unknown keys are rejected so a
// misspelt category cannot silently drop its records.
func Parse(path string, data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, siteerrors.NewParseError(path, 0, errors.New("catalog is empty"))
		}
		return nil, siteerrors.NewParseError(path, extractLine(err), err)
	}

	if err := validation.Struct(doc); err != nil {
		return nil, err
	}

	c := &Catalog{doc: doc}
	if _, ok := c.Package(DefaultPackageName); !ok {
		return nil, siteerrors.NewValidationError("packages", fmt.Sprintf("default package %q is missing", DefaultPackageName), nil)
	}
	return c, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}

// AddOns returns the records for category in declared order. The slice is a
// copy; unknown categories yield nil.
func (c *Catalog) AddOns(category AddOnCategory) []AddOnRecord {
	var src []AddOnRecord
	switch category {
	case CategoryWeb:
		src = c.doc.AddOns.Web
	case CategorySEO:
		src = c.doc.AddOns.SEO
	case CategorySocial:
		src = c.doc.AddOns.Social
	case CategoryAuto:
		src = c.doc.AddOns.Auto
	case CategoryMaint:
		src = c.doc.AddOns.Maint
	case CategoryPremium:
		src = c.doc.AddOns.Premium
	default:
		return nil
	}
	out := make([]AddOnRecord, len(src))
	copy(out, src)
	return out
}

// Packages returns the subscription tiers in declared order.
func (c *Catalog) Packages() []Package {
	out := make([]Package, len(c.doc.Packages))
	copy(out, c.doc.Packages)
	return out
}

// Package looks up a tier by name.
func (c *Catalog) Package(name string) (Package, bool) {
	for _, p := range c.doc.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return Package{}, false
}

// PackageNames lists tier names in declared order.
func (c *Catalog) PackageNames() []string {
	names := make([]string, 0, len(c.doc.Packages))
	for _, p := range c.doc.Packages {
		names = append(names, p.Name)
	}
	return names
}

// Testimonials returns the customer quotes.
func (c *Catalog) Testimonials() []Testimonial {
	out := make([]Testimonial, len(c.doc.Testimonials))
	copy(out, c.doc.Testimonials)
	return out
}

// Process returns the engagement steps in order.
func (c *Catalog) Process() []ProcessStep {
	out := make([]ProcessStep, len(c.doc.Process))
	copy(out, c.doc.Process)
	return out
}
