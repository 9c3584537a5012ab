package content

import "slices"

// ServiceItem is one entry of the services section.
type ServiceItem struct {
	ID          int    `yaml:"id" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// ProductSummary is a featured product card on the home page.
type ProductSummary struct {
	ID          int    `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// ProductDetail is a full catalog entry on the products page.
// Applications is expected to be non-empty but is not enforced.
type ProductDetail struct {
	ID           int      `yaml:"id" validate:"required"`
	Name         string   `yaml:"name" validate:"required"`
	Description  string   `yaml:"description"`
	Details      string   `yaml:"details"`
	Applications []string `yaml:"applications"`
	Icon         string   `yaml:"icon"`
	Image        string   `yaml:"image,omitempty"`
}

func (p ProductDetail) clone() ProductDetail {
	p.Applications = slices.Clone(p.Applications)
	return p
}

// Testimonial is a customer quote.
type Testimonial struct {
	ID     int    `yaml:"id" validate:"required"`
	Text   string `yaml:"text" validate:"required"`
	Author string `yaml:"author"`
}

// Milestone is one step of the company history. Year is a display label
// ("2000s", "2015+"), never parsed; order is the document order.
type Milestone struct {
	Year        string `yaml:"year" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// FooterLink points at an in-page section anchor.
type FooterLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href" validate:"required,startswith=#"`
}

// ContactInfo is a footer contact line; Label is an icon glyph.
type ContactInfo struct {
	Label string `yaml:"label"`
	Value string `yaml:"value" validate:"required"`
}

// Company holds the hero and branding copy.
type Company struct {
	Name     string `yaml:"name" validate:"required"`
	Tagline  string `yaml:"tagline"`
	Headline string `yaml:"headline"`
	Summary  string `yaml:"summary"`
}

// Document is the YAML shape of the site content.
type Document struct {
	Company Company `yaml:"company"`
	About   struct {
		Highlights []string `yaml:"highlights"`
	} `yaml:"about"`
	Milestones       []Milestone      `yaml:"milestones" validate:"dive"`
	Services         []ServiceItem    `yaml:"services" validate:"unique=ID,dive"`
	FeaturedProducts []ProductSummary `yaml:"featured_products" validate:"unique=ID,dive"`
	Products         []ProductDetail  `yaml:"products" validate:"unique=ID,dive"`
	Testimonials     []Testimonial    `yaml:"testimonials" validate:"unique=ID,dive"`
	Footer           struct {
		QuickLinks  []FooterLink  `yaml:"quick_links" validate:"dive"`
		ContactInfo []ContactInfo `yaml:"contact_info" validate:"dive"`
	} `yaml:"footer"`
}
