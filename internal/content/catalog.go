package content

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is the immutable site content handed to the render functions.
// It is built once from a Document; every accessor returns a copy so no
// caller can change what the next reader sees.
type Catalog struct {
	company          Company
	highlights       []string
	milestones       []Milestone
	services         []ServiceItem
	featuredProducts []ProductSummary
	products         []ProductDetail
	testimonials     []Testimonial
	quickLinks       []FooterLink
	contactInfo      []ContactInfo
}

// NewCatalog copies doc into a Catalog. Footer links without a label get one
// derived from their anchor ("#about-us" becomes "About Us").
func NewCatalog(doc Document) *Catalog {
	links := slices.Clone(doc.Footer.QuickLinks)
	for i := range links {
		if links[i].Label == "" {
			links[i].Label = labelFromHref(links[i].Href)
		}
	}

	products := make([]ProductDetail, len(doc.Products))
	for i, p := range doc.Products {
		products[i] = p.clone()
	}

	return &Catalog{
		company:          doc.Company,
		highlights:       slices.Clone(doc.About.Highlights),
		milestones:       slices.Clone(doc.Milestones),
		services:         slices.Clone(doc.Services),
		featuredProducts: slices.Clone(doc.FeaturedProducts),
		products:         products,
		testimonials:     slices.Clone(doc.Testimonials),
		quickLinks:       links,
		contactInfo:      slices.Clone(doc.Footer.ContactInfo),
	}
}

func (c *Catalog) Company() Company                   { return c.company }
func (c *Catalog) Highlights() []string               { return slices.Clone(c.highlights) }
func (c *Catalog) Milestones() []Milestone            { return slices.Clone(c.milestones) }
func (c *Catalog) Services() []ServiceItem            { return slices.Clone(c.services) }
func (c *Catalog) FeaturedProducts() []ProductSummary { return slices.Clone(c.featuredProducts) }
func (c *Catalog) Testimonials() []Testimonial        { return slices.Clone(c.testimonials) }
func (c *Catalog) QuickLinks() []FooterLink           { return slices.Clone(c.quickLinks) }
func (c *Catalog) ContactInfo() []ContactInfo         { return slices.Clone(c.contactInfo) }

// Products returns the full catalog entries, applications included.
func (c *Catalog) Products() []ProductDetail {
	out := make([]ProductDetail, len(c.products))
	for i, p := range c.products {
		out[i] = p.clone()
	}
	return out
}

// Document converts the catalog back into its YAML shape.
func (c *Catalog) Document() Document {
	var doc Document
	doc.Company = c.company
	doc.About.Highlights = c.Highlights()
	doc.Milestones = c.Milestones()
	doc.Services = c.Services()
	doc.FeaturedProducts = c.FeaturedProducts()
	doc.Products = c.Products()
	doc.Testimonials = c.Testimonials()
	doc.Footer.QuickLinks = c.QuickLinks()
	doc.Footer.ContactInfo = c.ContactInfo()
	return doc
}

var titleCaser = cases.Title(language.English)

func labelFromHref(href string) string {
	name := strings.TrimPrefix(href, "#")
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(name)
}
