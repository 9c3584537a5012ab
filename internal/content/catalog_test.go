package content_test

import (
	"testing"

	"github.com/nfrund/amantech/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ListSizes(t *testing.T) {
	cat := content.Default()

	assert.Len(t, cat.Services(), 3)
	assert.Len(t, cat.FeaturedProducts(), 4)
	assert.Len(t, cat.Products(), 4)
	assert.Len(t, cat.Testimonials(), 3)
	assert.Len(t, cat.Milestones(), 6)
	assert.Len(t, cat.QuickLinks(), 4)
	assert.Len(t, cat.ContactInfo(), 4)
	assert.Len(t, cat.Highlights(), 5)
	assert.Equal(t, "Amantech Corporation", cat.Company().Name)
}

func TestDefault_OrderIsDocumentOrder(t *testing.T) {
	cat := content.Default()

	years := []string{}
	for _, m := range cat.Milestones() {
		years = append(years, m.Year)
	}
	assert.Equal(t, []string{"1996", "2000s", "2010s", "2015+", "2020+", "2026"}, years)

	services := cat.Services()
	assert.Equal(t, "Tool & Die Making", services[0].Title)
	assert.Equal(t, "Engineering Solutions", services[2].Title)

	links := cat.QuickLinks()
	assert.Equal(t, content.FooterLink{Label: "Home", Href: "#home"}, links[0])
	assert.Equal(t, "#products", links[3].Href)
}

func TestCatalog_ReadsAreNotMutable(t *testing.T) {
	cat := content.Default()

	services := cat.Services()
	services[0].Title = "changed"
	services = append(services, content.ServiceItem{ID: 99})

	products := cat.Products()
	products[0].Applications[0] = "changed"

	testimonials := cat.Testimonials()
	testimonials[1].Author = "changed"

	milestones := cat.Milestones()
	milestones[0].Year = "1900"

	links := cat.QuickLinks()
	links[0].Href = "#nowhere"

	fresh := content.Default()
	assert.Equal(t, fresh.Services(), cat.Services())
	assert.Equal(t, fresh.Products(), cat.Products())
	assert.Equal(t, fresh.Testimonials(), cat.Testimonials())
	assert.Equal(t, fresh.Milestones(), cat.Milestones())
	assert.Equal(t, fresh.QuickLinks(), cat.QuickLinks())
	assert.Len(t, cat.Services(), 3)

	// Repeated reads are stable.
	assert.Equal(t, cat.Products(), cat.Products())
}

func TestNewCatalog_DerivesFooterLabels(t *testing.T) {
	var doc content.Document
	doc.Company.Name = "Acme"
	doc.Footer.QuickLinks = []content.FooterLink{
		{Href: "#about-us"},
		{Href: "#featured_products"},
		{Label: "Kept", Href: "#home"},
	}

	cat := content.NewCatalog(doc)

	links := cat.QuickLinks()
	require.Len(t, links, 3)
	assert.Equal(t, "About Us", links[0].Label)
	assert.Equal(t, "Featured Products", links[1].Label)
	assert.Equal(t, "Kept", links[2].Label)
}
