package components

import "github.com/nfrund/amantech/internal/content"

// ProductsPath is where "view all products" sends the visitor.
const ProductsPath = "/products"

// Navigator performs a full page navigation.
type Navigator interface {
	NavigateTo(path string)
}

// FeaturedProducts is the home page product teaser.
type FeaturedProducts struct {
	products []content.ProductSummary
}

// NewFeaturedProducts takes the teaser list from the catalog.
func NewFeaturedProducts(cat *content.Catalog) *FeaturedProducts {
	return &FeaturedProducts{products: cat.FeaturedProducts()}
}

// Products returns a copy of the teaser list.
func (f *FeaturedProducts) Products() []content.ProductSummary {
	return append([]content.ProductSummary(nil), f.products...)
}

// ViewAll leaves the page for the products route. Whether that route exists
// is the router's concern.
func (f *FeaturedProducts) ViewAll(nav Navigator) {
	nav.NavigateTo(ProductsPath)
}
