package pages

import (
	"strconv"

	"github.com/nfrund/amantech/internal/components"
	"github.com/nfrund/amantech/internal/content"
	"github.com/nfrund/amantech/web/src/templates/layouts"

	"maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ProductsCatalogID is the id of the product list on the products page.
const ProductsCatalogID = "products-catalog"

// ProductsPage renders the full product catalog. It has no live session;
// its only interaction is the link back home.
func ProductsPage(cat *content.Catalog, year int) gomponents.Node {
	company := cat.Company()
	return layouts.Page(
		layouts.PageProps{Title: "Products", Description: company.Tagline},
		Nav(
			Class("site-nav"),
			A(Class("brand"), Href("/"), gomponents.Text(company.Name)),
			A(Class("back-link"), Href("/#"+components.SectionProducts), gomponents.Text("← Back to home")),
		),
		Main(
			Section(
				ID(ProductsCatalogID),
				Class("products"),
				sectionHeading("Our Products", "Precision tooling and metal parts built to specification."),
				gomponents.Map(cat.Products(), productDetail),
			),
		),
		SiteFooter(cat, year),
	)
}

func productDetail(p content.ProductDetail) gomponents.Node {
	return Article(
		ID("product-"+strconv.Itoa(p.ID)),
		Class("product"),
		gomponents.If(p.Image != "", Img(Src(p.Image), Alt(p.Name))),
		gomponents.If(p.Image == "", Span(Class("card-icon"), Aria("hidden", "true"), gomponents.Text(p.Icon))),
		H2(gomponents.Text(p.Name)),
		P(Class("product-description"), gomponents.Text(p.Description)),
		P(Class("product-details"), gomponents.Text(p.Details)),
		gomponents.If(len(p.Applications) > 0, Div(
			Class("product-applications"),
			H3(gomponents.Text("Applications")),
			Ul(gomponents.Map(p.Applications, func(a string) gomponents.Node {
				return Li(gomponents.Text(a))
			})),
		)),
	)
}
