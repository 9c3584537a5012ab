package layouts

// SiteName is the brand shown in titles.
const SiteName = "Amantech"

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " | " + SiteName
	}
	return SiteName
}
