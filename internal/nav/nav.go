// Package nav defines the site's header navigation.
package nav

// Item is one navigation entry. The marketing site is a single page, so
// items point at section anchors.
type Item struct {
	Href  string
	Label string
}

// Main is the primary navigation definition.
var Main = []Item{
	{Href: "#services", Label: "Services"},
	{Href: "#trainings", Label: "Programs"},
	{Href: "#team", Label: "Team"},
	{Href: "#contact", Label: "Contact"},
}

// Build returns the navigation items for the layout template.
func Build() []Item {
	items := make([]Item, len(Main))
	copy(items, Main)
	return items
}
