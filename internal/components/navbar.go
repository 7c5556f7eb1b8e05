package components

import "voiceflow-dashboard/pkg/navigation"

// Utility classes applied by the navigation bar partial.
const (
	navBarClass    = "bg-primary text-primary-foreground p-4 flex justify-between items-center"
	brandLinkClass = "text-lg font-bold"
	linkGroupClass = "space-x-4"
	navLinkClass   = "hover:underline"
)

// Brand is the leading link of the navigation bar.
var Brand = navigation.Item{Label: "VoiceFlow AI", Path: "/"}

var primaryLinks = [...]navigation.Item{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Agents", Path: "/agents"},
	{Label: "Phone Numbers", Path: "/phone-numbers"},
	{Label: "Call Logs", Path: "/call-logs"},
	{Label: "Menu", Path: "/menu"},
	{Label: "Orders", Path: "/orders"},
	{Label: "Reservations", Path: "/reservations"},
	{Label: "Campaigns", Path: "/campaigns"},
	{Label: "Social Media", Path: "/social-media"},
}

// PrimaryLinks returns the nine navigation destinations in display order.
// Each call returns a fresh copy.
func PrimaryLinks() []navigation.Item {
	links := primaryLinks
	return links[:]
}

// Link is a navigation item together with the classes it renders with.
type Link struct {
	navigation.Item
	Class string
}

// NavBar is the render model of the horizontal navigation bar.
type NavBar struct {
	Class      string
	Brand      Link
	GroupClass string
	Links      []Link
}

// NavigationBar builds the navigation bar. It takes no input and always
// returns an equal value.
func NavigationBar() NavBar {
	items := PrimaryLinks()
	links := make([]Link, 0, len(items))
	for _, item := range items {
		links = append(links, Link{Item: item, Class: navLinkClass})
	}

	return NavBar{
		Class:      navBarClass,
		Brand:      Link{Item: Brand, Class: brandLinkClass},
		GroupClass: linkGroupClass,
		Links:      links,
	}
}

// Entries lists the brand followed by the navigation links.
func (n NavBar) Entries() []navigation.Item {
	entries := make([]navigation.Item, 0, len(n.Links)+1)
	entries = append(entries, n.Brand.Item)
	for _, link := range n.Links {
		entries = append(entries, link.Item)
	}
	return entries
}
