// Package viewmeta builds the presentation metadata (page title and
// breadcrumb trail) that every handler attaches to its payload.
package viewmeta

// Breadcrumb is a single entry in a navigation trail.
type Breadcrumb struct {
	Name   string `json:"name"`
	URL    string `json:"url,omitempty"`
	Active bool   `json:"active"`
}

// View carries the presentation metadata for a rendered page.
type View struct {
	Title       string       `json:"title"`
	Breadcrumbs []Breadcrumb `json:"breadcrumbs"`
}

// New builds a View from a title and an ordered breadcrumb trail.
// The last crumb is expected to be the current page (see Current).
func New(title string, crumbs ...Breadcrumb) View {
	return View{
		Title:       title,
		Breadcrumbs: crumbs,
	}
}

// Crumb creates a navigable breadcrumb entry.
func Crumb(name, url string) Breadcrumb {
	return Breadcrumb{Name: name, URL: url}
}

// Current creates the trailing breadcrumb for the page being viewed.
func Current(name string) Breadcrumb {
	return Breadcrumb{Name: name, Active: true}
}
