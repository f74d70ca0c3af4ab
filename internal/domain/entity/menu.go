package entity

// PageKind tells whether a menu target is a remote URL or a built-in page.
type PageKind string

const (
	PageKindURL     PageKind = "url"
	PageKindBuiltin PageKind = "builtin"
)

// Built-in page names served from embedded assets.
const (
	PageDownloads = "downloads"
	PageLibrary   = "library"
	PageSettings  = "settings"
)

// MenuItem is one entry of the application menu.
type MenuItem struct {
	Label string
	Kind  PageKind
	// Target is a URL for PageKindURL or a page name for PageKindBuiltin.
	Target string
}

// NavigationTarget is what the window should load for a menu activation.
type NavigationTarget struct {
	Kind PageKind
	// URL is set for remote targets.
	URL string
	// Page is set for built-in targets.
	Page string
}
