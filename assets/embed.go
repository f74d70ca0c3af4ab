// Package assets embeds the built-in pages and the script bridge.
package assets

import (
	"embed"
	"fmt"
)

// BridgeScript is injected into every top frame. It exposes
// window.chanomhub.invoke and window.chanomhub.on to page scripts.
//
//go:embed bridge.js
var BridgeScript string

//go:embed pages/*.html
var pages embed.FS

// Page returns the HTML of a built-in page by name.
func Page(name string) (string, error) {
	data, err := pages.ReadFile("pages/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("built-in page %q: %w", name, err)
	}
	return string(data), nil
}
