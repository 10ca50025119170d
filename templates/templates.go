// Package templates embeds the HTML pages rendered by the controllers.
package templates

import "embed"

// FS holds layout.html and one file per page.
//
//go:embed *.html
var FS embed.FS
