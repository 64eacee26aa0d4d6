// Package templates embeds the HTML templates so the binary and its tests
// do not depend on the working directory.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
