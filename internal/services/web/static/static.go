// Package static embeds the stylesheet and scripts served under /static/.
package static

import "embed"

// FS exposes web static assets for HTTP serving and export.
//
//go:embed *.css *.js
var FS embed.FS
