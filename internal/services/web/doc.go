// Package web serves the locale-prefixed apartment listing site.
//
// It composes feature modules behind a shared middleware chain and serves
// the embedded static assets. The same handler drives both the HTTP server
// and the static export.
package web
