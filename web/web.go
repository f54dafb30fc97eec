// Package web embeds the static presentation pages. Both pages are
// client-rendered: they fetch the five resource endpoints and build the DOM
// in the browser, the server only hands out the HTML shell.
package web

import "embed"

//go:embed static
var Static embed.FS
