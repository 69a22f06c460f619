// Package templates embeds the pages and e-mails rendered by the site.
package templates

import (
	"embed"
	"html/template"
	texttemplate "text/template"
)

//go:embed base.html subscriptions errors
var FS embed.FS

// HTML parses every page; templates are addressed by file name,
// e.g. "subscription_form.html".
func HTML() (*template.Template, error) {
	return template.ParseFS(FS, "base.html", "subscriptions/*.html", "errors/*.html")
}

// Text parses a plain text template such as the confirmation e-mail.
func Text(name string) (*texttemplate.Template, error) {
	return texttemplate.ParseFS(FS, name)
}
