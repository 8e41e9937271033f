// Package sanitize provides HTML output encoding for user-supplied text
// that is interpolated into email templates.
package sanitize

import "strings"

// htmlEscaper escapes the five HTML-significant characters. The replacement
// set is fixed on purpose: this is output encoding for HTML bodies, not data
// normalization, so nothing else is touched.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// HTML escapes user input so it can be embedded in an HTML email body.
func HTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Multiline escapes user input and converts newlines to <br> tags so that
// paragraph breaks survive HTML rendering. Used for the free-form message
// field only.
func Multiline(s string) string {
	escaped := htmlEscaper.Replace(s)
	escaped = strings.ReplaceAll(escaped, "\r\n", "<br>")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
