// Package web embeds the server-rendered views and static assets.
package web

import (
	"embed"
	htmpl "html/template"
	"io/fs"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/oksasatya/gryffintwin/internal/domain/entity"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = htmpl.FuncMap{
	"money": func(m entity.Money) string { return m.String() },
	"initial": func(name string) string {
		name = strings.TrimSpace(name)
		if name == "" {
			return "?"
		}
		r, _ := utf8.DecodeRuneInString(name)
		return string(unicode.ToUpper(r))
	},
}

// Templates parses every view. Each file is addressable by its base name,
// e.g. "dashboard.tmpl".
func Templates() (*htmpl.Template, error) {
	return htmpl.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
}

// Static serves the embedded assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
