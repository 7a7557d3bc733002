package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names; each template defines "content" and is combined with layout.html.
const (
	pageProfile     = "profile.html"
	pageServices    = "services.html"
	pageImmigration = "immigration.html"
	pageElection    = "election.html"
)

var pageFuncs = template.FuncMap{
	"thousands": thousands,
}

// pages holds one parsed template set per page so their "content" blocks
// do not collide.
type pages map[string]*template.Template

func loadPages(fsys fs.FS) (pages, error) {
	out := make(pages)
	for _, name := range []string{pageProfile, pageServices, pageImmigration, pageElection} {
		t, err := template.New("layout.html").Funcs(pageFuncs).ParseFS(fsys, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

type pageData struct {
	Title  string
	Active string
	Data   any
}

func (p pages) render(w io.Writer, name string, data pageData) error {
	t, ok := p[name]
	if !ok {
		return fmt.Errorf("page %s not loaded", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// thousands formats v with comma separators, rounding to the nearest integer.
func thousands(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	var out []byte
	for i := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
