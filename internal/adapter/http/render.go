package adapthttp

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"blog/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// TemplateData is the data bag handed to the rendering collaborator. Only
// the fields a view needs are populated.
type TemplateData struct {
	User       *domain.User
	Error      string
	Posts      []domain.Post
	Post       *domain.Post
	Form       map[string]string
	SSOEnabled bool
}

// Renderer produces a response body for a named view. The handlers never
// construct HTML themselves.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data *TemplateData)
}

type templateRenderer struct {
	pages map[string]*template.Template
}

// NewTemplateRenderer parses the embedded templates. Each page is parsed
// together with the base layout.
func NewTemplateRenderer() Renderer {
	pages := []string{"index", "post", "create", "update", "login", "register", "error"}
	r := &templateRenderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		r.pages[name] = template.Must(template.ParseFS(templateFS,
			"templates/base.html", "templates/"+name+".html"))
	}
	return r
}

func (r *templateRenderer) Render(w http.ResponseWriter, status int, name string, data *TemplateData) {
	tmpl, ok := r.pages[name]
	if !ok {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		data = &TemplateData{}
	}

	// Render to a buffer first so a template failure never emits a torn page.
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
