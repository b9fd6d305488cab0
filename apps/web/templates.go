package webui

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

type renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*renderer)(nil)

var templateFuncs = template.FuncMap{
	// seq backs the fixed cycle 1..10 selects
	"seq": func(from, to int) []int {
		seq := make([]int, 0, to-from+1)
		for n := from; n <= to; n++ {
			seq = append(seq, n)
		}
		return seq
	},
}

func newRenderer() *renderer {
	return &renderer{
		templates: template.Must(
			template.New("registra").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.gohtml"),
		),
	}
}

func (r *renderer) Render(w io.Writer, name string, data interface{}, ctx echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
