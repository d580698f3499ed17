package infrastructure

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
	"golang.org/x/text/message"
)

func TemplateEngine(viewsFS fs.FS, printers map[string]*message.Printer) (*html.Engine, error) {
	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	engine.AddFunc("t", func(lang, key string, values ...any) template.HTML {
		printer, ok := printers[lang]
		if !ok {
			printer = printers["en"]
		}
		return template.HTML(printer.Sprintf(key, values...))
	})

	// inputTime formats a timestamp for a datetime-local input, leaving the
	// value empty for zero times so invalid submissions redisplay blank.
	engine.AddFunc("inputTime", func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02T15:04")
	})

	engine.AddFunc("clock", func(t time.Time) string {
		return t.Format("15:04")
	})

	return engine, nil
}
