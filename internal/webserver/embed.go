package webserver

import (
	"embed"
	"io/fs"
	"log"

	"github.com/trzyzielonemyszy/sleep-trucker/internal/i18n"
	"golang.org/x/text/message"
)

//go:embed views public translations
var embedded embed.FS

var (
	viewsFS fs.FS
	cssFS   fs.FS
	jsFS    fs.FS
)

func init() {
	var err error

	if viewsFS, err = fs.Sub(embedded, "views"); err != nil {
		log.Fatal(err)
	}
	if cssFS, err = fs.Sub(embedded, "public/css"); err != nil {
		log.Fatal(err)
	}
	if jsFS, err = fs.Sub(embedded, "public/js"); err != nil {
		log.Fatal(err)
	}
}

// Printers returns the message printers for all supported languages, built
// from the embedded translations
func Printers() map[string]*message.Printer {
	dir, err := fs.Sub(embedded, "translations")
	if err != nil {
		log.Fatal(err)
	}

	printers, err := i18n.Printers(dir, "en")
	if err != nil {
		log.Fatal(err)
	}

	return printers
}
