package i18n

import (
	"io/fs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func Printers(dir fs.FS, fallbackLang string) (map[string]*message.Printer, error) {
	cat, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	message.DefaultCatalog = cat

	return map[string]*message.Printer{
		"en": message.NewPrinter(language.English),
		"pl": message.NewPrinter(language.Polish),
	}, nil
}
