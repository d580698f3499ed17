package webserver

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

var supportedLanguages = []language.Tag{
	language.English,
	language.Polish,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// chooseBestLanguage returns the supported language best matching the
// Accept-Language header of the request, defaulting to English
func chooseBestLanguage(c *fiber.Ctx) string {
	tags, _, err := language.ParseAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	if err != nil {
		tags = nil
	}
	_, index, _ := languageMatcher.Match(tags...)
	base, _ := supportedLanguages[index].Base()
	return base.String()
}
