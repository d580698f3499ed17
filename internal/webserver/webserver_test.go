package webserver_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver"
	"github.com/trzyzielonemyszy/sleep-trucker/internal/webserver/infrastructure"
	"gorm.io/gorm"
)

func TestGET(t *testing.T) {
	var cases = []struct {
		name           string
		url            string
		expectedStatus int
	}{
		{"Home page loads successfully", "/", http.StatusOK},
		{"Home page loads successfully for a given date", "/?date=2024-01-02", http.StatusOK},
		{"Home page rejects a malformed date", "/?date=January", http.StatusBadRequest},
		{"Add record form loads successfully", "/add", http.StatusOK},
		{"Server returns not found when editing a non existing record", "/edit_record/1", http.StatusNotFound},
		{"Server returns not found if the user tries to access a non-existent URL", "/records", http.StatusNotFound},
	}

	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db)

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, tcase.url, nil)

			response, err := app.Test(req)
			if err != nil {
				t.Errorf("Unexpected error: %v", err.Error())
			}
			if response.StatusCode != tcase.expectedStatus {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedStatus, response.StatusCode)
			}
		})
	}
}

func TestLanguageNegotiation(t *testing.T) {
	var cases = []struct {
		name           string
		acceptLanguage string
		expectedTitle  string
	}{
		{"Polish is served to browsers preferring Polish", "pl,en;q=0.5", "Zapisy snu"},
		{"English is served when no language is requested", "", "Sleep records"},
		{"English is served for unsupported languages", "de", "Sleep records"},
	}

	db := infrastructure.Connect("file::memory:")
	app := bootstrapApp(db)

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tcase.acceptLanguage != "" {
				req.Header.Add("Accept-Language", tcase.acceptLanguage)
			}

			response, err := app.Test(req)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err.Error())
			}

			doc, err := goquery.NewDocumentFromReader(response.Body)
			if err != nil {
				t.Fatal(err)
			}
			if title := strings.TrimSpace(doc.Find("h1").Text()); title != tcase.expectedTitle {
				t.Errorf("Expected page title %q, got %q", tcase.expectedTitle, title)
			}
		})
	}
}

func bootstrapApp(db *gorm.DB) *fiber.App {
	return webserver.New(webserver.Config{}, webserver.Printers(), webserver.SetupControllers(db))
}
