package webserver

type Config struct {
	// Version of the application, shown in the page footer
	Version string
	// Debug reloads the templates on every render
	Debug bool
}
