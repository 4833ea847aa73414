package web

//go:generate templ generate

// pageData is the input of the index page template.
type pageData struct {
	Title  string
	Pack   string
	Levels int
}
