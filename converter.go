package punter

// Converter transforms an HTML fragment into Markdown text.
type Converter interface {
	Convert(html string) (string, error)
}
