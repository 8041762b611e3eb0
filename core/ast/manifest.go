package ast

// Page is one manifest page reference. The identifier names a source
// file; existence of the file is checked by the loader, not here.
type Page struct {
	SpanInfo

	// ID is the page identifier.
	ID string `json:"id"`

	// Name is the display name from the quoted string.
	Name string `json:"name"`
}

// Chapter is a manifest chapter: identifier, display name, a tagline,
// and the pages it contains.
type Chapter struct {
	SpanInfo

	// ID is the chapter identifier.
	ID string `json:"id"`

	// Name is the display name from the quoted string.
	Name string `json:"name"`

	// Tagline is the one-line chapter summary.
	Tagline *Paragraph `json:"tagline"`

	// Pages are the chapter pages in source order.
	Pages []*Page `json:"pages"`
}

// Book is a manifest book: identifier, display name, a tagline, and
// its chapters.
type Book struct {
	SpanInfo

	// ID is the book identifier.
	ID string `json:"id"`

	// Name is the display name from the quoted string.
	Name string `json:"name"`

	// Tagline is the one-line book summary.
	Tagline *Paragraph `json:"tagline"`

	// Chapters are the book chapters in source order.
	Chapters []*Chapter `json:"chapters"`
}

// Manifest is a parsed manifest file: one or more books.
type Manifest struct {
	SpanInfo

	// Books are the books in source order.
	Books []*Book `json:"books"`
}
