package ast

// BibContainer is a container { ... } group inside a bibliography
// entry, describing the work the cited item appears in. Every field is
// optional; absent fields are nil.
type BibContainer struct {
	SpanInfo

	// Title is the container title.
	Title *Unformatted `json:"title,omitempty"`

	// Contributors names editors, translators, and other contributors.
	Contributors *Unformatted `json:"contributors,omitempty"`

	// Version is the edition or revision.
	Version *Unformatted `json:"version,omitempty"`

	// Number is the volume or issue number.
	Number *Unformatted `json:"number,omitempty"`

	// Publisher is the publishing body.
	Publisher *Unformatted `json:"publisher,omitempty"`

	// Date is the publication date.
	Date *Unformatted `json:"date,omitempty"`

	// Location is the page range or other locator.
	Location *Unformatted `json:"location,omitempty"`
}

// BibFields is the field set shared by bibliography entries and inline
// \Citation blocks. Containers nest outward: the first container is
// the immediate container of the work, the next contains that one, and
// so on.
type BibFields struct {
	SpanInfo

	// Authors names the authors of the cited work.
	Authors *Unformatted `json:"authors,omitempty"`

	// Title is the title of the cited work.
	Title *Unformatted `json:"title,omitempty"`

	// Containers are the container groups in source order.
	Containers []*BibContainer `json:"containers,omitempty"`
}

// BibEntry is one entry of a bibliography file: key { fields }.
type BibEntry struct {
	SpanInfo

	// Key is the entry identifier cited by ~key markers.
	Key string `json:"key"`

	// Fields is the entry record.
	Fields *BibFields `json:"fields"`
}

// Bibliography is a parsed bibliography file.
type Bibliography struct {
	SpanInfo

	// Entries are the entries in source order.
	Entries []*BibEntry `json:"entries"`
}
