package document

// Attributes is the metadata attached to a corpus document. Category is
// mandatory for category-scoped retrieval; Extra carries free-form fields
// whose key sets differ across categories (program, topic, policy, ...).
type Attributes struct {
	Category string
	Extra    map[string]string
}

// Document is an indexed corpus entry (immutable value object).
// Identity is positional: the corpus assigns the index at append time.
type Document struct {
	content string
	attrs   Attributes
}

// New creates a Document. Content and attributes are accepted as-is:
// the corpus performs no validation or deduplication on append.
func New(content string, attrs Attributes) Document {
	return Document{content: content, attrs: cloneAttributes(attrs)}
}

// Content returns the indexed text.
func (d *Document) Content() string { return d.content }

// Attributes returns the document metadata.
func (d *Document) Attributes() Attributes { return d.attrs }

// Category returns the mandatory category attribute.
func (d *Document) Category() string { return d.attrs.Category }

func cloneAttributes(a Attributes) Attributes {
	if a.Extra == nil {
		return a
	}
	extra := make(map[string]string, len(a.Extra))
	for k, v := range a.Extra {
		extra[k] = v
	}
	return Attributes{Category: a.Category, Extra: extra}
}
