package preset

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/cockroachdb/errors"
)

// RootMarker is the root element name identifying a settings document.
// Files with any other root are foreign (or predate this format) and are
// rejected before any setting is touched.
const RootMarker = "settings"

// maxDocumentSize bounds how much of a preset file we will parse.
const maxDocumentSize = 4 * 1024 * 1024

// Record is one persisted name/value pair. The value text is the selected
// option's label at the time the document was written.
type Record struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// Document is an ordered sequence of records plus the root marker it was
// read with. Records keep document order; the reconciler depends on it.
type Document struct {
	Root    string
	Records []Record
}

// Decode parses a persisted document from r. It accepts any well-formed XML
// with a single root element; the root name is recorded on the document and
// checked by the reconciler, so a foreign file decodes fine but fails fast
// on reconcile.
func Decode(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(io.LimitReader(r, maxDocumentSize))
	dec.Strict = true
	// Disable entity expansion; preset files never need entities
	dec.Entity = map[string]string{}

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty document")
			}
			return nil, errors.Wrap(err, "parsing document")
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue // declaration, comments, whitespace
		}

		var body struct {
			Records []Record `xml:"setting"`
		}
		if err := dec.DecodeElement(&body, &start); err != nil {
			return nil, errors.Wrap(err, "parsing document body")
		}

		return &Document{
			Root:    start.Name.Local,
			Records: body.Records,
		}, nil
	}
}

// Encode writes the document as XML with a declaration header. The root is
// always RootMarker regardless of how the document was built.
func Encode(w io.Writer, doc *Document) error {
	type setting struct {
		Name  string `xml:"name,attr"`
		Value string `xml:",chardata"`
	}
	type root struct {
		XMLName  xml.Name  `xml:"settings"`
		Settings []setting `xml:"setting"`
	}

	out := root{Settings: make([]setting, len(doc.Records))}
	for i, rec := range doc.Records {
		out.Settings[i] = setting{Name: rec.Name, Value: rec.Value}
	}

	data, err := xml.MarshalIndent(out, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshaling document")
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.Write(data)
	buf.WriteByte('\n')

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing document")
	}
	return nil
}
