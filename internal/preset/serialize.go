package preset

import (
	"github.com/thoreinstein/presetctl/internal/settings"
)

// Serialize builds a persisted document from every definition in the
// registry that belongs to the category, in canonical order: one record per
// definition, name normalized, value equal to the selected option's label.
// Definitions outside the category produce no record.
func Serialize(reg *settings.Registry, cat settings.Category) *Document {
	defs := reg.Definitions(cat)

	doc := &Document{
		Root:    RootMarker,
		Records: make([]Record, 0, len(defs)),
	}
	for _, d := range defs {
		doc.Records = append(doc.Records, Record{
			Name:  NormalizeName(d.Name()),
			Value: d.SelectedLabel(),
		})
	}
	return doc
}
