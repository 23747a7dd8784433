package preset

import (
	"github.com/cockroachdb/errors"

	perrors "github.com/thoreinstein/presetctl/internal/errors"
	"github.com/thoreinstein/presetctl/internal/settings"
)

// Reconcile applies a persisted document to every category-matching
// definition in the registry. Definitions whose name is found in the
// document get their selection updated from the record's value text;
// everything else keeps its current value.
//
// If the document's root marker is not RootMarker the whole operation fails
// with ErrFormatMismatch and nothing is mutated.
//
// Presets are written in canonical order, so a cursor walking the record
// list in lockstep with the registry handles the common case in a single
// linear pass. When the cursor's record doesn't carry the expected name
// (a setting was added, removed, or moved since the document was written),
// a resync scan searches the whole record list from the start and leaves
// the cursor just past the match, which puts the walk back in lockstep if
// the following entries still line up. The cursor wraps to the start when
// it runs off the end so a single out-of-order record can't desynchronize
// the rest of the pass.
func Reconcile(reg *settings.Registry, cat settings.Category, doc *Document) error {
	if doc.Root != RootMarker {
		return errors.Wrapf(perrors.ErrFormatMismatch, "root element %q", doc.Root)
	}

	recs := doc.Records
	if len(recs) == 0 {
		return nil
	}

	cursor := 0
	for _, d := range reg.Definitions(cat) {
		target := NormalizeName(d.Name())

		if NormalizeName(recs[cursor].Name) == target {
			// Fast path: document still in canonical order here.
			d.SetSelectedByLabel(recs[cursor].Value)
			cursor++
		} else {
			// Resync: scan from the start for the first record with
			// this name. A miss means the document has no record for
			// this setting; the current value stands.
			cursor = len(recs)
			for i, rec := range recs {
				if NormalizeName(rec.Name) == target {
					d.SetSelectedByLabel(rec.Value)
					cursor = i + 1
					break
				}
			}
		}

		if cursor >= len(recs) {
			cursor = 0
		}
	}

	return nil
}
