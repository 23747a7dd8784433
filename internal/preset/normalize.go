package preset

import "strings"

// NormalizeName strips embedded line breaks from a setting's display name.
// Names wrap across lines in the menu UI but are persisted single-line, so
// both the serializer and the reconciler must compare through this function
// to guarantee round-trip equality.
func NormalizeName(name string) string {
	if !strings.ContainsAny(name, "\r\n") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r == '\n' || r == '\r' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
