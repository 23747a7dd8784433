package preset

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thoreinstein/presetctl/internal/settings"
)

func TestEncodeDecode(t *testing.T) {
	doc := &Document{
		Root: RootMarker,
		Records: []Record{
			{Name: "Forest", Value: "Open"},
			{Name: "Starting Age", Value: "Adult"},
			{Name: "Cucco Count", Value: "3"},
		},
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("encoded document should start with an XML declaration")
	}
	if !strings.Contains(out, "<settings>") {
		t.Error("encoded document should have the settings root")
	}

	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.Root != RootMarker {
		t.Errorf("Root = %q, want %q", got.Root, RootMarker)
	}
	if len(got.Records) != len(doc.Records) {
		t.Fatalf("decoded %d records, want %d", len(got.Records), len(doc.Records))
	}
	for i, rec := range got.Records {
		if rec != doc.Records[i] {
			t.Errorf("record %d = %+v, want %+v", i, rec, doc.Records[i])
		}
	}
}

func TestDecode_PreservesRecordOrder(t *testing.T) {
	const raw = `<?xml version="1.0" encoding="UTF-8"?>
<settings>
    <setting name="C">c</setting>
    <setting name="A">a</setting>
    <setting name="B">b</setting>
</settings>
`
	doc, err := Decode(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := []string{"C", "A", "B"}
	for i, rec := range doc.Records {
		if rec.Name != want[i] {
			t.Errorf("record %d name = %q, want %q", i, rec.Name, want[i])
		}
	}
}

func TestDecode_ForeignRoot(t *testing.T) {
	doc, err := Decode(strings.NewReader(`<options><setting name="A">a</setting></options>`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if doc.Root != "options" {
		t.Errorf("Root = %q, want %q", doc.Root, "options")
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"truncated", "<settings><setting name="},
		{"not xml", "presets: []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.in)); err == nil {
				t.Error("Decode() should fail")
			}
		})
	}
}

func TestSerialize(t *testing.T) {
	wrapped := settings.NewDefinition("Bridge Medallion\nCount", settings.CategorySetting, "0", "1", "2")
	cosmetic := settings.NewDefinition("Tunic Color", settings.CategoryCosmetic, "Green", "Red")
	plain := settings.NewDefinition("Forest", settings.CategorySetting, "Closed", "Open")

	reg := regOf(plain, wrapped, cosmetic)
	if err := plain.SetSelected(1); err != nil {
		t.Fatal(err)
	}

	doc := Serialize(reg, settings.CategorySetting)

	if doc.Root != RootMarker {
		t.Errorf("Root = %q, want %q", doc.Root, RootMarker)
	}
	if len(doc.Records) != 2 {
		t.Fatalf("got %d records, want 2 (cosmetics excluded)", len(doc.Records))
	}
	if doc.Records[0].Name != "Forest" || doc.Records[0].Value != "Open" {
		t.Errorf("record 0 = %+v", doc.Records[0])
	}
	if doc.Records[1].Name != "Bridge MedallionCount" {
		t.Errorf("record 1 name = %q, want the normalized single-line form", doc.Records[1].Name)
	}
}
