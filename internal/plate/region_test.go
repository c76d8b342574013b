package plate

import "testing"

func TestRegionTable_Resolve(t *testing.T) {
	table := NewRegionTable(DefaultRegions())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"maharashtra", "MH12AB1234", "Maharashtra"},
		{"unknown prefix", "ZZ12AB1234", UnknownRegion},
		{"shared code resolves to first declared", "LD01AB1234", "Ladakh"},
		{"lowercase prefix", "mh12ab1234", "Maharashtra"},
		{"mixed case prefix", "kA01AB1234", "Karnataka"},
		{"multi word name", "TN09BC5678", "Tamil Nadu"},
		{"single character", "M", UnknownRegion},
		{"empty", "", UnknownRegion},
		{"prefix must be leading", "12MH", UnknownRegion},
		{"unknown scenario", "QQ99ZZ0000", UnknownRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Resolve(tt.text); got != tt.want {
				t.Errorf("Resolve(%q): got %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRegionTable_FirstMatchFollowsDeclarationOrder(t *testing.T) {
	table := NewRegionTable([]RegionCode{
		{Name: "Lakshadweep", Code: "LD"},
		{Name: "Ladakh", Code: "LD"},
	})
	if got := table.Resolve("LD01AB1234"); got != "Lakshadweep" {
		t.Errorf("got %q, want Lakshadweep", got)
	}
}

func TestRegionTable_NormalisesEntries(t *testing.T) {
	table := NewRegionTable([]RegionCode{
		{Name: "", Code: "XX"},
		{Name: "Goa", Code: "ga"},
	})

	if got := table.Resolve("XX01"); got != UnknownRegion {
		t.Errorf("empty name entry matched: got %q", got)
	}
	if got := table.Resolve("GA07"); got != "Goa" {
		t.Errorf("lowercase table code: got %q, want Goa", got)
	}
	if n := len(table.Entries()); n != 1 {
		t.Errorf("Entries: got %d, want 1", n)
	}
}

func TestRegionTable_ReverseLookups(t *testing.T) {
	table := NewRegionTable(DefaultRegions())

	code, ok := table.Code("West Bengal")
	if !ok || code != "WB" {
		t.Errorf("Code(West Bengal): got %q, %v", code, ok)
	}
	if _, ok := table.Code("Atlantis"); ok {
		t.Error("Code(Atlantis) should not be found")
	}

	names := table.Names("ld")
	if len(names) != 2 || names[0] != "Ladakh" || names[1] != "Lakshadweep" {
		t.Errorf("Names(ld): got %v", names)
	}
}

func TestDefaultRegions(t *testing.T) {
	regions := DefaultRegions()
	if len(regions) != 34 {
		t.Errorf("len: got %d, want 34", len(regions))
	}

	seen := make(map[string]bool)
	for _, r := range regions {
		if len(r.Code) != 2 {
			t.Errorf("%s: code %q is not two letters", r.Name, r.Code)
		}
		if seen[r.Name] {
			t.Errorf("duplicate name %q", r.Name)
		}
		seen[r.Name] = true
	}
}
