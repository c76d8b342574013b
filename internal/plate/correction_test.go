package plate

import "testing"

func TestCorrector_DefaultRules(t *testing.T) {
	c := NewCorrector(DefaultCorrections())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"I2 misread", "MHI2AB1234", "MH12AB1234"},
		{"ICL misread", "KAICL1234X", "KA1CL1234X"},
		{"ZG misread", "DLZGAB1234", "DL26AB1234"},
		{"AG misread", "HRAG1234XY", "HR461234XY"},
		{"lowercase c before Q", "TNcQ123456", "TNCQ123456"},
		{"every occurrence replaced", "I2I2I2", "121212"},
		{"no match", "MH12AB1234", "MH12AB1234"},
		{"empty", "", ""},
		{"pattern is case sensitive", "mhi2ab1234", "mhi2ab1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Correct(tt.in); got != tt.want {
				t.Errorf("Correct(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCorrector_OrderMatters(t *testing.T) {
	first := CorrectionRule{Pattern: "AB", Replacement: "BC"}
	second := CorrectionRule{Pattern: "BC", Replacement: "X"}

	forward := NewCorrector([]CorrectionRule{first, second}).Correct("AB12")
	reversed := NewCorrector([]CorrectionRule{second, first}).Correct("AB12")

	if forward != "X12" {
		t.Errorf("forward order: got %q, want %q", forward, "X12")
	}
	if reversed != "BC12" {
		t.Errorf("reversed order: got %q, want %q", reversed, "BC12")
	}
}

func TestCorrector_SinglePass(t *testing.T) {
	// A rule whose replacement re-creates its own pattern is not re-applied.
	c := NewCorrector([]CorrectionRule{{Pattern: "AA", Replacement: "AAA"}})
	if got := c.Correct("AA"); got != "AAA" {
		t.Errorf("got %q, want %q", got, "AAA")
	}
}

func TestCorrector_EmptyPatternIgnored(t *testing.T) {
	c := NewCorrector([]CorrectionRule{{Pattern: "", Replacement: "-"}})
	if got := c.Correct("MH12"); got != "MH12" {
		t.Errorf("got %q, want %q", got, "MH12")
	}
}

func TestCorrector_CopiesRules(t *testing.T) {
	rules := []CorrectionRule{{Pattern: "I2", Replacement: "12"}}
	c := NewCorrector(rules)
	rules[0].Replacement = "ZZ"

	if got := c.Correct("I2"); got != "12" {
		t.Errorf("corrector affected by caller mutation: got %q", got)
	}

	out := c.Rules()
	out[0].Pattern = "XX"
	if c.Rules()[0].Pattern != "I2" {
		t.Error("Rules() exposed internal slice")
	}
}

func TestDefaultCorrections_Order(t *testing.T) {
	want := []string{"ICL", "ZG", "AG", "I2", "cQ"}
	got := DefaultCorrections()
	if len(got) != len(want) {
		t.Fatalf("len: got %d, want %d", len(got), len(want))
	}
	for i, p := range want {
		if got[i].Pattern != p {
			t.Errorf("rule %d: got %q, want %q", i, got[i].Pattern, p)
		}
	}
}
