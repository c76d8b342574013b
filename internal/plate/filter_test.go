package plate

import "testing"

func TestAdmit_Boundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"length 8 rejected", "MH12AB12", false},
		{"length 9 admitted", "MH12AB123", true},
		{"length 10 admitted", "MH12AB1234", true},
		{"short fragment", "AB1234", false},
		{"empty", "", false},
		{"runes not bytes", "ÄÖÜÄÖÜÄÖ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Admit(tt.text); got != tt.want {
				t.Errorf("Admit(%q): got %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFilter_CustomThreshold(t *testing.T) {
	f := Filter{MinLength: 3}
	if f.Admit("ABC") {
		t.Error("length 3 should be rejected with MinLength 3")
	}
	if !f.Admit("ABCD") {
		t.Error("length 4 should be admitted with MinLength 3")
	}
}
