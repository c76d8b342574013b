package plate

import "strings"

// UnknownRegion is reported when a plate's prefix matches no table entry.
const UnknownRegion = "Unknown"

// RegionCode maps a region name to its two-letter registration code.
type RegionCode struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// DefaultRegions returns the Indian state and union territory codes in
// declaration order. Ladakh and Lakshadweep share "LD"; Ladakh is listed
// first and therefore wins resolution.
func DefaultRegions() []RegionCode {
	return []RegionCode{
		{Name: "Andhra Pradesh", Code: "AP"},
		{Name: "Arunachal Pradesh", Code: "AR"},
		{Name: "Assam", Code: "AS"},
		{Name: "Bihar", Code: "BR"},
		{Name: "Chandigarh", Code: "CH"},
		{Name: "Chhattisgarh", Code: "CG"},
		{Name: "Dadra & Nagar Haveli and Daman & Diu", Code: "DD"},
		{Name: "Delhi", Code: "DL"},
		{Name: "Goa", Code: "GA"},
		{Name: "Gujarat", Code: "GJ"},
		{Name: "Haryana", Code: "HR"},
		{Name: "Himachal Pradesh", Code: "HP"},
		{Name: "Jammu & Kashmir", Code: "JK"},
		{Name: "Karnataka", Code: "KA"},
		{Name: "Kerala", Code: "KL"},
		{Name: "Ladakh", Code: "LD"},
		{Name: "Lakshadweep", Code: "LD"},
		{Name: "Madhya Pradesh", Code: "MP"},
		{Name: "Maharashtra", Code: "MH"},
		{Name: "Manipur", Code: "MN"},
		{Name: "Meghalaya", Code: "ML"},
		{Name: "Mizoram", Code: "MZ"},
		{Name: "Nagaland", Code: "NL"},
		{Name: "Odisha", Code: "OR"},
		{Name: "Puducherry", Code: "PY"},
		{Name: "Punjab", Code: "PB"},
		{Name: "Rajasthan", Code: "RJ"},
		{Name: "Sikkim", Code: "SK"},
		{Name: "Tamil Nadu", Code: "TN"},
		{Name: "Telangana", Code: "TS"},
		{Name: "Tripura", Code: "TR"},
		{Name: "Uttar Pradesh", Code: "UP"},
		{Name: "Uttarakhand", Code: "UK"},
		{Name: "West Bengal", Code: "WB"},
	}
}

// RegionTable resolves plate prefixes to region names. Lookups in both
// directions follow declaration order.
type RegionTable struct {
	entries []RegionCode
}

// NewRegionTable copies entries and upper-cases their codes. Entries with an
// empty name are dropped so resolution never yields an empty region.
func NewRegionTable(entries []RegionCode) RegionTable {
	t := RegionTable{entries: make([]RegionCode, 0, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		t.entries = append(t.entries, RegionCode{Name: e.Name, Code: strings.ToUpper(e.Code)})
	}
	return t
}

// Resolve returns the name of the first entry whose code equals the
// upper-cased first two characters of text, or UnknownRegion.
func (t RegionTable) Resolve(text string) string {
	prefix, ok := regionPrefix(text)
	if !ok {
		return UnknownRegion
	}
	for _, e := range t.entries {
		if e.Code == prefix {
			return e.Name
		}
	}
	return UnknownRegion
}

// Code returns the code declared for name.
func (t RegionTable) Code(name string) (string, bool) {
	for _, e := range t.entries {
		if e.Name == name {
			return e.Code, true
		}
	}
	return "", false
}

// Names lists every region declared with code, in declaration order.
func (t RegionTable) Names(code string) []string {
	code = strings.ToUpper(code)
	var names []string
	for _, e := range t.entries {
		if e.Code == code {
			names = append(names, e.Name)
		}
	}
	return names
}

// Entries returns a copy of the table in declaration order.
func (t RegionTable) Entries() []RegionCode {
	return append([]RegionCode(nil), t.entries...)
}

// regionPrefix extracts the two leading runes of text, upper-cased. Text
// shorter than two runes has no usable prefix.
func regionPrefix(text string) (string, bool) {
	runes := []rune(text)
	if len(runes) < 2 {
		return "", false
	}
	return strings.ToUpper(string(runes[:2])), true
}
