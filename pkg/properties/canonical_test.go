package properties

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"URL", "url"},
		{"URL ", "url"},
		{"url", "url"},
		{"Organization or Person", "organizationorperson"},
		{"Organization, or Person", "organizationorperson"},
		{"Date-Time", "datetime"},
		{"Text_or_URL", "text_or_url"},
		{"Number (0-9)", "number09"},
		{"Évènement", "évènement"},
		{"", ""},
		{"  --  ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := Canonicalize(tt.input); result != tt.expected {
				t.Errorf("Canonicalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestSameType(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"URL ", "url", true},
		{"Organization or Person", "organization or person", true},
		{"Date", "DateTime", false},
		{"Text", "URL", false},
	}

	for _, tt := range tests {
		if got := SameType(tt.a, tt.b); got != tt.want {
			t.Errorf("SameType(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
