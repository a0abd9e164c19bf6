package core

import "testing"

func TestKeyName(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"Class", "class"},
		{"FitColumns", "fitColumns"},
		{"ID", "id"},
		{"URL", "url"},
		{"URLPath", "urlPath"},
		{"HTTP2", "http2"},
		{"X", "x"},
		{"Data_Role", "data-Role"},
		{"lower", "lower"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if got := KeyName(tt.field); got != tt.want {
				t.Fatalf("KeyName(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"url", true},
		{"_private", true},
		{"$el", true},
		{"page2", true},
		{"", false},
		{"2page", false},
		{"data-role", false},
		{"has space", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			if got := IsIdentifier(tt.s); got != tt.want {
				t.Fatalf("IsIdentifier(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}
