package gemini

import "testing"

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "bare json", raw: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", raw: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "plain fence", raw: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "whitespace", raw: "  {\"a\":1}\n", want: `{"a":1}`},
		{name: "empty", raw: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFences(tt.raw); got != tt.want {
				t.Fatalf("StripCodeFences(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(t.Context(), "", "gemini-2.0-flash"); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}
