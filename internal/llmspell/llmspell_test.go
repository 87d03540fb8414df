package llmspell

import "testing"

func TestStripMarkdownFence(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`{"corrected": "the"}`, `{"corrected": "the"}`},
		{"```json\n{\"corrected\": \"the\"}\n```", `{"corrected": "the"}`},
		{"```\n{\"corrected\": \"the\"}\n```", `{"corrected": "the"}`},
		{"  {\"corrected\": \"the\"}  ", `{"corrected": "the"}`},
	}
	for _, tc := range cases {
		if got := stripMarkdownFence(tc.in); got != tc.want {
			t.Fatalf("stripMarkdownFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
