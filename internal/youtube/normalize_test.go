package youtube

import "testing"

func TestCanonicalWatchURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"watch url with extra params",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s&list=PL123",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		},
		{
			"plain watch url",
			"https://www.youtube.com/watch?v=abc123",
			"https://www.youtube.com/watch?v=abc123",
		},
		{
			"mobile host",
			"https://m.youtube.com/watch?v=abc123&feature=share",
			"https://www.youtube.com/watch?v=abc123",
		},
		{
			"short link passes through",
			"https://youtu.be/dQw4w9WgXcQ",
			"https://youtu.be/dQw4w9WgXcQ",
		},
		{
			"no query string passes through",
			"https://www.youtube.com/embed/abc123",
			"https://www.youtube.com/embed/abc123",
		},
		{
			"empty v passes through",
			"https://www.youtube.com/watch?v=&t=10",
			"https://www.youtube.com/watch?v=&t=10",
		},
		{
			"repeated v takes the first",
			"https://www.youtube.com/watch?v=first&v=second",
			"https://www.youtube.com/watch?v=first",
		},
		{
			"non-youtube url with v param is still canonicalized",
			"https://example.com/page?v=xyz",
			"https://www.youtube.com/watch?v=xyz",
		},
		{
			"unparseable input passes through",
			"http://[::1]:namedport",
			"http://[::1]:namedport",
		},
		{
			"empty string passes through",
			"",
			"",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CanonicalWatchURL(tc.in)
			if got != tc.want {
				t.Errorf("CanonicalWatchURL(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanonicalWatchURL_Deterministic(t *testing.T) {
	in := "https://www.youtube.com/watch?v=abc&t=1"
	first := CanonicalWatchURL(in)
	second := CanonicalWatchURL(first)
	if first != second {
		t.Errorf("expected idempotent normalization, got %q then %q", first, second)
	}
}
