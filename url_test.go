package browser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *URL
	}{
		{
			name: "host only",
			in:   "http://example.com",
			want: &URL{
				Raw:  "http://example.com",
				Host: "example.com",
				Port: "80",
			},
		},
		{
			name: "host and port",
			in:   "http://example.com:8888",
			want: &URL{
				Raw:  "http://example.com:8888",
				Host: "example.com",
				Port: "8888",
			},
		},
		{
			name: "host port and path",
			in:   "http://example.com:8888/index.html",
			want: &URL{
				Raw:  "http://example.com:8888/index.html",
				Host: "example.com",
				Port: "8888",
				Path: "index.html",
			},
		},
		{
			name: "host port path and searchpart",
			in:   "http://example.com:8888/index.html?a=123&b=456",
			want: &URL{
				Raw:        "http://example.com:8888/index.html?a=123&b=456",
				Host:       "example.com",
				Port:       "8888",
				Path:       "index.html",
				Searchpart: "a=123&b=456",
			},
		},
		{
			name: "default port with path",
			in:   "http://example.com/a/b",
			want: &URL{
				Raw:  "http://example.com/a/b",
				Host: "example.com",
				Port: "80",
				Path: "a/b",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseURL(tt.in)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("URL mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseURLRejectsBadSchemes(t *testing.T) {
	for _, in := range []string{
		"example.com",
		"https://example.com/",
		"ftp://example.com/",
		"",
	} {
		_, err := ParseURL(in)
		require.ErrorIs(t, err, ErrInvalidScheme, "input %q", in)
	}
}
