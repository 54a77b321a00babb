package browser

import (
	"errors"
	"strings"
)

// supportedSchemes is the allow-list of URL schemes the engine will fetch.
var supportedSchemes = []string{"http"}

// ErrInvalidScheme is returned for URLs whose scheme is absent or not on the
// allow-list.
var ErrInvalidScheme = errors.New("browser: invalid or unsupported scheme")

// A URL is the decomposed form of an absolute URL string.
type URL struct {
	// Raw is the original URL string.
	Raw string

	// Host is the host name, without any port.
	Host string

	// Port is the port as written in the URL, or "80" when omitted.
	Port string

	// Path is the text after the first "/" following the host, up to any
	// "?". It does not include a leading slash.
	Path string

	// Searchpart is the text after the first "?", without the "?".
	Searchpart string
}

// ParseURL validates the scheme of raw against the allow-list and splits the
// remainder into host, port, path and searchpart.
func ParseURL(raw string) (*URL, error) {
	if !hasSupportedScheme(raw) {
		return nil, ErrInvalidScheme
	}
	return &URL{
		Raw:        raw,
		Host:       extractHost(raw),
		Port:       extractPort(raw),
		Path:       extractPath(raw),
		Searchpart: extractSearchpart(raw),
	}, nil
}

func hasSupportedScheme(raw string) bool {
	for _, scheme := range supportedSchemes {
		if strings.HasPrefix(raw, scheme+"://") {
			return true
		}
	}
	return false
}

// removeScheme strips everything up to and including "://".
func removeScheme(raw string) string {
	if _, rest, ok := strings.Cut(raw, "://"); ok {
		return rest
	}
	return raw
}

func extractHost(raw string) string {
	rest := removeScheme(raw)
	if authority, _, ok := strings.Cut(rest, "/"); ok {
		rest = authority
	}
	host, _, _ := strings.Cut(rest, ":")
	return host
}

func extractPort(raw string) string {
	authority, _, _ := strings.Cut(removeScheme(raw), "/")
	if _, port, ok := strings.Cut(authority, ":"); ok {
		return port
	}
	return "80"
}

func extractPath(raw string) string {
	rest := removeScheme(raw)
	_, pathAndSearch, ok := strings.Cut(rest, "/")
	if !ok {
		return ""
	}
	path, _, _ := strings.Cut(pathAndSearch, "?")
	return path
}

func extractSearchpart(raw string) string {
	_, search, _ := strings.Cut(raw, "?")
	return search
}
