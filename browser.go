// Package browser is a minimal browser engine core: it ties the URL and HTTP
// text layers to the HTML parsing core in the html subpackage. Layout and
// rendering live elsewhere and read the returned tree read-only.
package browser

import (
	"log/slog"

	"github.com/Maru32768/saba-book-impl/html"
)

// A Browser turns raw HTTP response text into parsed pages. It performs no
// network I/O itself; the transport hands it complete response buffers.
type Browser struct {
	logger *slog.Logger
}

// Options configures a Browser. The zero value is usable.
type Options struct {
	// Logger receives recovered parse conditions and debug tree dumps.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// New creates a Browser. opts may be nil.
func New(opts *Options) *Browser {
	b := &Browser{}
	if opts != nil {
		b.logger = opts.Logger
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// A Page is the result of loading one response: the response metadata and
// the document tree constructed from its body.
type Page struct {
	Response *HTTPResponse
	Window   *html.Window
}

// Load parses raw response text and constructs the document tree from its
// body. Malformed markup is recovered from silently and surfaces only in the
// log; a malformed response (no status line) fails the load.
func (b *Browser) Load(rawResponse string) (*Page, error) {
	resp, err := ParseResponse(rawResponse)
	if err != nil {
		return nil, err
	}

	win, err := html.Parse(resp.Body)
	if err != nil {
		b.logger.Warn("recovered from malformed markup",
			slog.Any("error", err))
	}
	b.logger.Debug("constructed document tree",
		slog.String("version", resp.Version),
		slog.Int("status", resp.StatusCode),
		slog.String("tree", html.Render(win)))

	return &Page{Response: resp, Window: win}, nil
}
