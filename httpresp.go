package browser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidResponse is returned for response text with no status line.
var ErrInvalidResponse = errors.New("browser: invalid HTTP response")

// ErrHeaderNotFound is returned by Header for names absent from the
// response.
var ErrHeaderNotFound = errors.New("browser: header not found")

// A Header is one response header line, with name and value trimmed.
type Header struct {
	Name  string
	Value string
}

// An HTTPResponse is the decomposed form of a raw HTTP response text. The
// engine does not speak the wire protocol itself; it only splits the text a
// transport hands it.
type HTTPResponse struct {
	Version    string
	StatusCode int
	Reason     string
	Headers    []Header
	Body       string
}

// ParseResponse splits raw response text into status line, headers and body.
// The status line ends at the first newline; its absence makes the response
// invalid. Headers end at the first blank line; without one the whole
// remainder is the body and the header list is empty.
func ParseResponse(raw string) (*HTTPResponse, error) {
	text := strings.TrimLeft(raw, " \t\r\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	statusLine, remaining, ok := strings.Cut(text, "\n")
	if !ok {
		return nil, fmt.Errorf("%w: no status line in %q", ErrInvalidResponse, raw)
	}

	var headers []Header
	headerText, body, ok := strings.Cut(remaining, "\n\n")
	if !ok {
		body = remaining
	} else {
		for _, line := range strings.Split(headerText, "\n") {
			name, value, _ := strings.Cut(line, ":")
			headers = append(headers, Header{
				Name:  strings.TrimSpace(name),
				Value: strings.TrimSpace(value),
			})
		}
	}

	version, rest, _ := strings.Cut(statusLine, " ")
	status, reason, _ := strings.Cut(rest, " ")
	code, err := strconv.Atoi(status)
	if err != nil {
		code = 404
	}

	return &HTTPResponse{
		Version:    version,
		StatusCode: code,
		Reason:     reason,
		Headers:    headers,
		Body:       body,
	}, nil
}

// Header returns the value of the first header with the given name.
func (r *HTTPResponse) Header(name string) (string, error) {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrHeaderNotFound, name)
}
