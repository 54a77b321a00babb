package browser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseResponseStatusLineOnly(t *testing.T) {
	res, err := ParseResponse("HTTP/1.1 200 OK\n\n")
	require.NoError(t, err)

	require.Equal(t, "HTTP/1.1", res.Version)
	require.Equal(t, 200, res.StatusCode)
	require.Equal(t, "OK", res.Reason)
	require.Empty(t, res.Headers)
}

func TestParseResponseOneHeader(t *testing.T) {
	res, err := ParseResponse("HTTP/1.1 200 OK\nDate:xx xx xx\n\n")
	require.NoError(t, err)

	if diff := cmp.Diff([]Header{{Name: "Date", Value: "xx xx xx"}}, res.Headers); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}

	v, err := res.Header("Date")
	require.NoError(t, err)
	require.Equal(t, "xx xx xx", v)
}

func TestParseResponseTwoHeadersWithWhitespace(t *testing.T) {
	res, err := ParseResponse("HTTP/1.1 200 OK\nDate: xx xx xx\nContent-Length: 42\n\n")
	require.NoError(t, err)

	want := []Header{
		{Name: "Date", Value: "xx xx xx"},
		{Name: "Content-Length", Value: "42"},
	}
	if diff := cmp.Diff(want, res.Headers); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
}

func TestParseResponseBody(t *testing.T) {
	res, err := ParseResponse("HTTP/1.1 200 OK\nDate: xx xx xx\n\nbody message")
	require.NoError(t, err)
	require.Equal(t, "body message", res.Body)
}

func TestParseResponseCRLF(t *testing.T) {
	res, err := ParseResponse("HTTP/1.1 404 Not Found\r\nDate: xx\r\n\r\n<html></html>")
	require.NoError(t, err)

	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, "Not Found", res.Reason)
	require.Equal(t, "<html></html>", res.Body)

	v, err := res.Header("Date")
	require.NoError(t, err)
	require.Equal(t, "xx", v)
}

func TestParseResponseNoSeparator(t *testing.T) {
	// Without a blank line the header list is empty and the remainder is
	// the body.
	res, err := ParseResponse("HTTP/1.1 200 OK\nno separator here")
	require.NoError(t, err)
	require.Empty(t, res.Headers)
	require.Equal(t, "no separator here", res.Body)
}

func TestParseResponseInvalid(t *testing.T) {
	_, err := ParseResponse("HTTP/1.1 200 OK")
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestHeaderNotFound(t *testing.T) {
	res, err := ParseResponse("HTTP/1.1 200 OK\nDate: xx\n\n")
	require.NoError(t, err)

	_, err = res.Header("Content-Type")
	require.ErrorIs(t, err, ErrHeaderNotFound)
}
