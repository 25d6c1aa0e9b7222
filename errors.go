package toybrowser

import "fmt"

// ErrMalformedResponse is returned by ParseResponse when the raw text
// contains no line feed at all, so no status line can be split off.
var ErrMalformedResponse = fmt.Errorf("malformed http response")

// UnsupportedSchemeError is returned by ParseURL for any input that does not
// begin with the http:// scheme. The reduced pipeline only ever talks to
// http origins; https, file, data, etc. are all rejected the same way.
type UnsupportedSchemeError struct {
	Raw string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("unsupported scheme in url %q", e.Raw)
}
