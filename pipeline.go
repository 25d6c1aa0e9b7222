package toybrowser

import "toybrowser/html"

// Fetch chains the three top-level entry points of the ingestion pipeline:
// it parses raw as an HTTP response, then feeds the response body through
// the HTML tokenizer and tree constructor, and returns the resulting
// Window. It is a convenience wrapper; none of the parsing logic lives
// here.
func Fetch(raw string, opts ...html.Option) (*html.Window, error) {
	resp, err := ParseResponse(raw)
	if err != nil {
		return nil, err
	}
	return html.Parse(resp.Body, opts...), nil
}
