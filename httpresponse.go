package toybrowser

import (
	"strconv"
	"strings"
)

// Header is a single name/value pair from an HTTP response. Unlike net/http,
// names are compared case-sensitively on lookup: the reduced subset doesn't
// canonicalize header casing.
type Header struct {
	Name  string
	Value string
}

// Response is the result of parsing a raw HTTP response. StatusCode defaults
// to 404 when the status line's numeric field fails to parse, matching the
// reduced subset's "never fail on a bad status code" policy.
type Response struct {
	Version    string
	StatusCode uint
	Reason     string
	Headers    []Header
	Body       string
}

// HeaderValue performs a case-sensitive linear lookup over Headers. It
// returns ("", false) when no header with that exact name was seen.
func (r *Response) HeaderValue(name string) (string, bool) {
	for _, h := range r.Headers {
		if h.Name == name {
			return h.Value, true
		}
	}
	return "", false
}

// ParseResponse splits a raw response into status line, headers and body.
//
// raw is trimmed of leading whitespace, then every "\n\r" (line feed
// followed by carriage return — not the standard "\r\n") is rewritten to a
// plain "\n". This is the contract the pipeline was built against, not a
// typo: see SPEC_FULL.md §9 open question 1.
func ParseResponse(raw string) (*Response, error) {
	preprocessed := strings.Replace(strings.TrimLeft(raw, " \t\n\r"), "\n\r", "\n", -1)

	statusLine, remainder, ok := strings.Cut(preprocessed, "\n")
	if !ok {
		return nil, ErrMalformedResponse
	}

	resp := &Response{StatusCode: 404}

	fields := strings.Split(statusLine, " ")
	if len(fields) > 0 {
		resp.Version = fields[0]
	}
	if len(fields) > 1 {
		if code, err := strconv.ParseUint(fields[1], 10, 64); err == nil {
			resp.StatusCode = uint(code)
		}
	}
	if len(fields) > 2 {
		resp.Reason = fields[2]
	}

	headerBlock, body, hasHeaders := strings.Cut(remainder, "\n\n")
	if hasHeaders {
		for _, line := range strings.Split(headerBlock, "\n") {
			name, value, ok := strings.Cut(line, ":")
			if !ok {
				continue
			}
			resp.Headers = append(resp.Headers, Header{
				Name:  strings.TrimSpace(name),
				Value: strings.TrimSpace(value),
			})
		}
		resp.Body = body
	} else {
		resp.Body = strings.TrimLeft(remainder, "\n")
	}

	return resp, nil
}
