package toybrowser

import "strings"

// httpScheme is the only scheme the pipeline's URL parser accepts. Anything
// else is rejected with an UnsupportedSchemeError.
const httpScheme = "http://"

// defaultPort is used when the authority section carries no explicit port.
const defaultPort = "80"

// URL is the result of parsing a raw URL string. Host, Port and Path are
// always populated (Port defaults to "80", Path to "") even when the
// respective section was absent from the input.
type URL struct {
	Raw  string
	Host string
	Port string
	Path string
}

// ParseURL splits raw into host, port and path. It only recognizes the
// http:// scheme; everything else is UnsupportedSchemeError.
//
// The algorithm is deliberately naive: strip the scheme, split once on the
// first "/" into authority and path-plus-query, split the authority on ":"
// for host/port, and split the path-plus-query on "?" keeping only the
// prefix. There is no percent-decoding, no IPv6 bracket handling, and no
// normalization of any kind.
func ParseURL(raw string) (URL, error) {
	if !strings.HasPrefix(raw, httpScheme) {
		return URL{}, &UnsupportedSchemeError{Raw: raw}
	}

	rest := strings.TrimPrefix(raw, httpScheme)

	authority, pathAndQuery, hasPath := strings.Cut(rest, "/")

	host, port, hasPort := strings.Cut(authority, ":")
	if !hasPort {
		port = defaultPort
	}

	path := ""
	if hasPath {
		path, _, _ = strings.Cut(pathAndQuery, "?")
	}

	return URL{
		Raw:  raw,
		Host: host,
		Port: port,
		Path: path,
	}, nil
}
