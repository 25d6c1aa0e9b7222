package toybrowser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	t.Run("splits host, port and path", func(t *testing.T) {
		u, err := ParseURL("http://github.com:8080/foo/bar?page=2&order=asc")
		require.NoError(t, err)
		require.Equal(t, "github.com", u.Host)
		require.Equal(t, "8080", u.Port)
		require.Equal(t, "foo/bar", u.Path)
	})

	t.Run("defaults port and path when absent", func(t *testing.T) {
		u, err := ParseURL("http://example.com")
		require.NoError(t, err)
		require.Equal(t, "example.com", u.Host)
		require.Equal(t, "80", u.Port)
		require.Equal(t, "", u.Path)
	})

	t.Run("rejects non-http schemes", func(t *testing.T) {
		_, err := ParseURL("https://example.com")
		require.Error(t, err)
		var schemeErr *UnsupportedSchemeError
		require.ErrorAs(t, err, &schemeErr)

		_, err = ParseURL("hello world")
		require.Error(t, err)
	})

	t.Run("path without query string", func(t *testing.T) {
		u, err := ParseURL("http://example.com/foo/bar")
		require.NoError(t, err)
		require.Equal(t, "foo/bar", u.Path)
	})
}
