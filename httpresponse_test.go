package toybrowser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	t.Run("empty status line and body", func(t *testing.T) {
		r, err := ParseResponse("HTTP/1.1 200 OK\n\n")
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1", r.Version)
		require.Equal(t, uint(200), r.StatusCode)
		require.Equal(t, "OK", r.Reason)
		require.Empty(t, r.Headers)
		require.Empty(t, r.Body)
	})

	t.Run("bad status code defaults to 404 and headers are preserved in order", func(t *testing.T) {
		raw := "HTTP/1.1 xxx OK\nHost: h:80 \nContent-Length:11\n\nhello world"
		r, err := ParseResponse(raw)
		require.NoError(t, err)
		require.Equal(t, uint(404), r.StatusCode)

		want := []Header{
			{Name: "Host", Value: "h:80"},
			{Name: "Content-Length", Value: "11"},
		}
		if diff := cmp.Diff(want, r.Headers); diff != "" {
			t.Errorf("headers mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "hello world", r.Body)

		v, ok := r.HeaderValue("Host")
		require.True(t, ok)
		require.Equal(t, "h:80", v)

		_, ok = r.HeaderValue("host")
		require.False(t, ok, "header lookup is case-sensitive")
	})

	t.Run("no headers at all", func(t *testing.T) {
		r, err := ParseResponse("HTTP/1.1 200 OK\nhello world")
		require.NoError(t, err)
		require.Empty(t, r.Headers)
		require.Equal(t, "hello world", r.Body)
	})

	t.Run("lf-cr sequence is rewritten to lf", func(t *testing.T) {
		raw := "HTTP/1.1 200 OK\n\rHost: h\n\n\rbody"
		r, err := ParseResponse(raw)
		require.NoError(t, err)
		v, ok := r.HeaderValue("Host")
		require.True(t, ok)
		require.Equal(t, "h", v)
		require.Equal(t, "body", r.Body)
	})

	t.Run("fails without any newline", func(t *testing.T) {
		_, err := ParseResponse("HTTP/1.1 200 OK")
		require.ErrorIs(t, err, ErrMalformedResponse)
	})
}
