package httpq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeResponse(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		resp, err := ComposeResponse(nil, nil, nil, nil, nil)
		require.NoError(t, err)
		require.Equal(t, StateTop, resp.State())
	})

	t.Run("identity only", func(t *testing.T) {
		resp, err := ComposeResponse("HTTP/1.1", 200, "OK", nil, nil)
		require.NoError(t, err)
		require.Equal(t, StateHeader, resp.State())
	})

	t.Run("with headers", func(t *testing.T) {
		resp, err := ComposeResponse("HTTP/1.1", 200, "OK", map[string]string{"Hello": "World"}, nil)
		require.NoError(t, err)
		require.Equal(t, StateBody, resp.State())
	})

	t.Run("partial identity", func(t *testing.T) {
		_, err := ComposeResponse(nil, 200, nil, nil, nil)
		require.ErrorIs(t, err, ErrIncompleteIdentity)
	})
}

func TestResponseFeed(t *testing.T) {
	resp := NewResponse()
	require.Equal(t, StateTop, resp.State())

	require.Equal(t, StateHeader, resp.Feed([]byte("HTTP/1.1 200 OK\r\n")))
	require.Equal(t, StateHeader, resp.Feed([]byte("Content-Length: 18\r\n")))

	require.Equal(t, StateBody, resp.Feed([]byte("\r\n")))
	require.Equal(t, "HTTP/1.1", resp.Protocol.String())
	require.Equal(t, "200", resp.Status.String())
	require.Equal(t, "OK", resp.Reason.String())

	require.Equal(t, StateBody, resp.Feed([]byte("Hello world!")))
	require.Equal(t, "Hello world!", resp.Body.String())
}

func TestParseResponse(t *testing.T) {
	resp := ParseResponse([]byte("HTTP/1.1 200 OK\r\n\r\n"))
	require.Equal(t, StateBody, resp.State())
	require.Equal(t, "200", resp.Status.String())
}

func TestResponseMultiWordReason(t *testing.T) {
	resp := ParseResponse([]byte("HTTP/1.1 404 Not Found\r\n\r\n"))
	require.Equal(t, StateBody, resp.State())
	require.Equal(t, "404", resp.Status.String())
	require.Equal(t, "Not Found", resp.Reason.String())
	require.Equal(t, []byte("HTTP/1.1 404 Not Found\r\n\r\n"), resp.Compile())
}

func TestResponseRaw(t *testing.T) {
	resp, err := ComposeResponse("HTTP/1.1", 200, "OK", map[string]string{"Hello": "World"}, "Hello world")
	require.NoError(t, err)
	require.Equal(t, []byte("HTTP/1.1 200 OK\r\nHello: World\r\n\r\nHello world"), resp.Raw())
}

func TestResponseString(t *testing.T) {
	resp, err := ComposeResponse("HTTP/1.1", 200, "OK", map[string]string{"Hello": "World"}, "Hello world")
	require.NoError(t, err)
	require.Equal(t, "← HTTP/1.1 200 OK\r\n← Hello: World\r\n← \r\n← Hello world", resp.String())
}
