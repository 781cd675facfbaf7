package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pingRequest = `{"jsonrpc":"2.0","id":1,"method":"quantum_ping","params":[]}`

func post(t *testing.T, url, authorization string) *http.Response {
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(pingRequest))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestHandlerHealth(t *testing.T) {
	handler, err := NewHandler(NewLoopback(), "key")
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := http.Get(server.URL + "/_health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandlerAccessKey(t *testing.T) {
	handler, err := NewHandler(NewLoopback(), "key")
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	defer server.Close()

	assert.Equal(t, http.StatusUnauthorized, post(t, server.URL, "").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, post(t, server.URL, "Bearer other").StatusCode)
	assert.Equal(t, http.StatusOK, post(t, server.URL, "Bearer key").StatusCode)
}

func TestHandlerWithoutAccessKey(t *testing.T) {
	handler, err := NewHandler(NewLoopback(), "")
	require.NoError(t, err)
	server := httptest.NewServer(handler)
	defer server.Close()

	assert.Equal(t, http.StatusOK, post(t, server.URL, "").StatusCode)
	assert.Equal(t, http.StatusOK, post(t, server.URL, "Bearer anything").StatusCode)
}
