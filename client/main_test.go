package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potholes/backend/server"
	"potholes/backend/server/api"
)

func withServer(t *testing.T, h http.HandlerFunc) {
	srv := httptest.NewServer(h)
	old := *baseURL
	*baseURL = srv.URL
	t.Cleanup(func() {
		*baseURL = old
		srv.Close()
	})
}

func TestGetJSON(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, server.EndPointStats, r.URL.Path)
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(`{"selector": "Fixed", "total": 4, "counts": []}`))
	})

	var r api.StatsResponse
	require.NoError(t, getJSON(server.EndPointStats, &r))
	assert.Equal(t, "Fixed", r.Selector)
	assert.Equal(t, 4, r.Total)
}

func TestGetJSONErrorStatus(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotAcceptable)
		w.Write([]byte(`{"error": "bad API version"}`))
	})

	var r api.StatsResponse
	err := getJSON(server.EndPointStats, &r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "406")
}
