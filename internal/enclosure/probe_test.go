package enclosure_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nDmitry/podfeed/internal/enclosure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadProber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		assert.Equal(t, "test-agent", r.UserAgent())

		switch r.URL.Path {
		case "/ump_500.mp3":
			w.Header().Set("Content-Type", "audio/mpeg")
			w.Header().Set("Content-Length", "12345")
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	p := enclosure.NewHeadProber("test-agent", 5*time.Second)
	ctx := context.Background()

	size, err := p.Probe(ctx, server.URL+"/ump_500.mp3")
	require.NoError(t, err)
	assert.Equal(t, "12345", size)

	_, err = p.Probe(ctx, server.URL+"/missing.mp3")
	assert.Error(t, err)
}

func TestHeadProberCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := enclosure.NewHeadProber("", 0).Probe(ctx, server.URL+"/a.mp3")
	assert.Error(t, err)
}
