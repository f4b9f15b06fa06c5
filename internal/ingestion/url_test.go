package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestFromURL_InvalidURL(t *testing.T) {
	tests := []struct {
		name   string
		urlStr string
	}{
		{"empty URL", ""},
		{"malformed URL", "not-a-url"},
		{"no scheme", "example.com"},
		{"no host", "http://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IngestFromURL(context.Background(), tt.urlStr, false)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrHTTPRequestFailed)
		})
	}
}

func TestIngestFromURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`
			<html><body>
				<nav>Navigation junk</nav>
				<div class="job-description">
					<h1>Backend Engineer</h1>
					<p>Requirements:</p>
					<ul><li>Go experience</li></ul>
				</div>
				<footer>Footer junk</footer>
			</body></html>`))
	}))
	defer server.Close()

	result, err := IngestFromURL(context.Background(), server.URL, false)
	require.NoError(t, err)

	assert.Contains(t, result.HTML, "job-description")
	assert.Contains(t, result.Text, "Backend Engineer")
	assert.Contains(t, result.Text, "Go experience")
	assert.NotContains(t, result.Text, "Navigation junk")
	assert.NotContains(t, result.Text, "Footer junk")

	require.NotNil(t, result.Metadata)
	assert.Equal(t, server.URL, result.Metadata.URL)
	assert.Len(t, result.Metadata.Hash, 64)
}

func TestIngestFromURL_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := IngestFromURL(context.Background(), server.URL, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrHTTPRequestFailed)
}
