package usgs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seismoview/quake-globe/internal/domain"
	"github.com/seismoview/quake-globe/internal/observability"
)

const feedBody = `{
	"type": "FeatureCollection",
	"features": [
		{
			"id": "us7000test1",
			"geometry": {"type": "Point", "coordinates": [139.7, 35.6, 10.0]},
			"properties": {"mag": 5.0, "place": "near Tokyo, Japan", "time": 1767225600000}
		},
		{
			"id": "us7000test2",
			"geometry": {"type": "Point", "coordinates": [0.0, 0.0, 0.0]},
			"properties": {"mag": null, "time": 1767225660000}
		}
	]
}`

func testClient(url string) *Client {
	return NewClient(url, 5*time.Second,
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Accept"), "geo+json")
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	snapshot, err := testClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Events, 2)
	assert.Equal(t, "us7000test1", snapshot.Events[0].ID)
	assert.Equal(t, 0.0, snapshot.Events[1].Magnitude)
	assert.Equal(t, domain.UnknownPlace, snapshot.Events[1].Place)
	assert.False(t, snapshot.FetchedAt.IsZero())
}

func TestClient_Fetch_HTTPErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream broken", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
	assert.NotErrorIs(t, err, domain.ErrParse)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_Fetch_NetworkErrorIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // refuse connections

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
}

func TestClient_Fetch_TimeoutIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond,
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
}

func TestClient_Fetch_MalformedBodyIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not geojson</html>"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
	assert.NotErrorIs(t, err, domain.ErrFetch)
}

func TestClient_Fetch_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(srv.URL).Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetch)
}
