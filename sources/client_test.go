package sources

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kova98/redditthings/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureServer(t *testing.T, routes map[string][]byte) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "redditthings-test", r.Header.Get("User-Agent"))
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientThread(t *testing.T) {
	srv := newFixtureServer(t, map[string][]byte{"/comments/abc.json": readFixture(t, "thread.json")})
	client := NewClient(http.DefaultClient, metrics.New(), srv.URL+"/", "redditthings-test")

	thread, err := client.Thread(t.Context(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "t3_abc", thread.Submission().Name)
	assert.Len(t, thread.TopLevel(), 2)
}

func TestClientAbout(t *testing.T) {
	srv := newFixtureServer(t, map[string][]byte{"/r/golang/about.json": readFixture(t, "about.json")})
	client := NewClient(http.DefaultClient, metrics.New(), srv.URL, "redditthings-test")

	about, err := client.About(t.Context(), "golang")
	require.NoError(t, err)
	assert.Equal(t, "golang", about.Data.DisplayName)
	assert.Nil(t, about.Data.SubmitTextHTML)
}

func TestClientStatusError(t *testing.T) {
	srv := newFixtureServer(t, nil)
	client := NewClient(http.DefaultClient, metrics.New(), srv.URL, "redditthings-test")

	_, err := client.About(t.Context(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
