package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kova98/redditthings/metrics"
	"github.com/kova98/redditthings/models"
	"github.com/kova98/redditthings/sources"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "models", "testdata", name))
	require.NoError(t, err)
	return b
}

func decodeRequest(schema string, body []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/decode/"+schema, bytes.NewReader(body))
	req.SetPathValue("schema", schema)
	return req
}

func TestDecode_Submissions(t *testing.T) {
	h := NewDecodeHandler(nil, metrics.New())

	res := h.Decode(httptest.NewRecorder(), decodeRequest("submissions", readFixture(t, "new.json")))

	require.Equal(t, http.StatusOK, res.Code)
	summary := res.Body.(models.ListingSummary)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, "t3_def", summary.Items[1].Fullname)
	assert.True(t, summary.Items[1].Edited)
}

func TestDecode_FailureIsUnprocessable(t *testing.T) {
	m := metrics.New()
	h := NewDecodeHandler(nil, m)
	body := strings.Replace(string(readFixture(t, "new.json")), `"edited": false`, `"edited": true`, 1)

	res := h.Decode(httptest.NewRecorder(), decodeRequest("submissions", []byte(body)))

	require.Equal(t, http.StatusUnprocessableEntity, res.Code)
	errRes := res.Body.(models.DecodeErrorResponse)
	assert.Equal(t, "UnexpectedFieldShape", errRes.Kind)
	assert.Equal(t, "edited", errRes.Field)
	assert.Equal(t, []int{0}, errRes.Path)

	count, err := testutil.GatherAndCount(m.Registry(), "redditthings_decode_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDecode_MalformedJSON(t *testing.T) {
	h := NewDecodeHandler(nil, metrics.New())

	res := h.Decode(httptest.NewRecorder(), decodeRequest("about", []byte(`{"kind": "t5",`)))

	require.Equal(t, http.StatusUnprocessableEntity, res.Code)
	assert.Equal(t, "MalformedJSON", res.Body.(models.DecodeErrorResponse).Kind)
}

func TestDecode_UnknownSchema(t *testing.T) {
	h := NewDecodeHandler(nil, metrics.New())

	res := h.Decode(httptest.NewRecorder(), decodeRequest("users", []byte(`{}`)))
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestGetThread(t *testing.T) {
	thread := readFixture(t, "thread.json")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/comments/abc.json" {
			http.NotFound(w, r)
			return
		}
		w.Write(thread)
	}))
	defer srv.Close()

	m := metrics.New()
	h := NewDecodeHandler(sources.NewClient(http.DefaultClient, m, srv.URL, "test"), m)

	req := httptest.NewRequest(http.MethodGet, "/threads/abc", nil)
	req.SetPathValue("id", "abc")
	res := h.GetThread(httptest.NewRecorder(), req)

	require.Equal(t, http.StatusOK, res.Code)
	assert.Len(t, res.Body.(models.ThreadSummary).Comments, 3)
}

func TestGetSubredditAbout_BadUpstreamBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"kind":"t5","data":{"display_name":"golang"}}`))
	}))
	defer srv.Close()

	m := metrics.New()
	h := NewDecodeHandler(sources.NewClient(http.DefaultClient, m, srv.URL, "test"), m)

	req := httptest.NewRequest(http.MethodGet, "/subreddits/golang/about", nil)
	req.SetPathValue("name", "golang")
	res := h.GetSubredditAbout(httptest.NewRecorder(), req)

	require.Equal(t, http.StatusBadGateway, res.Code)
	assert.Equal(t, "MissingField", res.Body.(models.DecodeErrorResponse).Kind)
}
