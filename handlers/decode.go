package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/kova98/redditthings/metrics"
	"github.com/kova98/redditthings/models"
	"github.com/kova98/redditthings/sources"
	"github.com/kova98/redditthings/things"
)

const maxBodyBytes = 8 << 20

type DecodeHandler struct {
	client  *sources.Client
	metrics *metrics.Metrics
}

func NewDecodeHandler(client *sources.Client, m *metrics.Metrics) *DecodeHandler {
	return &DecodeHandler{client: client, metrics: m}
}

// Decode runs the posted body through the decoder for {schema}.
func (h *DecodeHandler) Decode(w http.ResponseWriter, r *http.Request) Result {
	schema := r.PathValue("schema")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return BadRequest("Could not read request body.")
	}

	summary, err := models.Summarize(schema, body)
	if errors.Is(err, models.ErrUnknownSchema) {
		return NotFound("Unknown schema.")
	}
	h.metrics.ObserveDecode(schema, err)
	if err != nil {
		return DecodeFailed(err)
	}

	return Ok(summary)
}

func (h *DecodeHandler) GetThread(w http.ResponseWriter, r *http.Request) Result {
	thread, err := h.client.Thread(r.Context(), r.PathValue("id"))
	if err != nil {
		return upstreamError(err, "get thread")
	}
	return Ok(models.SummarizeThread(thread))
}

func (h *DecodeHandler) GetSubredditAbout(w http.ResponseWriter, r *http.Request) Result {
	about, err := h.client.About(r.Context(), r.PathValue("name"))
	if err != nil {
		return upstreamError(err, "get subreddit about")
	}
	return Ok(models.SummarizeSubreddit(about.Data))
}

// upstreamError reports decode failures of Reddit's own responses as a bad
// gateway; anything else is an internal error.
func upstreamError(err error, message string) Result {
	var de *things.DecodeError
	if errors.As(err, &de) {
		return Result{
			Error: err,
			Code:  http.StatusBadGateway,
			Body:  models.NewDecodeErrorResponse(err),
		}
	}
	return InternalError(err, message)
}
