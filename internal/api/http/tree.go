package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/openlearn/coach/internal/content"
)

// GET /content/tree?topic_id=...
// Empty topic_id aggregates all channels under the synthetic root.
func TreeHandler(agg *content.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topicID := strings.TrimSpace(r.URL.Query().Get("topic_id"))
		tree, err := agg.Aggregate(r.Context(), topicID)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				http.Error(w, "topic not found", http.StatusNotFound)
				return
			}
			var apiErr *content.APIError
			if errors.As(err, &apiErr) {
				http.Error(w, "content service error", http.StatusBadGateway)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, http.StatusOK, tree)
	}
}
