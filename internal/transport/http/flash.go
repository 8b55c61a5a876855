package httptransport

import (
	"net/http"

	"storefront/internal/session"
	"storefront/pkg/platform/httputil"
)

type flashResponse struct {
	Messages []session.Flash `json:"messages"`
}

// handleFlash hands queued toast messages to the page and clears them.
func handleFlash(w http.ResponseWriter, r *http.Request) {
	messages := []session.Flash{}
	if sess := session.FromContext(r.Context()); sess != nil {
		if taken := sess.TakeFlash(); len(taken) > 0 {
			messages = taken
		}
	}
	httputil.WriteJSON(w, http.StatusOK, flashResponse{Messages: messages})
}
