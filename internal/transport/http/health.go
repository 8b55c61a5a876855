package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"storefront/pkg/platform/httputil"
	"storefront/pkg/requestcontext"
)

// Check is one readiness dependency.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readyz probes every dependency in parallel with a short deadline.
func readyz(logger *slog.Logger, checks []Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		results := make([]error, len(checks))
		var g errgroup.Group
		for i, c := range checks {
			g.Go(func() error {
				results[i] = c.Probe(ctx)
				return nil
			})
		}
		_ = g.Wait()

		resp := readinessResponse{Status: "ready", Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for i, c := range checks {
			if err := results[i]; err != nil {
				resp.Checks[c.Name] = "down"
				resp.Status = "not_ready"
				status = http.StatusServiceUnavailable
				logger.WarnContext(ctx, "readiness check failed",
					"check", c.Name,
					"request_id", requestcontext.RequestID(ctx),
					"error", err,
				)
				continue
			}
			resp.Checks[c.Name] = "up"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
