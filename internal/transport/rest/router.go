package rest

import (
	"log/slog"
	"net/http"

	"github.com/mkravets/contentangle-backend/internal/config"
	"github.com/mkravets/contentangle-backend/internal/transport/middleware"
)

// RouterDeps carries everything the HTTP router mounts.
type RouterDeps struct {
	Brands      *BrandHandler
	Content     *ContentHandler
	Events      *EventStreamHandler
	Health      *HealthHandler
	RateLimiter *middleware.RateLimiter
	Logger      *slog.Logger
	Config      *config.Config
}

// NewRouter assembles the route table and middleware chain. Generation
// routes get their own rate limit since each call fans out to the AI
// provider.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Probes stay outside the API chain.
	mux.HandleFunc("GET /live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)
	mux.HandleFunc("GET /health", deps.Health.Health)

	generate := func(h http.HandlerFunc) http.Handler {
		if deps.RateLimiter != nil && deps.Config.RateLimit.Enabled {
			return deps.RateLimiter.Limit(deps.Config.RateLimit.Limit)(h)
		}
		return h
	}

	mux.HandleFunc("POST /api/v1/brands", deps.Brands.Create)
	mux.HandleFunc("GET /api/v1/brands", deps.Brands.List)
	mux.HandleFunc("GET /api/v1/brands/{id}", deps.Brands.Get)
	mux.HandleFunc("PATCH /api/v1/brands/{id}", deps.Brands.Update)
	mux.HandleFunc("DELETE /api/v1/brands/{id}", deps.Brands.Delete)
	mux.Handle("POST /api/v1/brands/{id}/autofill", generate(deps.Brands.Autofill))

	mux.HandleFunc("GET /api/v1/brands/{id}/angles", deps.Content.ListAngles)
	mux.Handle("POST /api/v1/brands/{id}/angles/generate", generate(deps.Content.GenerateAngles))
	mux.HandleFunc("DELETE /api/v1/angles/{id}", deps.Content.DeleteAngle)
	mux.HandleFunc("GET /api/v1/angles/{id}/ideas", deps.Content.ListIdeas)
	mux.Handle("POST /api/v1/angles/{id}/ideas/generate", generate(deps.Content.GenerateIdeas))
	mux.HandleFunc("GET /api/v1/ideas/{id}/content", deps.Content.GetContent)
	mux.Handle("POST /api/v1/ideas/{id}/content/generate", generate(deps.Content.GenerateContent))
	mux.HandleFunc("PUT /api/v1/ideas/{id}/content", deps.Content.SaveDraft)
	mux.HandleFunc("POST /api/v1/ideas/{id}/content/autosave", deps.Content.AutosaveDraft)

	mux.Handle("GET /api/v1/events", deps.Events)

	chain := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.Config.CORS),
		middleware.Identity,
	)

	return chain(mux)
}
