package rest

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mkravets/contentangle-backend/internal/bus"
)

// eventSource is the subscription surface EventStreamHandler needs.
type eventSource interface {
	Subscribe(event bus.Event, h bus.Handler) func()
}

// EventStreamHandler streams bus events to the browser over SSE. The frontend
// uses it to refresh views after generation finishes and to show toasts.
type EventStreamHandler struct {
	events eventSource
	log    *slog.Logger

	// heartbeat keeps idle connections alive through proxies.
	heartbeat time.Duration
}

// NewEventStreamHandler creates an EventStreamHandler.
func NewEventStreamHandler(events eventSource, logger *slog.Logger) *EventStreamHandler {
	return &EventStreamHandler{
		events:    events,
		log:       logger.With("handler", "events"),
		heartbeat: 25 * time.Second,
	}
}

type sseMessage struct {
	event string
	data  []byte
}

// ServeHTTP handles GET /api/v1/events.
func (h *EventStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	// Long-lived stream: the server's WriteTimeout must not apply here.
	rc := http.NewResponseController(w)
	rc.SetWriteDeadline(time.Time{}) //nolint:errcheck

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Bus delivery is synchronous, so the handler hands off to a buffered
	// channel. A client too slow to drain it loses messages rather than
	// stalling publishers.
	msgs := make(chan sseMessage, 32)
	forward := func(event bus.Event) bus.Handler {
		return func(payload any) {
			data, err := json.Marshal(payload)
			if err != nil {
				h.log.ErrorContext(r.Context(), "marshal event payload",
					slog.String("event", string(event)),
					slog.Any("error", err),
				)
				return
			}
			select {
			case msgs <- sseMessage{event: string(event), data: data}:
			default:
				h.log.WarnContext(r.Context(), "dropping event for slow client",
					slog.String("event", string(event)),
				)
			}
		}
	}

	unsubContent := h.events.Subscribe(bus.EventContentGenerated, forward(bus.EventContentGenerated))
	defer unsubContent()
	unsubToast := h.events.Subscribe(bus.EventShowToast, forward(bus.EventShowToast))
	defer unsubToast()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(w, ": ping\n\n")
			flusher.Flush()
		case msg := <-msgs:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.event, msg.data)
			flusher.Flush()
		}
	}
}
