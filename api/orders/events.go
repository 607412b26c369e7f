package orders

import (
	"encoding/json"
	"fmt"
	"mesalink_server/api/middleware"
	"net/http"
	"time"

	"github.com/MonkyMars/gecho"
)

// HandleOrderEvents streams the live order feed as server-sent events. The
// first message is a full snapshot; after that the client applies incremental
// change events and can rebuild from a fresh connection at any time.
func (orm *OrderRoutesManager) HandleOrderEvents(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		gecho.InternalServerError(w, gecho.WithMessage("Streaming is not supported"), gecho.Send())
		return
	}

	snapshot, events, unsubscribe, err := orm.feedService.Subscribe(r.Context(), barId)
	if err != nil {
		orm.logger.Error("Failed to subscribe to order feed", gecho.Field("error", err), gecho.Field("bar_id", barId))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to open the order feed"), gecho.Send())
		return
	}
	defer unsubscribe()

	// The stream stays open far longer than the server write timeout
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, "snapshot", snapshot); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, "change", event); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", name, data)
	return err
}
