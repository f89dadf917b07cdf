package invoice

import (
	"fmt"
	"net/http"
	"time"

	"github.com/angelofallars/hyperinvoice/app/auth"
	"github.com/angelofallars/hyperinvoice/internal/domain"
)

// amountEvent is the SSE event name the page swaps into its total display.
const amountEvent = "amount"

// handleTicker streams the count-up of the form's total as Server-Sent
// Events. The stream opens with the current total so a reconnecting page
// catches up.
func (hg *HandlerGroup) handleTicker(w http.ResponseWriter, r *http.Request) {
	form, err := auth.GetForm(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rc := http.NewResponseController(w)
	// Streams outlive the server's write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func(v float64) error {
		_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", amountEvent, domain.FormatDisplayAmount(v))
		if err != nil {
			return err
		}
		return rc.Flush()
	}

	frames, detach := form.Attach()
	defer detach()

	_, total := form.Snapshot()
	if err := send(total.InexactFloat64()); err != nil {
		hg.slog.Warn("frame stream unsupported", "form", form.ID, "error", err)
		return
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case v := <-frames:
			if err := send(v); err != nil {
				return
			}
		}
	}
}
