package browse

import (
	"context"
	"log/slog"

	"github.com/kmies/bestiary/internal/pokeapi"
	"github.com/kmies/bestiary/internal/state"
)

// Detailer orchestrates fetching and resetting of a single detail
// record, independent of the list lifecycle.
type Detailer struct {
	gateway pokeapi.Gateway
	store   *state.Store
	log     *slog.Logger
}

// NewDetailer builds a Detailer. A nil logger discards output.
func NewDetailer(gateway pokeapi.Gateway, store *state.Store, log *slog.Logger) *Detailer {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Detailer{gateway: gateway, store: store, log: log}
}

// Fetch loads the full record for id. No-op while another detail
// fetch is in flight. Failures store the classified message for
// display with a retry action.
func (d *Detailer) Fetch(ctx context.Context, id int) {
	gen, ok := d.store.BeginDetail(id)
	if !ok {
		return
	}
	detail, err := d.gateway.FetchDetail(ctx, id)
	if err != nil {
		d.log.Warn("detail fetch failed", "id", id, "error", err)
		d.store.FinishDetail(gen, nil, pokeapi.Message(err))
		return
	}
	d.store.FinishDetail(gen, &detail, "")
}

// Retry re-fetches the last requested record.
func (d *Detailer) Retry(ctx context.Context) {
	id := d.store.DetailID()
	if id <= 0 {
		return
	}
	d.Fetch(ctx, id)
}

// Reset clears the stored record and any error. Invoked when leaving
// the detail view.
func (d *Detailer) Reset() {
	d.store.ResetDetail()
}
