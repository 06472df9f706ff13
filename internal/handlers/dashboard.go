package handlers

import (
	"fmt"
	"net/http"

	"github.com/diewo77/go-assets/i18n"
	"github.com/diewo77/go-assets/internal/middleware"
	"github.com/diewo77/go-assets/internal/report"
	"github.com/diewo77/go-assets/internal/store"
	"github.com/diewo77/go-assets/view"
	"go.uber.org/zap"
)

// DashboardHandler renders the HTML overview at "/".
type DashboardHandler struct {
	store    *store.Store
	selector *report.Selector
	log      *zap.Logger
}

func NewDashboardHandler(st *store.Store, sel *report.Selector, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{store: st, selector: sel, log: log}
}

// Show lists all clients for the selector and the equipment of the chosen
// client (or every asset). It uses the report selector so the page shows
// exactly what an export would contain.
func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	lang := middleware.LangFrom(r)
	clientID, err := queryClientID(r)
	if err != nil {
		// unparsable filter shows the unfiltered page
		clientID = nil
	}
	clients, err := h.store.ListClients(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	sel, err := h.selector.Resolve(r.Context(), clientID, lang)
	if err != nil {
		h.fail(w, err)
		return
	}
	counts, err := h.store.StatusCounts(r.Context(), clientID)
	if err != nil {
		h.fail(w, err)
		return
	}
	var selected any = ""
	exportQuery := ""
	if clientID != nil && !sel.ClientMissing {
		selected = *clientID
		exportQuery = fmt.Sprintf("?client_id=%d", *clientID)
	}
	err = view.Render(w, r, "dashboard.html", map[string]any{
		"Title":            sel.Title,
		"Subtitle":         sel.Subtitle,
		"Clients":          clients,
		"Equipment":        sel.Records,
		"SelectedClientID": selected,
		"ExportQuery":      exportQuery,
		"NoClient":         i18n.T(lang, "no_client"),
		"Counts":           counts,
	})
	if err != nil {
		h.fail(w, err)
	}
}

func (h *DashboardHandler) fail(w http.ResponseWriter, err error) {
	h.log.Error("dashboard failed", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
