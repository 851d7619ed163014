package httpapi

import "net/http"

type optionDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Filter and sort options are served to the clients so new options roll
// out without an app release. The ids are stable handles the chip bar
// keys its selection state on.
var filterOptions = []optionDTO{
	{ID: "f1", Label: "All", Value: "all"},
	{ID: "f2", Label: "League", Value: "league"},
	{ID: "f3", Label: "Cup", Value: "cup"},
	{ID: "f4", Label: "International", Value: "international"},
}

var sortOptions = []optionDTO{
	{ID: "s1", Label: "Soonest", Value: "date"},
	{ID: "s2", Label: "Nearest", Value: "distance"},
}

func (h *Handler) ListFilters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFilters")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string][]optionDTO{"filters": filterOptions})
}

func (h *Handler) ListSorts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSorts")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string][]optionDTO{"sorts": sortOptions})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
