package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/SarbajitChatterjee/MatchesNearby/internal/usecase"
)

type listMatchesRequest struct {
	Filter string `validate:"omitempty,oneof=all league cup international"`
	Sort   string `validate:"omitempty,oneof=date distance"`
	Date   string
	City   string
	Next   int `validate:"omitempty,min=1,max=99"`
}

// ListMatches handles GET /api/matches. Results are always kickoff
// ordered; sort=distance is accepted for client compatibility and
// served in the same order until venue geodata lands.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	req := listMatchesRequest{
		Filter: strings.ToLower(strings.TrimSpace(query.Get("filter"))),
		Sort:   strings.ToLower(strings.TrimSpace(query.Get("sort"))),
		Date:   strings.TrimSpace(query.Get("date")),
		City:   strings.TrimSpace(query.Get("city")),
	}
	if rawNext := strings.TrimSpace(query.Get("next")); rawNext != "" {
		next, err := strconv.Atoi(rawNext)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: next must be a number", usecase.ErrInvalidInput))
			return
		}
		req.Next = next
	}

	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.ListMatches(ctx, usecase.ListMatchesInput{
		Date:      req.Date,
		Type:      req.Filter,
		City:      req.City,
		Lookahead: req.Next,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toMatchesResponse(items))
}
