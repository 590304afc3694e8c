// internal/api/nav/handlers.go
package nav

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/codr1/designtokens/internal/api/apiutil"
	"github.com/codr1/designtokens/internal/api/htmx"
	"github.com/codr1/designtokens/internal/models"
	palettetempl "github.com/codr1/designtokens/internal/templates/components/palette"
)

const (
	searchTimeout = 5 * time.Second
	maxSearchHits = 10
)

type groupLister interface {
	ListGroups(ctx context.Context) ([]models.ColorGroup, error)
}

var groups groupLister

func InitHandlers(g groupLister) {
	groups = g
}

// /api/v1/nav/search?q=
func HandleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		apiutil.WriteJSON(w, http.StatusOK, []models.ColorGroup{})
		return
	}
	if groups == nil {
		log.Ctx(r.Context()).Error().Msg("Search groups not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), searchTimeout)
	defer cancel()

	all, err := groups.ListGroups(ctx)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Search failed")
		return
	}
	results := matchGroups(all, q)

	if htmx.IsRequest(r) {
		component := palettetempl.GroupList(palettetempl.NewGroups(results, uuid.Nil))
		apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render search results", "Search failed")
		return
	}

	apiutil.WriteJSON(w, http.StatusOK, results)
}

// matchGroups keeps groups whose name contains q, ignoring case, in their
// original order.
func matchGroups(all []models.ColorGroup, q string) []models.ColorGroup {
	needle := strings.ToLower(q)
	results := []models.ColorGroup{}
	for _, group := range all {
		if strings.Contains(strings.ToLower(group.Name), needle) {
			results = append(results, group)
			if len(results) == maxSearchHits {
				break
			}
		}
	}
	return results
}
