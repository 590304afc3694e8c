// internal/api/catalog/handlers.go
package catalog

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/codr1/designtokens/internal/api/apiutil"
	"github.com/codr1/designtokens/internal/api/htmx"
	"github.com/codr1/designtokens/internal/models"
	palettetempl "github.com/codr1/designtokens/internal/templates/components/palette"
	"github.com/codr1/designtokens/internal/templates/layouts"
)

const categoryIDParam = "id"

// PageOptions configures the page shell.
type PageOptions struct {
	Title  string
	Accent string
}

var (
	page     = PageOptions{Title: "Design Tokens"}
	pageOnce sync.Once
)

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(opts PageOptions) {
	pageOnce.Do(func() {
		if opts.Title != "" {
			page.Title = opts.Title
		}
		page.Accent = opts.Accent
	})
}

// /
func HandleCatalogPage(w http.ResponseWriter, r *http.Request) {
	component := layouts.Base(page.Title, page.Accent, palettetempl.CatalogList(models.Catalog()))
	if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render catalog page", "Failed to render page") {
		return
	}
}

// /api/v1/categories
func HandleCategoriesList(w http.ResponseWriter, r *http.Request) {
	categories := models.Catalog()

	if htmx.IsRequest(r) {
		component := palettetempl.CatalogList(categories)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render catalog", "Failed to render list") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write categories response")
	}
}

// /api/v1/categories/{id}
func HandleCategoryDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue(categoryIDParam))
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	category, err := models.CategoryByID(id)
	if err != nil {
		http.Error(w, "Category not found", http.StatusNotFound)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, category); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Int("category_id", id).Msg("Failed to write category response")
	}
}
