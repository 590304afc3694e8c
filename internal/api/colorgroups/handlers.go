// internal/api/colorgroups/handlers.go
package colorgroups

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/codr1/designtokens/internal/api/apiutil"
	"github.com/codr1/designtokens/internal/api/htmx"
	"github.com/codr1/designtokens/internal/hexcolor"
	"github.com/codr1/designtokens/internal/models"
	palettetempl "github.com/codr1/designtokens/internal/templates/components/palette"
)

const (
	paletteQueryTimeout = 5 * time.Second
	groupIDParam        = "id"
	maxImportBytes      = 1 << 20

	refreshGroupsTrigger = "refreshGroupsList"
	refreshColorsTrigger = "refreshColorsList"
)

var (
	service     paletteService
	serviceOnce sync.Once
)

type paletteService interface {
	CreateGroup(ctx context.Context, name string) (models.ColorGroup, error)
	GetGroup(ctx context.Context, id uuid.UUID) (models.ColorGroup, error)
	ListGroups(ctx context.Context) ([]models.ColorGroup, error)
	DeleteGroups(ctx context.Context, ids []uuid.UUID) error
	ListColors(ctx context.Context, groupID uuid.UUID) ([]models.ColorEntry, error)
	AddColor(ctx context.Context, groupID uuid.UUID, name, hex string) (models.ColorEntry, error)
	ImportColors(ctx context.Context, groupID uuid.UUID, payload string) ([]models.ColorEntry, error)
	RemoveColors(ctx context.Context, groupID uuid.UUID, positions []int) ([]models.ColorEntry, error)
	MoveColors(ctx context.Context, groupID uuid.UUID, from []int, to int) ([]models.ColorEntry, error)
}

type groupRequest struct {
	Name string `json:"name"`
}

type deleteGroupsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type colorRequest struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type removeColorsRequest struct {
	Positions []int `json:"positions"`
}

type moveColorsRequest struct {
	From []int `json:"from"`
	To   *int  `json:"to"`
}

type groupDetailResponse struct {
	Group  models.ColorGroup `json:"group"`
	Colors []models.Swatch   `json:"colors"`
}

type decodeResponse struct {
	Input     string        `json:"input"`
	Valid     bool          `json:"valid"`
	Color     hexcolor.RGBA `json:"color"`
	Hex       string        `json:"hex"`
	CSS       string        `json:"css"`
	TextColor string        `json:"textColor"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(s paletteService) {
	if s == nil {
		return
	}
	serviceOnce.Do(func() {
		service = s
	})
}

// GET /api/v1/groups
func HandleGroupsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	groups, err := svc.ListGroups(ctx)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to list color groups")
		return
	}

	if htmx.IsRequest(r) {
		component := palettetempl.GroupList(palettetempl.NewGroups(groups, uuid.Nil))
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render color groups", "Failed to render list") {
			return
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"groups": groups}); err != nil {
		logger.Error().Err(err).Msg("Failed to write color groups response")
	}
}

// POST /api/v1/groups
func HandleGroupCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	req, err := decodeGroupRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	group, err := svc.CreateGroup(ctx, req.Name)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to create color group")
		return
	}

	if htmx.IsRequest(r) {
		htmx.Trigger(w, refreshGroupsTrigger)
		apiutil.WriteHTMLFeedback(w, http.StatusCreated, "Color group created.")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, group); err != nil {
		logger.Error().Err(err).Str("group_id", group.ID.String()).Msg("Failed to write color group create response")
	}
}

// DELETE /api/v1/groups
func HandleGroupsDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ids, err := decodeDeleteGroupsRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	if err := svc.DeleteGroups(ctx, ids); err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to delete color groups")
		return
	}

	writeDeleted(w, r, "Color groups deleted.")
}

// GET /api/v1/groups/{id}
func HandleGroupDetail(w http.ResponseWriter, r *http.Request) {
	handleGroupColors(w, r)
}

// DELETE /api/v1/groups/{id}
func HandleGroupDelete(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	groupID, err := groupIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid color group ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	if _, err := svc.GetGroup(ctx, groupID); err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to load color group")
		return
	}
	if err := svc.DeleteGroups(ctx, []uuid.UUID{groupID}); err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to delete color group")
		return
	}

	writeDeleted(w, r, "Color group deleted.")
}

// GET /api/v1/groups/{id}/colors
func HandleColorsList(w http.ResponseWriter, r *http.Request) {
	handleGroupColors(w, r)
}

// POST /api/v1/groups/{id}/colors
func HandleColorCreate(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	groupID, err := groupIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid color group ID", http.StatusBadRequest)
		return
	}

	req, err := decodeColorRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	entry, err := svc.AddColor(ctx, groupID, req.Name, req.Hex)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to add color")
		return
	}

	if htmx.IsRequest(r) {
		htmx.Trigger(w, refreshColorsTrigger)
		apiutil.WriteHTMLFeedback(w, http.StatusCreated, "Color added.")
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, models.NewSwatch(entry)); err != nil {
		logger.Error().Err(err).Str("group_id", groupID.String()).Msg("Failed to write color create response")
	}
}

// POST /api/v1/groups/{id}/colors/import
func HandleColorsImport(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	groupID, err := groupIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid color group ID", http.StatusBadRequest)
		return
	}

	payload, err := importPayload(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	entries, err := svc.ImportColors(ctx, groupID, payload)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to import colors")
		return
	}

	if htmx.IsRequest(r) {
		htmx.Trigger(w, refreshColorsTrigger)
		apiutil.WriteHTMLFeedback(w, http.StatusCreated, fmt.Sprintf("Imported %d colors.", len(entries)))
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusCreated, map[string]any{"colors": models.NewSwatches(entries)}); err != nil {
		logger.Error().Err(err).Str("group_id", groupID.String()).Msg("Failed to write color import response")
	}
}

// POST /api/v1/groups/{id}/colors/remove
func HandleColorsRemove(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	groupID, err := groupIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid color group ID", http.StatusBadRequest)
		return
	}

	positions, err := decodeRemoveColorsRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	entries, err := svc.RemoveColors(ctx, groupID, positions)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to remove colors")
		return
	}

	writeColorsChanged(w, r, entries, "Colors removed.")
}

// POST /api/v1/groups/{id}/colors/move
func HandleColorsMove(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	groupID, err := groupIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid color group ID", http.StatusBadRequest)
		return
	}

	req, err := decodeMoveColorsRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	entries, err := svc.MoveColors(ctx, groupID, req.From, *req.To)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to move colors")
		return
	}

	writeColorsChanged(w, r, entries, "Colors moved.")
}

// GET /api/v1/colors/decode?hex=
func HandleColorDecode(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("hex")
	valid := hexcolor.IsValid(input)
	swatch := models.NewSwatch(models.ColorEntry{Value: input})

	if htmx.IsRequest(r) {
		component := palettetempl.DecodedColor(input, swatch, valid)
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render decoded color", "Failed to render color") {
			return
		}
		return
	}

	resp := decodeResponse{
		Input:     input,
		Valid:     valid,
		Color:     swatch.Color,
		Hex:       swatch.Hex,
		CSS:       swatch.CSS,
		TextColor: swatch.TextColor,
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write decode response")
	}
}

func handleGroupColors(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	svc := loadService()
	if svc == nil {
		logger.Error().Msg("Palette service not initialized")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	groupID, err := groupIDFromRequest(r)
	if err != nil {
		http.Error(w, "Invalid color group ID", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), paletteQueryTimeout)
	defer cancel()

	group, err := svc.GetGroup(ctx, groupID)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to load color group")
		return
	}
	entries, err := svc.ListColors(ctx, groupID)
	if err != nil {
		apiutil.WriteServiceError(w, r, err, "Failed to list colors")
		return
	}

	if htmx.IsRequest(r) {
		component := palettetempl.ColorList(palettetempl.NewColorListData(group, entries))
		if !apiutil.RenderHTMLComponent(r.Context(), w, component, nil, "Failed to render colors", "Failed to render list") {
			return
		}
		return
	}

	resp := groupDetailResponse{Group: group, Colors: models.NewSwatches(entries)}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Str("group_id", groupID.String()).Msg("Failed to write colors response")
	}
}

func writeDeleted(w http.ResponseWriter, r *http.Request, message string) {
	if htmx.IsRequest(r) {
		htmx.Trigger(w, refreshGroupsTrigger)
		apiutil.WriteHTMLFeedback(w, http.StatusOK, message)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeColorsChanged(w http.ResponseWriter, r *http.Request, entries []models.ColorEntry, message string) {
	if htmx.IsRequest(r) {
		htmx.Trigger(w, refreshColorsTrigger)
		apiutil.WriteHTMLFeedback(w, http.StatusOK, message)
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"colors": models.NewSwatches(entries)}); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write colors response")
	}
}

func groupIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return apiutil.ParseUUIDField(r.PathValue(groupIDParam), "group id")
}

func decodeGroupRequest(r *http.Request) (groupRequest, error) {
	var req groupRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return groupRequest{}, fmt.Errorf("invalid JSON body: %w", err)
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return groupRequest{}, fmt.Errorf("invalid form data")
	}
	req.Name = r.FormValue("name")
	return req, nil
}

func decodeDeleteGroupsRequest(r *http.Request) ([]uuid.UUID, error) {
	if apiutil.IsJSONRequest(r) {
		var req deleteGroupsRequest
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		if len(req.IDs) == 0 {
			return nil, fmt.Errorf("ids is required")
		}
		return req.IDs, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form data")
	}
	return apiutil.ParseUUIDListField(r.Form["ids"], "ids")
}

func decodeColorRequest(r *http.Request) (colorRequest, error) {
	var req colorRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return colorRequest{}, fmt.Errorf("invalid JSON body: %w", err)
		}
		return req, nil
	}
	if err := r.ParseForm(); err != nil {
		return colorRequest{}, fmt.Errorf("invalid form data")
	}
	req.Name = r.FormValue("name")
	req.Hex = apiutil.FirstNonEmpty(r.FormValue("hex"), r.FormValue("value"))
	return req, nil
}

// importPayload returns the raw JSON body, or the "payload" form field for
// htmx form posts.
func importPayload(w http.ResponseWriter, r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if apiutil.IsJSONRequest(r) {
		defer r.Body.Close()
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return "", fmt.Errorf("failed to read import payload")
		}
		return string(data), nil
	}
	if err := r.ParseForm(); err != nil {
		return "", fmt.Errorf("invalid form data")
	}
	return r.FormValue("payload"), nil
}

func decodeRemoveColorsRequest(r *http.Request) ([]int, error) {
	if apiutil.IsJSONRequest(r) {
		var req removeColorsRequest
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		if len(req.Positions) == 0 {
			return nil, fmt.Errorf("positions is required")
		}
		return req.Positions, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("invalid form data")
	}
	return apiutil.ParseIntListField(r.Form["positions"], "positions")
}

func decodeMoveColorsRequest(r *http.Request) (moveColorsRequest, error) {
	var req moveColorsRequest
	if apiutil.IsJSONRequest(r) {
		if err := apiutil.DecodeJSON(r, &req); err != nil {
			return moveColorsRequest{}, fmt.Errorf("invalid JSON body: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return moveColorsRequest{}, fmt.Errorf("invalid form data")
		}
		from, err := apiutil.ParseIntListField(r.Form["from"], "from")
		if err != nil {
			return moveColorsRequest{}, err
		}
		to, err := apiutil.ParseNonNegativeIntField(r.FormValue("to"), "to")
		if err != nil {
			return moveColorsRequest{}, err
		}
		req = moveColorsRequest{From: from, To: &to}
	}

	if len(req.From) == 0 {
		return moveColorsRequest{}, fmt.Errorf("from is required")
	}
	if req.To == nil {
		return moveColorsRequest{}, fmt.Errorf("to is required")
	}
	return req, nil
}

func loadService() paletteService {
	return service
}
