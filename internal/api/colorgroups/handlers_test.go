package colorgroups

// NOTE: Tests cannot use t.Parallel() due to shared package state.

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/codr1/designtokens/internal/models"
	"github.com/codr1/designtokens/internal/palette"
	"github.com/codr1/designtokens/internal/store"
	"github.com/codr1/designtokens/internal/store/sqlstore"
	"github.com/codr1/designtokens/internal/testutil"
)

func setupColorGroupHandlers(t *testing.T) *palette.Service {
	t.Helper()

	svc := palette.NewService(sqlstore.New(testutil.NewTestDB(t)))
	setService(t, svc)
	return svc
}

func setService(t *testing.T, svc paletteService) {
	t.Helper()

	service = svc
	t.Cleanup(func() {
		service = nil
		serviceOnce = sync.Once{}
	})
}

func createGroup(t *testing.T, svc *palette.Service, name string) models.ColorGroup {
	t.Helper()

	group, err := svc.CreateGroup(context.Background(), name)
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	return group
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withGroupID(req *http.Request, id uuid.UUID) *http.Request {
	req.SetPathValue("id", id.String())
	return req
}

type colorsResponse struct {
	Colors []models.Swatch `json:"colors"`
}

func decodeColors(t *testing.T, recorder *httptest.ResponseRecorder) []models.Swatch {
	t.Helper()

	var resp colorsResponse
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Colors
}

func swatchNames(swatches []models.Swatch) string {
	names := make([]string, len(swatches))
	for i, swatch := range swatches {
		names[i] = swatch.Entry.Name
	}
	return strings.Join(names, ",")
}

func TestCreateGroup_JSON(t *testing.T) {
	setupColorGroupHandlers(t)

	recorder := httptest.NewRecorder()
	HandleGroupCreate(recorder, jsonRequest(http.MethodPost, "/api/v1/groups", `{"name":"Brand"}`))

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
	}
	var group models.ColorGroup
	if err := json.NewDecoder(recorder.Body).Decode(&group); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if group.Name != "Brand" || group.ID == uuid.Nil {
		t.Fatalf("unexpected group: %+v", group)
	}
}

func TestCreateGroup_HTMXForm(t *testing.T) {
	setupColorGroupHandlers(t)

	form := url.Values{"name": {"Neutrals"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/groups", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	recorder := httptest.NewRecorder()

	HandleGroupCreate(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: %d", recorder.Code)
	}
	if got := recorder.Header().Get("HX-Trigger"); got != refreshGroupsTrigger {
		t.Fatalf("HX-Trigger = %q", got)
	}
}

func TestCreateGroup_InvalidName(t *testing.T) {
	setupColorGroupHandlers(t)

	recorder := httptest.NewRecorder()
	HandleGroupCreate(recorder, jsonRequest(http.MethodPost, "/api/v1/groups", `{"name":"   "}`))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", recorder.Code)
	}
}

func TestGroupsList_PreservesCreationOrder(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	createGroup(t, svc, "Brand")
	createGroup(t, svc, "Neutrals")

	recorder := httptest.NewRecorder()
	HandleGroupsList(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/groups", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: %d", recorder.Code)
	}
	var resp struct {
		Groups []models.ColorGroup `json:"groups"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Groups) != 2 || resp.Groups[0].Name != "Brand" || resp.Groups[1].Name != "Neutrals" {
		t.Fatalf("unexpected groups: %+v", resp.Groups)
	}
}

func TestGroupDetail_NotFound(t *testing.T) {
	setupColorGroupHandlers(t)

	req := withGroupID(httptest.NewRequest(http.MethodGet, "/api/v1/groups/x", nil), uuid.New())
	recorder := httptest.NewRecorder()

	HandleGroupDetail(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", recorder.Code)
	}
}

func TestGroupDetail_InvalidID(t *testing.T) {
	setupColorGroupHandlers(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/groups/nope", nil)
	req.SetPathValue("id", "nope")
	recorder := httptest.NewRecorder()

	HandleGroupDetail(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", recorder.Code)
	}
}

func TestColorCreate(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	group := createGroup(t, svc, "Brand")

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "valid", body: `{"name":"Primary","hex":"#1F2937"}`, status: http.StatusCreated},
		{name: "with_alpha", body: `{"name":"Overlay","hex":"00000080"}`, status: http.StatusCreated},
		{name: "five_digits", body: `{"name":"Bad","hex":"12345"}`, status: http.StatusUnprocessableEntity},
		{name: "non_hex", body: `{"name":"Bad","hex":"12345G"}`, status: http.StatusUnprocessableEntity},
		{name: "unknown_field", body: `{"name":"Bad","hex":"123456","extra":1}`, status: http.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := withGroupID(jsonRequest(http.MethodPost, "/api/v1/groups/x/colors", test.body), group.ID)
			recorder := httptest.NewRecorder()

			HandleColorCreate(recorder, req)

			if recorder.Code != test.status {
				t.Fatalf("status: got %d, want %d body: %s", recorder.Code, test.status, recorder.Body.String())
			}
		})
	}

	entries, err := svc.ListColors(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("list colors: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("rejected colors were stored: %+v", entries)
	}
}

func TestColorCreate_UnknownGroup(t *testing.T) {
	setupColorGroupHandlers(t)

	req := withGroupID(jsonRequest(http.MethodPost, "/api/v1/groups/x/colors", `{"name":"Primary","hex":"#1F2937"}`), uuid.New())
	recorder := httptest.NewRecorder()

	HandleColorCreate(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", recorder.Code)
	}
}

func TestColorsImport(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	group := createGroup(t, svc, "Brand")

	payload := `[{"value":"#FF0000","name":"red"},{"value":"00FF00","name":"green"},{"value":"#"}]`
	req := withGroupID(jsonRequest(http.MethodPost, "/api/v1/groups/x/colors/import", payload), group.ID)
	recorder := httptest.NewRecorder()

	HandleColorsImport(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: %d body: %s", recorder.Code, recorder.Body.String())
	}
	colors := decodeColors(t, recorder)
	if got := swatchNames(colors); got != "red,green," {
		t.Fatalf("names = %q", got)
	}
	if colors[2].Hex != "#ffffff" {
		t.Fatalf("empty value should render white, got %q", colors[2].Hex)
	}
}

func TestColorsImport_Malformed(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	group := createGroup(t, svc, "Brand")

	form := url.Values{"payload": {"not json"}}
	req := withGroupID(httptest.NewRequest(http.MethodPost, "/api/v1/groups/x/colors/import", strings.NewReader(form.Encode())), group.ID)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	recorder := httptest.NewRecorder()

	HandleColorsImport(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "feedback-error") {
		t.Fatalf("expected inline error feedback: %s", recorder.Body.String())
	}

	entries, err := svc.ListColors(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("list colors: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("malformed import stored colors: %+v", entries)
	}
}

func TestColorsRemoveAndMove(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	group := createGroup(t, svc, "Brand")
	if _, err := svc.ImportColors(context.Background(), group.ID, `[{"name":"a","value":"111111"},{"name":"b","value":"222222"},{"name":"c","value":"333333"},{"name":"d","value":"444444"}]`); err != nil {
		t.Fatalf("import: %v", err)
	}

	req := withGroupID(jsonRequest(http.MethodPost, "/api/v1/groups/x/colors/move", `{"from":[0],"to":3}`), group.ID)
	recorder := httptest.NewRecorder()
	HandleColorsMove(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("move status: %d body: %s", recorder.Code, recorder.Body.String())
	}
	if got := swatchNames(decodeColors(t, recorder)); got != "b,c,a,d" {
		t.Fatalf("after move = %q, want b,c,a,d", got)
	}

	form := url.Values{"positions": {"1", "3"}}
	req = withGroupID(httptest.NewRequest(http.MethodPost, "/api/v1/groups/x/colors/remove", strings.NewReader(form.Encode())), group.ID)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder = httptest.NewRecorder()
	HandleColorsRemove(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("remove status: %d body: %s", recorder.Code, recorder.Body.String())
	}
	colors := decodeColors(t, recorder)
	if got := swatchNames(colors); got != "b,a" {
		t.Fatalf("after remove = %q, want b,a", got)
	}
	if colors[1].Entry.Position != 1 {
		t.Fatalf("positions not renumbered: %+v", colors)
	}
}

func TestColorsRemove_OutOfRange(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	group := createGroup(t, svc, "Brand")

	req := withGroupID(jsonRequest(http.MethodPost, "/api/v1/groups/x/colors/remove", `{"positions":[0]}`), group.ID)
	recorder := httptest.NewRecorder()
	HandleColorsRemove(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", recorder.Code)
	}
}

func TestColorsMove_MissingDestination(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	group := createGroup(t, svc, "Brand")

	req := withGroupID(jsonRequest(http.MethodPost, "/api/v1/groups/x/colors/move", `{"from":[0]}`), group.ID)
	recorder := httptest.NewRecorder()
	HandleColorsMove(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", recorder.Code)
	}
}

func TestDeleteGroup_RemovesColors(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	group := createGroup(t, svc, "Brand")
	if _, err := svc.AddColor(context.Background(), group.ID, "Primary", "#1F2937"); err != nil {
		t.Fatalf("add color: %v", err)
	}

	req := withGroupID(httptest.NewRequest(http.MethodDelete, "/api/v1/groups/x", nil), group.ID)
	recorder := httptest.NewRecorder()
	HandleGroupDelete(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", recorder.Code)
	}

	if _, err := svc.ListColors(context.Background(), group.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("list colors after delete: got %v, want ErrNotFound", err)
	}

	recorder = httptest.NewRecorder()
	HandleGroupDelete(recorder, withGroupID(httptest.NewRequest(http.MethodDelete, "/api/v1/groups/x", nil), group.ID))
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("second delete status: got %d, want 404", recorder.Code)
	}
}

func TestDeleteGroups_Bulk(t *testing.T) {
	svc := setupColorGroupHandlers(t)
	brand := createGroup(t, svc, "Brand")
	createGroup(t, svc, "Neutrals")

	body := `{"ids":["` + brand.ID.String() + `","` + uuid.NewString() + `"]}`
	recorder := httptest.NewRecorder()
	HandleGroupsDelete(recorder, jsonRequest(http.MethodDelete, "/api/v1/groups", body))

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", recorder.Code)
	}

	groups, err := svc.ListGroups(context.Background())
	if err != nil {
		t.Fatalf("list groups: %v", err)
	}
	if len(groups) != 1 || groups[0].Name != "Neutrals" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
}

func TestColorDecode(t *testing.T) {
	tests := []struct {
		hex   string
		want  string
		valid bool
	}{
		{hex: "#FF0000", want: "#ff0000", valid: true},
		{hex: "ABC", want: "#abababcc", valid: false},
		{hex: "", want: "#ffffff", valid: false},
	}

	for _, test := range tests {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/colors/decode?hex="+url.QueryEscape(test.hex), nil)
		recorder := httptest.NewRecorder()

		HandleColorDecode(recorder, req)

		if recorder.Code != http.StatusOK {
			t.Fatalf("status: %d", recorder.Code)
		}
		var resp decodeResponse
		if err := json.NewDecoder(recorder.Body).Decode(&resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Hex != test.want || resp.Valid != test.valid {
			t.Fatalf("decode(%q) = %+v, want hex %q valid %v", test.hex, resp, test.want, test.valid)
		}
	}
}

type failingService struct {
	paletteService
}

func (failingService) ListGroups(ctx context.Context) ([]models.ColorGroup, error) {
	return nil, store.Wrap("list groups", errors.New("connection refused"))
}

func TestGroupsList_StorageError(t *testing.T) {
	setService(t, failingService{})

	recorder := httptest.NewRecorder()
	HandleGroupsList(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/groups", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", recorder.Code)
	}
	if strings.Contains(recorder.Body.String(), "connection refused") {
		t.Fatalf("storage cause leaked: %s", recorder.Body.String())
	}
}

func TestHandlers_ServiceNotInitialized(t *testing.T) {
	service = nil

	recorder := httptest.NewRecorder()
	HandleGroupsList(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/groups", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", recorder.Code)
	}
}
