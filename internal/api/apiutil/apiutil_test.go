package apiutil

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codr1/designtokens/internal/hexcolor"
	"github.com/codr1/designtokens/internal/palette"
	"github.com/codr1/designtokens/internal/store"
)

func TestClassifyError(t *testing.T) {
	_, invalidHex := hexcolor.DecodeStrict("12345")

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not_found", err: fmt.Errorf("group: %w", store.ErrNotFound), status: http.StatusNotFound},
		{name: "invalid_hex", err: invalidHex, status: http.StatusUnprocessableEntity},
		{name: "parse", err: &palette.ParseError{Err: errors.New("bad")}, status: http.StatusBadRequest},
		{name: "invalid_name", err: fmt.Errorf("%w: name is required", palette.ErrInvalidName), status: http.StatusBadRequest},
		{name: "position", err: palette.ErrPositionOutOfRange, status: http.StatusBadRequest},
		{name: "storage", err: store.Wrap("create group", errors.New("disk full")), status: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := ClassifyError(test.err); got.Status != test.status {
				t.Fatalf("ClassifyError(%v).Status = %d, want %d", test.err, got.Status, test.status)
			}
		})
	}
}

func TestClassifyError_HidesStorageCause(t *testing.T) {
	got := ClassifyError(store.Wrap("create group", errors.New("secret path /var/db")))
	if strings.Contains(got.Message, "secret") {
		t.Fatalf("storage cause leaked to message: %q", got.Message)
	}
}

func TestParseIntListField(t *testing.T) {
	values, err := ParseIntListField([]string{"1,3", "5"}, "positions")
	if err != nil {
		t.Fatalf("ParseIntListField error = %v", err)
	}
	if len(values) != 3 || values[0] != 1 || values[1] != 3 || values[2] != 5 {
		t.Fatalf("ParseIntListField = %v", values)
	}

	if _, err := ParseIntListField([]string{"-1"}, "positions"); err == nil {
		t.Fatalf("expected error for negative position")
	}
	if _, err := ParseIntListField(nil, "positions"); err == nil {
		t.Fatalf("expected error for empty list")
	}
}

func TestWriteHTMLFeedback_Escapes(t *testing.T) {
	recorder := httptest.NewRecorder()
	WriteHTMLFeedback(recorder, http.StatusBadRequest, `<script>alert("x")</script>`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: %d", recorder.Code)
	}
	body := recorder.Body.String()
	if strings.Contains(body, "<script>") {
		t.Fatalf("feedback not escaped: %s", body)
	}
	if !strings.Contains(body, "feedback-error") {
		t.Fatalf("missing error class: %s", body)
	}
}

func TestIsJSONRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	if !IsJSONRequest(req) {
		t.Fatalf("expected JSON request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if IsJSONRequest(req) {
		t.Fatalf("expected form request")
	}
}
