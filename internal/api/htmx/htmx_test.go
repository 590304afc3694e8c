package htmx

import (
	"net/http/httptest"
	"testing"
)

func TestIsRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if IsRequest(req) {
		t.Fatal("expected plain request")
	}
	req.Header.Set("HX-Request", "TRUE")
	if !IsRequest(req) {
		t.Fatal("expected htmx request")
	}
}

func TestTrigger(t *testing.T) {
	rec := httptest.NewRecorder()
	Trigger(rec)
	if got := rec.Header().Get(TriggerHeader); got != "" {
		t.Fatalf("expected no trigger header, got %q", got)
	}

	Trigger(rec, "refreshGroupsList", "refreshColorsList")
	if got := rec.Header().Get(TriggerHeader); got != "refreshGroupsList, refreshColorsList" {
		t.Fatalf("unexpected trigger header %q", got)
	}
}
