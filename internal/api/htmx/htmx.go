package htmx

import (
	"net/http"
	"strings"
)

// TriggerHeader names client-side events htmx fires after swapping a response.
const TriggerHeader = "HX-Trigger"

func IsRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("HX-Request"), "true")
}

// Trigger asks the client to fire the given events once the response lands.
func Trigger(w http.ResponseWriter, events ...string) {
	if len(events) == 0 {
		return
	}
	w.Header().Set(TriggerHeader, strings.Join(events, ", "))
}
