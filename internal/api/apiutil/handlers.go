package apiutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/codr1/designtokens/internal/api/htmx"
	"github.com/codr1/designtokens/internal/hexcolor"
	"github.com/codr1/designtokens/internal/palette"
	"github.com/codr1/designtokens/internal/store"
)

type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type HandlerError struct {
	Status  int
	Message string
	Err     error
}

func (e HandlerError) Error() string {
	return e.Message
}

func (e HandlerError) Unwrap() error {
	return e.Err
}

func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("missing request body")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// ClassifyError maps a palette or store error to the response it deserves.
// Storage failures keep their cause in Err for logging but never leak it to
// the client.
func ClassifyError(err error) HandlerError {
	var parseErr *palette.ParseError
	var storageErr *store.StorageError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return HandlerError{Status: http.StatusNotFound, Message: "Color group not found", Err: err}
	case errors.Is(err, hexcolor.ErrInvalidColorFormat):
		return HandlerError{Status: http.StatusUnprocessableEntity, Message: err.Error(), Err: err}
	case errors.As(err, &parseErr):
		return HandlerError{Status: http.StatusBadRequest, Message: parseErr.Error(), Err: err}
	case errors.Is(err, palette.ErrInvalidName), errors.Is(err, palette.ErrPositionOutOfRange):
		return HandlerError{Status: http.StatusBadRequest, Message: err.Error(), Err: err}
	case errors.As(err, &storageErr):
		return HandlerError{Status: http.StatusInternalServerError, Message: "Storage unavailable", Err: err}
	default:
		return HandlerError{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
	}
}

// WriteServiceError logs err when it is a server fault and writes the
// classified response as plain text, or as inline feedback for htmx.
func WriteServiceError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	handlerErr := ClassifyError(err)
	if handlerErr.Status >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Msg(logMsg)
	}

	if htmx.IsRequest(r) {
		WriteHTMLFeedback(w, handlerErr.Status, handlerErr.Message)
		return
	}
	http.Error(w, handlerErr.Message, handlerErr.Status)
}
