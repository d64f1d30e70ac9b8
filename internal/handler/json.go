package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/DukeRupert/jobboard/internal/domain"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON reads a single JSON object into dst, rejecting unknown fields
// and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	const op = "handler.decode"

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.Invalid(op, "Request body is empty")
		case errors.As(err, &syntaxErr):
			return domain.Invalid(op, fmt.Sprintf("Malformed JSON at position %d", syntaxErr.Offset))
		case errors.As(err, &typeErr):
			return domain.NewValidationError(op, typeErr.Field, "Wrong type")
		case errors.As(err, &maxErr):
			return domain.Invalid(op, "Request body is too large")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return domain.NewValidationError(op, field, "Unknown field")
		default:
			return domain.Invalid(op, "Malformed JSON")
		}
	}
	if dec.More() {
		return domain.Invalid(op, "Request body must contain a single JSON object")
	}
	return nil
}

// pathUUID parses a UUID path value. A malformed id reads as not found.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NotFound("handler.path", "resource", raw)
	}
	return id, nil
}

// pageFromQuery reads limit/offset query parameters.
func pageFromQuery(r *http.Request) (domain.Page, error) {
	limit, err := queryInt32(r, "limit")
	if err != nil {
		return domain.Page{}, err
	}
	offset, err := queryInt32(r, "offset")
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{Limit: limit, Offset: offset}, nil
}

func queryInt32(r *http.Request, name string) (int32, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, domain.NewValidationError("handler.query", name, "Must be a whole number")
	}
	return int32(n), nil
}

// listResponse wraps collection payloads.
type listResponse[T any] struct {
	Data   []T   `json:"data"`
	Limit  int32 `json:"limit,omitempty"`
	Offset int32 `json:"offset,omitempty"`
}
