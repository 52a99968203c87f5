package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"dogs-registry/internal/errs"
)

const maxBody = 1 << 20

// Write serializa v como JSON con el status dado.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode lee el body en dst. Campos desconocidos se ignoran.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.NewBadRequest("request body is empty")
		}
		return errs.NewBadRequest("invalid json")
	}
	return nil
}

// DecodeRaw lee el body como mapa de campos crudos (para PATCH).
func DecodeRaw(r *http.Request) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := Decode(r, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errs.NewBadRequest("invalid json")
	}
	return raw, nil
}
