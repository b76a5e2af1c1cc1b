package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// maxBodySize caps request bodies decoded by ReadJSON.
const maxBodySize = 1 << 20

// ErrTrailingJSONData is returned by ReadJSON when the body holds more than
// one JSON value.
var ErrTrailingJSONData = errors.New("unexpected data after JSON value")

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails the client gets a plain 500 and the marshal error is
// returned wrapped.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the {"error": message} body used by every failed API
// response.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// ReadJSON decodes exactly one JSON value from r into dst. Trailing data
// after the value and bodies larger than 1 MiB are rejected.
func ReadJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("error decoding JSON body: %w", ErrTrailingJSONData)
	}
	return nil
}
