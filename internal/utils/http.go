package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// marshalFailureBody is sent when a response value cannot be encoded.
const marshalFailureBody = `{"error":"internal server error"}`

// WriteJSON encodes data and writes it as the response body with statusCode.
// The body is fully encoded before any header goes out, so an encoding
// failure still produces a clean 500 with a JSON error body.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		writeJSONBody(w, []byte(marshalFailureBody), http.StatusInternalServerError)
		return 0, fmt.Errorf("encoding %T response: %w", data, err)
	}

	return writeJSONBody(w, body, statusCode)
}

func writeJSONBody(w http.ResponseWriter, body []byte, statusCode int) (int, error) {
	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("Content-Length", strconv.Itoa(len(body)))
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
