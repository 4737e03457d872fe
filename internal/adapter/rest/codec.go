package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/segmentio/encoding/json"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"erro"`
}

// decodeJSON reads a JSON body into out. An empty body leaves out untouched
// so that field validation decides what is missing.
func decodeJSON(w http.ResponseWriter, r *http.Request, out any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	err := json.NewDecoder(body).Decode(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	payload, err := json.Marshal(data)
	if err != nil {
		http.Error(w, `{"erro":"erro interno"}`, http.StatusInternalServerError)
		return
	}
	writeRawJSON(w, status, payload)
}

func writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
