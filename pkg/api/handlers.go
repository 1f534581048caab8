package api

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/pricklybird/pricklybird/pkg/pricklybird"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports service health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleEncode converts bytes to pricklybird text. The payload is either the
// raw request body, or a hex string when the request is application/json.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	data := body
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var req EncodeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
			return
		}
		data, err = hex.DecodeString(req.Hex)
		if err != nil {
			sendError(w, "Invalid hex in request body", http.StatusBadRequest)
			return
		}
	}

	text := pricklybird.Encode(data)
	s.metrics.RecordCodecOperation("encode", true, len(data))

	words := 0
	if text != "" {
		words = strings.Count(text, pricklybird.Delimiter) + 1
	}
	sendSuccess(w, EncodeResponse{Text: text, Words: words})
}

// handleDecode parses pricklybird text from the request body back into
// bytes, returned as hex. Structural failures map to 400, a checksum
// mismatch to 422.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	payload, err := pricklybird.Decode(string(body))
	if err != nil {
		kind := decodeErrorKind(err)
		s.metrics.RecordCodecOperation("decode", false, 0)
		s.metrics.RecordDecodeFailure(kind)
		sendDecodeError(w, err.Error(), kind, decodeErrorStatus(err))
		return
	}

	s.metrics.RecordCodecOperation("decode", true, len(payload))
	sendSuccess(w, DecodeResponse{Hex: hex.EncodeToString(payload), Bytes: len(payload)})
}

// handleWords returns the full 256-word codebook, indexed by byte value.
func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	words := pricklybird.Words()
	sendSuccess(w, words[:])
}

// handleCRC8Table returns the 256-entry checksum lookup table.
func (s *Server) handleCRC8Table(w http.ResponseWriter, r *http.Request) {
	table := pricklybird.CRC8Table()
	out := make([]int, len(table))
	for i, v := range table {
		out[i] = int(v)
	}
	sendSuccess(w, out)
}

// decodeErrorKind names the decode failure kind for responses and metrics.
func decodeErrorKind(err error) string {
	switch {
	case errors.Is(err, pricklybird.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, pricklybird.ErrMalformedInput):
		return "malformed_input"
	case errors.Is(err, pricklybird.ErrInvalidCharacter):
		return "invalid_character"
	case errors.Is(err, pricklybird.ErrUnknownWord):
		return "unknown_word"
	case errors.Is(err, pricklybird.ErrChecksumMismatch):
		return "checksum_mismatch"
	default:
		return "unknown"
	}
}

// decodeErrorStatus maps a decode failure to an HTTP status code. A checksum
// mismatch means well-formed but altered content, so it gets its own code.
func decodeErrorStatus(err error) int {
	if errors.Is(err, pricklybird.ErrChecksumMismatch) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}
