package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Kind    string      `json:"kind,omitempty"`
}

// EncodeRequest is the JSON body for POST /api/v1/encode
type EncodeRequest struct {
	Hex string `json:"hex"`
}

// EncodeResponse is the payload returned by POST /api/v1/encode
type EncodeResponse struct {
	Text  string `json:"text"`
	Words int    `json:"words"`
}

// DecodeResponse is the payload returned by POST /api/v1/decode
type DecodeResponse struct {
	Hex   string `json:"hex"`
	Bytes int    `json:"bytes"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string // empty disables authentication
}
