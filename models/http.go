package models

// ErrorResponse is the JSON body returned by the verify API for failed
// requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// VersionResponse is the JSON body of GET /api/version/.
type VersionResponse struct {
	Version string `json:"version"`
}
