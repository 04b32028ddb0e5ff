package utils

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/MKhiriev/go-intern-verify/models"
)

// RenderError writes a JSON [models.ErrorResponse] with the given status
// code.
//
// Example usage:
//
//	utils.RenderError(w, r, http.StatusNotFound, "route not found")
func RenderError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, models.ErrorResponse{Error: message})
}
