package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/utils"
)

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identifier, err := identifierParam(r)
	if err != nil {
		log.Err(err).Msg("cannot decode identifier")
		utils.RenderError(w, r, http.StatusBadRequest, messageFromStatus(http.StatusBadRequest))
		return
	}

	outcome, err := h.services.RegistryService.Verify(r.Context(), identifier)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).
			Str("identifier", identifier).
			Int("status", status).
			Msg("verification failed")
		utils.RenderError(w, r, status, messageFromStatus(status))
		return
	}

	log.Debug().
		Str("identifier", identifier).
		Str("outcome", string(outcome.Status)).
		Msg("verification answered")

	render.Status(r, http.StatusOK)
	render.JSON(w, r, outcome)
}

// identifierParam returns the decoded {identifier} segment. chi matches on
// the raw path when the request carries escapes the default encoding would
// not produce (e.g. %2F), so the segment has to be unescaped in that case.
func identifierParam(r *http.Request) (string, error) {
	identifier := chi.URLParam(r, "identifier")
	if r.URL.RawPath == "" {
		return identifier, nil
	}

	decoded, err := url.PathUnescape(identifier)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedIdentifier, err)
	}
	return decoded, nil
}
