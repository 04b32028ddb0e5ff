package http

import (
	"bytes"
	"net/http"
)

const hashSHA256Header = "HashSHA256"

// withResponseHashing buffers the response body and sends it with a
// HashSHA256 header holding its hex HMAC-SHA256. It is a pass-through when
// no hash key is configured.
func (h *Handler) withResponseHashing(next http.Handler) http.Handler {
	if h.signer == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hw := &hashingResponseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(hw, r)

		signature := h.signer.Sign(hw.body.Bytes())
		h.logger.Debug().
			Str("func", "*Handler.withResponseHashing").
			Str("hash", signature).
			Msg("response signed")

		w.Header().Set(hashSHA256Header, signature)
		w.WriteHeader(hw.status)
		if _, err := w.Write(hw.body.Bytes()); err != nil {
			h.logger.Err(err).Str("func", "*Handler.withResponseHashing").Msg("failed to write response body")
		}
	})
}

// hashingResponseWriter holds back status and body until the handler is done.
type hashingResponseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *hashingResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *hashingResponseWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.body.Write(b)
}
