package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-intern-verify/internal/app"
	"github.com/MKhiriev/go-intern-verify/internal/service"
	"github.com/MKhiriev/go-intern-verify/internal/store"
)

var errorStatusMap = map[error]int{
	ErrMalformedIdentifier:         http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	context.DeadlineExceeded: http.StatusServiceUnavailable,
	context.Canceled:         http.StatusServiceUnavailable,

	store.ErrInvalidInternshipStatus: http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:        http.StatusInternalServerError,
	store.ErrExecutingQuery:          http.StatusInternalServerError,
	store.ErrScanningRow:             http.StatusInternalServerError,
}

var statusMessageMap = map[int]string{
	http.StatusBadRequest:         app.MsgInvalidDataProvided,
	http.StatusServiceUnavailable: app.MsgServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromStatus(status int) string {
	if msg, ok := statusMessageMap[status]; ok {
		return msg
	}
	return app.MsgInternalServerError
}
