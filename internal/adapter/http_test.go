// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/utils"
	"github.com/MKhiriev/go-intern-verify/models"
)

const testHashKey = "testhashkey"

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}
	appCfg := config.ClientApp{HashKey: hashKey}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeOutcome(t *testing.T, w http.ResponseWriter, outcome models.Outcome, hashKey string) {
	t.Helper()
	body, err := json.Marshal(outcome)
	require.NoError(t, err)

	w.Header().Set("Content-Type", "application/json")
	if hashKey != "" {
		w.Header().Set("HashSHA256", utils.NewSigner(hashKey).Sign(body))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestVerify_Success(t *testing.T) {
	tests := []struct {
		name    string
		outcome models.Outcome
	}{
		{"verified", models.VerifiedOutcome("VOC-123")},
		{"pending", models.PendingOutcome("VOC-456")},
		{"not found", models.NotFoundOutcome("XYZ-999")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/verify/VOC-123", r.URL.Path)
				writeOutcome(t, w, tt.outcome, "")
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			got, err := a.Verify(context.Background(), "VOC-123")

			require.NoError(t, err)
			assert.Equal(t, tt.outcome, got)
		})
	}
}

func TestVerify_PathEscapesIdentifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/verify/VOC%201%2F2", r.URL.EscapedPath())
		writeOutcome(t, w, models.NotFoundOutcome("VOC 1/2"), "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Verify(context.Background(), "VOC 1/2")

	require.NoError(t, err)
}

func TestVerify_PropagatesTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace-ID"))
		writeOutcome(t, w, models.VerifiedOutcome("VOC-123"), "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	ctx := utils.WithTraceID(context.Background(), "trace-1")
	_, err := a.Verify(ctx, "VOC-123")

	require.NoError(t, err)
}

func TestVerify_HTTPErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"not found route", http.StatusNotFound, ErrNotFound},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"bad gateway", http.StatusBadGateway, ErrBadGateway},
		{"unavailable", http.StatusServiceUnavailable, ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"error":"boom"}`))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			_, err := a.Verify(context.Background(), "VOC-123")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerify_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Verify(context.Background(), "VOC-123")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestVerify_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Verify(context.Background(), "VOC-123")

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestVerify_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, "")
	_, err := a.Verify(context.Background(), "VOC-123")

	assert.Error(t, err)
}

func TestVerify_ContextCancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Verify(ctx, "VOC-123")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// ── integrity ────────────────────────────────────────────────────────────────

func TestVerify_IntegrityHeaderAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeOutcome(t, w, models.VerifiedOutcome("VOC-123"), testHashKey)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	got, err := a.Verify(context.Background(), "VOC-123")

	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, got.Status)
}

func TestVerify_IntegrityHeaderMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeOutcome(t, w, models.VerifiedOutcome("VOC-123"), "another-key")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	_, err := a.Verify(context.Background(), "VOC-123")

	assert.ErrorIs(t, err, ErrIntegrityCheckFailed)
}

func TestVerify_IntegrityHeaderMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeOutcome(t, w, models.VerifiedOutcome("VOC-123"), "")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, testHashKey)
	_, err := a.Verify(context.Background(), "VOC-123")

	assert.ErrorIs(t, err, ErrIntegrityCheckFailed)
}

// ── Version ──────────────────────────────────────────────────────────────────

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version/", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.2.3\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

func TestVersion_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Version(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	assert.Error(t, err)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"surrounding spaces", "  https://verify.example.com ", "https://verify.example.com", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
