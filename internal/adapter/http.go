package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/utils"
	"github.com/MKhiriev/go-intern-verify/models"
)

const (
	traceIDHeader    = "X-Trace-ID"
	hashSHA256Header = "HashSHA256"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. When appCfg.HashKey is set every response must carry a matching
// HashSHA256 header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.signer = utils.NewSigner(appCfg.HashKey)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Verify implements [ServerAdapter]. It sends GET /api/verify/{identifier}
// with the identifier path-escaped and decodes the JSON outcome. Non-2xx
// responses are mapped to the sentinels of this package.
func (h *httpServerAdapter) Verify(ctx context.Context, identifier string) (models.Outcome, error) {
	resp, err := h.request(ctx).
		SetPathParam("identifier", identifier).
		Get("/api/verify/{identifier}")
	if err != nil {
		return models.Outcome{}, fmt.Errorf("verify request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Outcome{}, err
	}
	if err = h.checkIntegrity(resp); err != nil {
		return models.Outcome{}, err
	}

	var outcome models.Outcome
	if err = json.Unmarshal(resp.Body(), &outcome); err != nil {
		return models.Outcome{}, fmt.Errorf("%w: decode verify response: %v", ErrMalformedResponse, err)
	}

	h.logger.Debug().
		Str("identifier", identifier).
		Str("status", string(outcome.Status)).
		Msg("verify response received")

	return outcome, nil
}

// Version implements [ServerAdapter]. It sends GET /api/version/ and returns
// the plain-text body.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req
}

func (h *httpServerAdapter) checkIntegrity(resp *resty.Response) error {
	if h.signer == nil {
		return nil
	}

	signature := resp.Header().Get(hashSHA256Header)
	if signature == "" || !h.signer.Verify(resp.Body(), signature) {
		h.logger.Error().
			Str("hash from response", signature).
			Msg("response hash mismatch")
		return ErrIntegrityCheckFailed
	}

	return nil
}
