// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-ews-sync/internal/config"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/utils"
)

const requestIDHeader = "X-Request-Id"

type httpTransport struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPTransport constructs a resty-backed [Transport]. The request timeout
// and TLS verification are taken from cfg; requests are never retried by the
// transport itself.
func NewHTTPTransport(cfg config.ClientEWS, logger *logger.Logger) Transport {
	client := utils.NewHTTPClient()
	client.SetRetryCount(0)

	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}
	if cfg.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec // opt-in for lab servers
	}

	return &httpTransport{client: client, logger: logger}
}

// Post implements [Transport].
func (h *httpTransport) Post(ctx context.Context, req Request) (*Response, error) {
	if _, err := normalizeURL(req.URL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", req.ContentType).
		SetBody(req.Body)
	if req.Authorization != "" {
		r.SetHeader("Authorization", req.Authorization)
	}
	if req.RequestID != "" {
		r.SetHeader(requestIDHeader, req.RequestID)
	}

	resp, err := r.Post(req.URL)
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpTransport.Post").
			Str("request_id", req.RequestID).
			Msg("post request failed")
		return nil, mapTransportError(err)
	}

	h.logger.Debug().
		Str("func", "httpTransport.Post").
		Str("request_id", req.RequestID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("response received")

	return &Response{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}
