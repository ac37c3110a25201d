// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-ews-sync/internal/adapter"
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/soap"
	"github.com/MKhiriev/go-ews-sync/internal/utils"
)

// begin makes sure ctx carries a correlation id and returns a logger
// scoped to the operation. Every request issued with the returned context
// shares the id.
func (c *Client) begin(ctx context.Context, operation string) (context.Context, *logger.Logger) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = c.requestIDs.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}

	return ctx, &logger.Logger{Logger: c.logger.With().
		Str("operation", operation).
		Str("request_id", requestID).
		Logger()}
}

// dispatch sends op and returns its decoded response.
//
// Server throttling never surfaces as an error: whenever a fault or the first
// response unit carries a back-off hint the call sleeps for that long and
// starts over. The loop ends on any other outcome, on ctx cancellation, or
// after maxThrottleRetries back-offs when a cap was configured.
func (c *Client) dispatch(ctx context.Context, op soap.Operation, opts requestOptions) (*soap.Response, error) {
	name := op.OperationName()
	ctx, log := c.begin(ctx, name)
	requestID, _ := utils.GetRequestIDFromContext(ctx)

	throttled := 0
	refreshed := false
	for {
		version := c.versions.Read(c.endpoint)
		body, err := soap.EncodeRequest(version.String(), op)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrProcessing, err)
		}

		creds := c.credentials()
		if token, ok := creds.(OAuth2Credentials); ok && token.Expired(time.Now()) {
			log.Warn().Str("func", "Client.dispatch").Msg("access token has expired, request will most likely be rejected")
		}

		resp, err := c.transport.Post(ctx, adapter.Request{
			URL:           c.endpoint,
			Authorization: creds.AuthorizationHeader(),
			ContentType:   soap.ContentType,
			RequestID:     requestID,
			Body:          body,
		})
		if err != nil {
			c.logTransportFailure(log, opts, err)
			return nil, &TransportError{Operation: name, Err: err}
		}

		if resp.StatusCode == http.StatusUnauthorized {
			if opts.auth == AuthSilent {
				log.Debug().Str("func", "Client.dispatch").Msg("authentication rejected")
				return nil, fmt.Errorf("%s: %w", name, ErrAuthentication)
			}

			log.Error().Str("func", "Client.dispatch").Msg("authentication rejected by server")
			if c.refresh != nil && !refreshed {
				refreshed = true
				fresh, refreshErr := c.refresh(ctx)
				if refreshErr == nil && fresh != nil {
					c.SetCredentials(fresh)
					log.Info().Str("func", "Client.dispatch").Msg("credentials refreshed, retrying")
					continue
				}
				log.Error().Err(refreshErr).Str("func", "Client.dispatch").Msg("credential refresh failed")
			}
			return nil, fmt.Errorf("%s: %w", name, ErrAuthentication)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			if delay, ok := c.busyStatusDelay(resp); ok {
				if err = c.backOff(ctx, log, name, &throttled, delay); err != nil {
					return nil, err
				}
				continue
			}
			log.Error().Int("status", resp.StatusCode).Str("func", "Client.dispatch").Msg("unexpected http status")
			return nil, &StatusError{Operation: name, Status: resp.StatusCode}
		}

		decoded, err := soap.DecodeResponse(resp.Body)
		if err != nil {
			if delay, ok := soap.ThrottleDelay(err); ok {
				if err = c.backOff(ctx, log, name, &throttled, delay); err != nil {
					return nil, err
				}
				continue
			}
			log.Error().Err(err).Str("func", "Client.dispatch").Msg("error decoding response")
			return nil, &ProtocolError{Operation: name, Err: err}
		}

		c.recordVersion(log, decoded)

		if delay, ok := decoded.FirstMessageThrottle(); ok {
			if err = c.backOff(ctx, log, name, &throttled, delay); err != nil {
				return nil, err
			}
			continue
		}

		return decoded, nil
	}
}

// busyStatusDelay returns the back-off hint of a server-busy fault sent
// with an error status, when WithBusyStatusRetry is set.
func (c *Client) busyStatusDelay(resp *adapter.Response) (time.Duration, bool) {
	if !c.busyStatusRetry {
		return 0, false
	}
	_, err := soap.DecodeResponse(resp.Body)
	if err == nil {
		return 0, false
	}
	return soap.ThrottleDelay(err)
}

func (c *Client) backOff(ctx context.Context, log *logger.Logger, name string, throttled *int, delay time.Duration) error {
	*throttled++
	if c.maxThrottleRetries > 0 && *throttled > c.maxThrottleRetries {
		log.Error().Int("retries", c.maxThrottleRetries).Str("func", "Client.backOff").Msg("server kept throttling, giving up")
		return fmt.Errorf("%s: %w (%d retries)", name, ErrThrottleLimit, c.maxThrottleRetries)
	}

	log.Debug().
		Dur("delay", delay).
		Int("attempt", *throttled).
		Str("func", "Client.backOff").
		Msg("server busy, backing off")

	if err := c.sleep(ctx, delay); err != nil {
		return fmt.Errorf("%s: throttle back-off interrupted: %w", name, err)
	}
	return nil
}

func (c *Client) recordVersion(log *logger.Logger, resp *soap.Response) {
	if resp.ServerVersion == nil {
		return
	}

	v, known, ok := versionFromHeader(resp.ServerVersion.Version)
	if !ok {
		return
	}
	if !known {
		log.Warn().
			Str("reported", resp.ServerVersion.Version).
			Stringer("assumed", v).
			Str("func", "Client.recordVersion").
			Msg("unknown server version")
	}

	c.versions.Record(c.endpoint, v)
}

func (c *Client) logTransportFailure(log *logger.Logger, opts requestOptions, err error) {
	if errors.Is(err, adapter.ErrTransportSecurity) {
		if opts.transportSec == TransportSecSilent {
			log.Debug().Err(err).Str("func", "Client.dispatch").Msg("transport security failure")
			return
		}
		log.Error().Err(err).Str("func", "Client.dispatch").Msg("transport security failure, check the server certificate")
		return
	}

	if errors.Is(err, context.Canceled) {
		log.Debug().Err(err).Str("func", "Client.dispatch").Msg("request canceled")
		return
	}

	log.Error().Err(err).Str("func", "Client.dispatch").Msg("request failed")
}
