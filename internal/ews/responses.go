// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ews

import (
	"github.com/MKhiriev/go-ews-sync/internal/logger"
	"github.com/MKhiriev/go-ews-sync/internal/soap"
)

// unitResult is the outcome of one response unit, kept with its position so
// failures can be attributed to the id that was submitted at that index.
// Err is nil for Success and Warning units.
type unitResult struct {
	Index   int
	Message soap.ResponseMessage
	Err     error
}

func (r unitResult) ok() bool {
	return r.Err == nil
}

// processUnit maps a response unit to nil or a *ResponseError. Warning units
// count as success and are logged.
func processUnit(log *logger.Logger, operation string, index int, msg soap.ResponseMessage) error {
	switch msg.ResponseClass {
	case soap.ResponseClassSuccess:
		return nil
	case soap.ResponseClassWarning:
		log.Warn().
			Int("index", index).
			Str("code", msg.ResponseCode).
			Str("message", msg.MessageText).
			Msg("server returned a warning")
		return nil
	case soap.ResponseClassError:
		return &ResponseError{
			Operation: operation,
			Code:      msg.ResponseCode,
			Message:   msg.MessageText,
			Index:     index,
		}
	default:
		return processingError("%s: response %d: unknown response class %q", operation, index, msg.ResponseClass)
	}
}

func validateCount(operation string, resp *soap.Response, expected int) error {
	if len(resp.Messages) != expected {
		return &ResponseCountError{Operation: operation, Expected: expected, Actual: len(resp.Messages)}
	}
	return nil
}

// singleResponse returns the only unit of resp, failing on any other count
// or on an error unit.
func singleResponse(log *logger.Logger, operation string, resp *soap.Response) (soap.ResponseMessage, error) {
	if err := validateCount(operation, resp, 1); err != nil {
		return soap.ResponseMessage{}, err
	}

	msg := resp.Messages[0]
	if err := processUnit(log, operation, 0, msg); err != nil {
		return soap.ResponseMessage{}, err
	}
	return msg, nil
}

// unitResults checks that resp has one unit per submitted target and maps
// every unit to a unitResult.
func unitResults(log *logger.Logger, operation string, resp *soap.Response, expected int) ([]unitResult, error) {
	if err := validateCount(operation, resp, expected); err != nil {
		return nil, err
	}

	results := make([]unitResult, len(resp.Messages))
	for i, msg := range resp.Messages {
		results[i] = unitResult{Index: i, Message: msg, Err: processUnit(log, operation, i, msg)}
	}
	return results, nil
}

// logPartialFailure logs how many units failed together with the first
// failure. It logs nothing when every unit succeeded.
func logPartialFailure(log *logger.Logger, results []unitResult) {
	failed := 0
	var first *unitResult
	for i := range results {
		if results[i].ok() {
			continue
		}
		failed++
		if first == nil {
			first = &results[i]
		}
	}
	if failed == 0 {
		return
	}

	log.Warn().
		Err(first.Err).
		Int("failed", failed).
		Int("total", len(results)).
		Int("first_index", first.Index).
		Msgf("%d of %d operations failed; first error (at index %d)", failed, len(results), first.Index)
}
