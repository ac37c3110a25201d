// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ewstest

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id of an exchange.
const RequestIDHeader = "X-Request-Id"

// withRequestID echoes the request's correlation id on the response, or
// assigns one when the client sent none, the way a real front end does.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, requestID)
		next.ServeHTTP(w, r)
	})
}
