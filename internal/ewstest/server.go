// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ewstest provides a fake EWS server and XML fixture builders for
// end-to-end tests of the engine.
//
// Responses are scripted per operation: every request for an operation
// consumes the next queued Responder. The last Responder of a queue is
// reused once the queue is drained, so a single scripted success answers
// any number of requests.
package ewstest

import (
	"bytes"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Path is the route the fake server answers on.
const Path = "/EWS/Exchange.asmx"

// Request is a request received by the fake server.
type Request struct {
	Operation string
	Header    http.Header
	Body      []byte
}

// Responder writes the answer to one request.
type Responder func(w http.ResponseWriter, r Request)

// Server is a fake EWS endpoint.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	queues   map[string][]Responder
	requests []Request
}

// NewServer starts a fake server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{queues: make(map[string][]Responder)}

	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Post(Path, s.handle)

	s.srv = httptest.NewServer(r)
	t.Cleanup(s.srv.Close)

	return s
}

// URL returns the endpoint URL of the fake server.
func (s *Server) URL() string {
	return s.srv.URL + Path
}

// On queues responders for operation, e.g. "GetFolder".
func (s *Server) On(operation string, responders ...Responder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queues[operation] = append(s.queues[operation], responders...)
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many requests for operation were received.
func (s *Server) Count(operation string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.requests {
		if r.Operation == operation {
			n++
		}
	}
	return n
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := Request{Operation: OperationName(body), Header: r.Header.Clone(), Body: body}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	queue := s.queues[req.Operation]
	var next Responder
	switch len(queue) {
	case 0:
	case 1:
		next = queue[0]
	default:
		next = queue[0]
		s.queues[req.Operation] = queue[1:]
	}
	s.mu.Unlock()

	if next == nil {
		http.Error(w, "no response scripted for "+req.Operation, http.StatusNotImplemented)
		return
	}
	next(w, req)
}

// OperationName returns the local name of the first element inside the
// SOAP body of a request, or "" when there is none.
func OperationName(body []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(body))
	inBody := false
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if inBody {
			return start.Name.Local
		}
		if start.Name.Local == "Body" {
			inBody = true
		}
	}
}

// Reply answers with status 200 and the given envelope.
func Reply(envelope string) Responder {
	return func(w http.ResponseWriter, _ Request) {
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, envelope)
	}
}

// Status answers with an empty body and the given status.
func Status(code int) Responder {
	return func(w http.ResponseWriter, _ Request) {
		w.WriteHeader(code)
	}
}
