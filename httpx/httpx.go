/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package httpx writes error tickets as HTTP responses.
package httpx

import (
	"log/slog"
	"net/http"

	"dirpx.dev/errticket"
	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/mapper"
)

// Writer is a thin adapter that turns any error into a ticket response,
// resolving the HTTP status with Mapper.
type Writer struct {
	// Mapper resolves the response status; nil means mapper.Default.
	Mapper apis.Mapper

	// Logger receives server-side failures (5xx); nil means slog.Default().
	Logger *slog.Logger
}

// Write propagates err to a ticket and writes it: the ticket's headers,
// Content-Type, the mapped status and the JSON body. It returns the written
// status, or 0 when err is nil and nothing was written.
//
// No redaction is performed: whatever the ticket carries is exposed.
func (w Writer) Write(rw http.ResponseWriter, err error) int {
	t := errticket.Propagate(err)
	if t == nil {
		return 0
	}
	return w.WriteTicket(rw, t)
}

// WriteTicket writes an already built ticket.
func (w Writer) WriteTicket(rw http.ResponseWriter, t *errticket.Ticket) int {
	status := w.mapper().HTTPStatus(t)

	h := rw.Header()
	for k, vs := range t.Headers() {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	h.Set("Content-Type", t.ContentType())

	body, err := t.MarshalJSON()
	if err != nil {
		w.logger().Error("cannot encode ticket", slog.String("id", t.ID()), slog.Any("error", err))
		status = http.StatusInternalServerError
		body, _ = errticket.New().
			WithID(t.ID()).
			WithCode(t.Code()).
			WithDetails(t.Details()).
			Build().
			MarshalJSON()
	}

	if status >= http.StatusInternalServerError {
		w.logger().Error("request failed", slog.Int("status", status), slog.Any("ticket", t))
	}

	rw.WriteHeader(status)
	_, _ = rw.Write(body)
	return status
}

// HandlerFunc is an http.HandlerFunc that may fail.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Handler adapts h to http.Handler, writing any returned error with w.
func (w Writer) Handler(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if err := h(rw, r); err != nil {
			w.Write(rw, err)
		}
	})
}

func (w Writer) mapper() apis.Mapper {
	if w.Mapper != nil {
		return w.Mapper
	}
	return mapper.Default
}

func (w Writer) logger() *slog.Logger {
	if w.Logger != nil {
		return w.Logger
	}
	return slog.Default()
}
