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

package errticket

import (
	"fmt"
	"log/slog"
	"maps"

	"dirpx.dev/errticket/apis"
)

// Ticket is the canonical error ticket.
//
// A Ticket is immutable once built. Accessors that return maps return
// copies, and BuilderFrom starts a new builder from a copy, so a Ticket can
// be shared between goroutines and returned as an error from anywhere.
type Ticket struct {
	id       string
	details  string
	code     apis.ErrorCode
	group    string
	status   int
	typ      string
	title    string
	instance string
	ext      map[string]any

	// cause is kept for errors.Is / errors.As only; it is never serialized.
	cause error
}

var (
	_ error          = (*Ticket)(nil)
	_ apis.Coded     = (*Ticket)(nil)
	_ slog.LogValuer = (*Ticket)(nil)
)

// ID returns the correlation identifier.
func (t *Ticket) ID() string { return t.id }

// Details returns the human detail text.
func (t *Ticket) Details() string { return t.details }

// Code returns the error code, or nil when the ticket has none.
func (t *Ticket) Code() apis.ErrorCode { return t.code }

// Group returns the provider group, or "" when absent.
func (t *Ticket) Group() string { return t.group }

// Status returns the HTTP status, or 0 when absent.
func (t *Ticket) Status() int { return t.status }

// Type returns the RFC 7807 problem type URI.
func (t *Ticket) Type() string { return t.typ }

// Title returns the RFC 7807 short summary.
func (t *Ticket) Title() string { return t.title }

// Instance returns the RFC 7807 occurrence URI.
func (t *Ticket) Instance() string { return t.instance }

// Extension returns one extension value.
func (t *Ticket) Extension(key string) (any, bool) {
	v, ok := t.ext[key]
	return v, ok
}

// Extensions returns a copy of the extension members.
func (t *Ticket) Extensions() map[string]any {
	if len(t.ext) == 0 {
		return nil
	}
	return maps.Clone(t.ext)
}

// Error implements the built-in error interface.
//
// The format is:
//
//	<code>:<details>
//
// with "<nil>" standing in for a missing code.
func (t *Ticket) Error() string {
	if t == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s:%s", codeName(t.code), t.details)
}

// Unwrap returns the failure the ticket was propagated from, if any.
func (t *Ticket) Unwrap() error { return t.cause }

// LogValue implements slog.LogValuer, so tickets log as a group of their
// non-empty fields.
func (t *Ticket) LogValue() slog.Value {
	if t == nil {
		return slog.StringValue("<nil>")
	}
	attrs := make([]slog.Attr, 0, 6)
	attrs = append(attrs, slog.String("id", t.id))
	if t.code != nil {
		attrs = append(attrs, slog.String("code", t.code.String()))
	}
	if t.group != "" {
		attrs = append(attrs, slog.String("group", t.group))
	}
	if t.status != 0 {
		attrs = append(attrs, slog.Int("status", t.status))
	}
	if t.details != "" {
		attrs = append(attrs, slog.String("detail", t.details))
	}
	if t.typ != "" {
		attrs = append(attrs, slog.String("type", t.typ))
	}
	return slog.GroupValue(attrs...)
}

func codeName(c apis.ErrorCode) string {
	if c == nil {
		return "<nil>"
	}
	return c.String()
}
