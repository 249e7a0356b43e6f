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
	"maps"

	"dirpx.dev/errticket/apis"
)

// Builder assembles a Ticket. The zero value is ready to use; New is the
// conventional entry point.
//
// Builder methods mutate and return the receiver so calls can be chained.
// A Builder is not safe for concurrent use.
type Builder struct {
	t Ticket
}

// New returns an empty Builder.
func New() *Builder { return &Builder{} }

// BuilderFrom returns a Builder pre-filled with a copy of t.
func BuilderFrom(t *Ticket) *Builder {
	b := &Builder{}
	if t == nil {
		return b
	}
	b.t = *t
	b.t.ext = maps.Clone(t.ext)
	return b
}

// WithID sets the correlation identifier. An empty id means "generate".
func (b *Builder) WithID(id string) *Builder { b.t.id = id; return b }

// WithDetails sets the human detail text.
func (b *Builder) WithDetails(details string) *Builder { b.t.details = details; return b }

// WithDetailsf sets the detail text using fmt.Sprintf.
func (b *Builder) WithDetailsf(format string, args ...any) *Builder {
	b.t.details = fmt.Sprintf(format, args...)
	return b
}

// WithCode sets the code.
func (b *Builder) WithCode(c apis.ErrorCode) *Builder { b.t.code = c; return b }

// WithGroup sets the provider group.
func (b *Builder) WithGroup(group string) *Builder { b.t.group = group; return b }

// WithStatus sets the HTTP status. Zero means "inherit from the code".
func (b *Builder) WithStatus(status int) *Builder { b.t.status = status; return b }

// WithType sets the RFC 7807 problem type URI.
func (b *Builder) WithType(uri string) *Builder { b.t.typ = uri; return b }

// WithTitle sets the RFC 7807 title.
func (b *Builder) WithTitle(title string) *Builder { b.t.title = title; return b }

// WithInstance sets the RFC 7807 instance URI.
func (b *Builder) WithInstance(uri string) *Builder { b.t.instance = uri; return b }

// WithExtension adds one extension member.
func (b *Builder) WithExtension(key string, value any) *Builder {
	if b.t.ext == nil {
		b.t.ext = make(map[string]any, 1)
	}
	b.t.ext[key] = value
	return b
}

// WithExtensions merges kv into the extension members; kv wins on conflicts.
func (b *Builder) WithExtensions(kv map[string]any) *Builder {
	if len(kv) == 0 {
		return b
	}
	if b.t.ext == nil {
		b.t.ext = make(map[string]any, len(kv))
	}
	maps.Copy(b.t.ext, kv)
	return b
}

// WithCause attaches the underlying failure for errors.Is / errors.As.
func (b *Builder) WithCause(err error) *Builder { b.t.cause = err; return b }

// Build freezes the builder into a Ticket.
//
// It generates an id when none was given, takes the group from the code
// when no group was given and, when no status was given, inherits a nonzero
// StatusCode from the code. The Builder may be reused
// afterwards; later calls do not affect returned tickets.
func (b *Builder) Build() *Ticket {
	t := b.build()
	if t.status == 0 && t.code != nil {
		t.status = t.code.StatusCode()
	}
	return t
}

// build freezes without status inheritance (FromMap path).
func (b *Builder) build() *Ticket {
	t := b.t
	if t.id == "" {
		t.id = NewID()
	}
	if t.group == "" && t.code != nil {
		t.group = t.code.Group()
	}
	t.ext = maps.Clone(b.t.ext)
	return &t
}
