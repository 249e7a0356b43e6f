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

import "dirpx.dev/errticket/apis"

// Option customizes a Builder. Options are applied by E and Propagate
// after the builder has been seeded, so they override any field.
type Option func(*Builder)

// E is a convenience constructor for a ticket.
//
// Usage:
//
//	return errticket.E(code.NotFound, "user not found",
//	    errticket.WithExtensionOption("user_id", id),
//	)
func E(c apis.ErrorCode, details string, opts ...Option) *Ticket {
	b := New().WithCode(c).WithDetails(details)
	apply(b, opts)
	return b.Build()
}

func apply(b *Builder, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
}

// WithCodeOption overrides the code.
func WithCodeOption(c apis.ErrorCode) Option {
	return func(b *Builder) { b.WithCode(c) }
}

// WithGroupOption overrides the group.
func WithGroupOption(group string) Option {
	return func(b *Builder) { b.WithGroup(group) }
}

// WithStatusOption overrides the HTTP status.
func WithStatusOption(status int) Option {
	return func(b *Builder) { b.WithStatus(status) }
}

// WithDetailsOption overrides the detail text.
func WithDetailsOption(details string) Option {
	return func(b *Builder) { b.WithDetails(details) }
}

// WithTypeOption sets the RFC 7807 problem type.
func WithTypeOption(uri string) Option {
	return func(b *Builder) { b.WithType(uri) }
}

// WithInstanceOption sets the RFC 7807 instance.
func WithInstanceOption(uri string) Option {
	return func(b *Builder) { b.WithInstance(uri) }
}

// WithExtensionOption adds one extension member.
func WithExtensionOption(k string, v any) Option {
	return func(b *Builder) { b.WithExtension(k, v) }
}

// WithExtensionsOption merges extension members.
func WithExtensionsOption(kv map[string]any) Option {
	return func(b *Builder) { b.WithExtensions(kv) }
}

// WithCauseOption attaches an underlying failure.
func WithCauseOption(err error) Option {
	return func(b *Builder) { b.WithCause(err) }
}
