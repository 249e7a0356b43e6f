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

package mapper

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// Build process overview:
//
//  1. Seed the builder with the status table and fallbacks.
//  2. Apply user-provided options.
//  3. Normalize and validate all keys and prefixes.
//  4. Build the HTTP and gRPC segment tries.
//  5. Freeze all maps into fresh copies.
//
// Errors describe every invalid override key, or the first invalid prefix.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if len(b.errs) > 0 {
		return nil, errors.Join(b.errs...)
	}

	httpTrie, err := buildTrie(b.httpPrefixes, identityInt, "HTTP")
	if err != nil {
		return nil, err
	}
	grpcTrie, err := buildTrie(b.grpcPrefixes, toCode, "gRPC")
	if err != nil {
		return nil, err
	}

	return &mapper{
		httpOverride: freeze(b.httpOverride, identityInt),
		grpcOverride: freeze(b.grpcOverride, toCode),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		byStatus:     freezeStatus(b.byStatus),
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(opts ...Option) apis.Mapper {
	m, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Default is the mapper with no rules: ticket status, code status, then
// the fallbacks.
var Default = MustNew()

// mapper combines exact overrides, segment-aware prefix tries over ticket
// keys, and the ticket's own statuses. Lookups are O(depth) and safe for
// concurrent use once constructed.
type mapper struct {
	httpOverride map[string]int
	grpcOverride map[string]codes.Code

	// Tries are nil when no prefix rule was configured.
	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	byStatus map[int]codes.Code

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given ticket.
func (m *mapper) HTTPStatus(t apis.Coded) int {
	v, _, _ := m.resolveHTTP(t)
	return v
}

// GRPCStatus resolves a gRPC status for the given ticket.
func (m *mapper) GRPCStatus(t apis.Coded) codes.Code {
	v, _, _ := m.resolveGRPC(t)
	return v
}

// Status resolves both HTTP and gRPC for one ticket.
func (m *mapper) Status(t apis.Coded) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(t),
		GRPC: m.GRPCStatus(t),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a ticket.
//
// Example output:
//
//	key="billing.quota_exceeded" status=0
//	http: source=prefix pattern="billing" -> 402
//	grpc: source=status -> FAILEDPRECONDITION(9)
//
// source is one of override, prefix, ticket, code, status or fallback.
func (m *mapper) Explain(t apis.Coded) string {
	var b strings.Builder
	status := 0
	if t != nil {
		status = t.Status()
	}
	_, _ = fmt.Fprintf(&b, "key=%q status=%d\n", Key(t), status)

	hv, hsrc, hpat := m.resolveHTTP(t)
	if hpat != "" {
		_, _ = fmt.Fprintf(&b, "http: source=%s pattern=%q -> %d\n", hsrc, hpat, hv)
	} else {
		_, _ = fmt.Fprintf(&b, "http: source=%s -> %d\n", hsrc, hv)
	}

	gv, gsrc, gpat := m.resolveGRPC(t)
	if gpat != "" {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s pattern=%q -> %s", gsrc, gpat, grpcName(gv))
	} else {
		_, _ = fmt.Fprintf(&b, "grpc: source=%s -> %s", gsrc, grpcName(gv))
	}
	return b.String()
}

func (m *mapper) resolveHTTP(t apis.Coded) (v int, source, pattern string) {
	if t == nil {
		return m.fallbackHTTP, "fallback", ""
	}
	key := Key(t)
	if v, ok := m.httpOverride[key]; ok {
		return v, "override", ""
	}
	if m.httpTrie != nil && key != "" {
		if v, ok, pat := m.httpTrie.MatchWithPattern(key); ok {
			return v, "prefix", pat
		}
	}
	if s := t.Status(); s > 0 {
		return s, "ticket", ""
	}
	if c := t.Code(); c != nil {
		if s := c.StatusCode(); s > 0 {
			return s, "code", ""
		}
	}
	return m.fallbackHTTP, "fallback", ""
}

func (m *mapper) resolveGRPC(t apis.Coded) (v codes.Code, source, pattern string) {
	if t == nil {
		return m.fallbackGRPC, "fallback", ""
	}
	key := Key(t)
	if v, ok := m.grpcOverride[key]; ok {
		return v, "override", ""
	}
	if m.grpcTrie != nil && key != "" {
		if v, ok, pat := m.grpcTrie.MatchWithPattern(key); ok {
			return v, "prefix", pat
		}
	}
	if v, ok := m.byStatus[m.HTTPStatus(t)]; ok {
		return v, "status", ""
	}
	return m.fallbackGRPC, "fallback", ""
}
