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
	"fmt"

	"google.golang.org/grpc/codes"
)

// Option configures the Mapper at build time.
type Option func(*builder)

// WithHTTPOverride sets the HTTP status for one exact key, e.g.
// "default.notloggedin". Overrides beat every other tier.
func WithHTTPOverride(key string, status int) Option {
	return func(b *builder) { b.setOverride(b.httpOverride, key, status) }
}

// WithGRPCOverride sets the gRPC code for one exact key.
func WithGRPCOverride(key string, c codes.Code) Option {
	return func(b *builder) { b.setOverride(b.grpcOverride, key, int(c)) }
}

// WithHTTPPrefix adds an HTTP longest-prefix-match rule on keys. Use "*"
// to match a single segment.
func WithHTTPPrefix(prefix string, status int) Option {
	return func(b *builder) { b.httpPrefixes = append(b.httpPrefixes, prefixRule{prefix, status}) }
}

// WithGRPCPrefix adds a gRPC longest-prefix-match rule on keys.
func WithGRPCPrefix(prefix string, c codes.Code) Option {
	return func(b *builder) { b.grpcPrefixes = append(b.grpcPrefixes, prefixRule{prefix, int(c)}) }
}

// WithGRPCForStatus sets the gRPC code used for tickets resolving to the
// given HTTP status when no rule matches.
func WithGRPCForStatus(status int, c codes.Code) Option {
	return func(b *builder) { b.byStatus[status] = int(c) }
}

// WithFallback sets the statuses used when nothing else resolves.
func WithFallback(status int, c codes.Code) Option {
	return func(b *builder) {
		b.fallbackHTTP = status
		b.fallbackGRPC = c
	}
}

func (b *builder) setOverride(dst map[string]int, key string, val int) {
	k, err := normalizeAndValidateKey(key, false)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("mapper: invalid override key %q: %w", key, err))
		return
	}
	dst[k] = val
}
