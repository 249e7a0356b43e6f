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

// Package mapper resolves error tickets to transport statuses for HTTP and
// gRPC with deterministic, immutable rules.
//
// # Keys
//
// A ticket is identified by its key: the lowercased group and code name
// joined by a dot, e.g. "default.notfound" or "oauth.invalid_token".
//
// # Resolution model
//
// HTTP status, highest priority first:
//
//  1. exact override for the key;
//  2. longest-prefix-match (LPM) rule on the key;
//  3. the ticket's own status;
//  4. the code's suggested status;
//  5. fallback (500).
//
// gRPC code:
//
//  1. exact override for the key;
//  2. LPM rule on the key;
//  3. the status table entry for the resolved HTTP status;
//  4. fallback (codes.Unknown).
//
// Prefix rules are segment-aware and "*" matches exactly one segment:
//
//	WithHTTPPrefix("oauth", http.StatusBadRequest)
//	WithGRPCPrefix("*.notfound", codes.NotFound)
//
// The more specific prefix wins.
//
// # Building a mapper
//
// A Mapper is built once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride("default.notloggedin", 419),
//	    mapper.WithGRPCPrefix("billing", codes.FailedPrecondition),
//	)
//
//	st := m.Status(ticket)
//	// st.HTTP, st.GRPC
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a ticket was
// resolved: which tier matched and, for prefixes, which pattern. It is
// meant for logs and the ticketctl CLI, not for machine parsing.
//
// # Immutability
//
// All inputs are copied during New. A Mapper is safe to share across
// goroutines.
package mapper
