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

// Package oauth provides the OAuth 2.0 error codes (RFC 6749 §5.2 and
// RFC 6750 §3.1) as the "oauth" provider group.
//
// Tickets whose group is "oauth" serialize with the error,
// error_description and error_uri aliases and, for 401 responses, carry a
// WWW-Authenticate challenge.
package oauth

import (
	"net/http"

	"dirpx.dev/errticket/apis"
)

// Group is the provider group of OAuth codes.
const Group = "oauth"

// Code is an OAuth 2.0 error code. Its value is the registered wire name.
type Code string

// Registered codes: the RFC 6749 authorization (§4.1.2.1) and token
// endpoint (§5.2) errors.
const (
	InvalidRequest          Code = "invalid_request"
	InvalidClient           Code = "invalid_client"
	InvalidGrant            Code = "invalid_grant"
	UnauthorizedClient      Code = "unauthorized_client"
	UnsupportedGrantType    Code = "unsupported_grant_type"
	InvalidScope            Code = "invalid_scope"
	AccessDenied            Code = "access_denied"
	UnsupportedResponseType Code = "unsupported_response_type"
	ServerError             Code = "server_error"
	TemporarilyUnavailable  Code = "temporarily_unavailable"

	// RFC 6750 bearer token errors.
	InvalidToken      Code = "invalid_token"
	InsufficientScope Code = "insufficient_scope"
)

var statuses = map[Code]int{
	InvalidRequest:          http.StatusBadRequest,
	InvalidClient:           http.StatusUnauthorized,
	InvalidGrant:            http.StatusBadRequest,
	UnauthorizedClient:      http.StatusUnauthorized,
	UnsupportedGrantType:    http.StatusBadRequest,
	InvalidScope:            http.StatusBadRequest,
	AccessDenied:            http.StatusForbidden,
	UnsupportedResponseType: http.StatusBadRequest,
	ServerError:             http.StatusInternalServerError,
	TemporarilyUnavailable:  http.StatusServiceUnavailable,
	InvalidToken:            http.StatusUnauthorized,
	InsufficientScope:       http.StatusForbidden,
}

var ordered = []Code{
	InvalidRequest, InvalidClient, InvalidGrant, UnauthorizedClient,
	UnsupportedGrantType, InvalidScope, AccessDenied, UnsupportedResponseType,
	ServerError, TemporarilyUnavailable, InvalidToken, InsufficientScope,
}

var _ apis.ErrorCode = Code("")

// Group implements apis.ErrorCode. Every Code belongs to the "oauth"
// group, registered or not.
func (c Code) Group() string { return Group }

// StatusCode implements apis.ErrorCode. It returns the HTTP status the
// RFCs pair with the code, and 0 for a name that is not registered; Lookup
// tells the two apart.
func (c Code) StatusCode() int { return statuses[c] }

// String returns the wire name, the value carried by the "error" member.
func (c Code) String() string { return string(c) }

// Lookup resolves an OAuth wire name. It reports false for names outside
// the registered set; the returned Code is then unusable.
func Lookup(name string) (Code, bool) {
	c := Code(name)
	_, ok := statuses[c]
	return c, ok
}

// Provider resolves codes of the "oauth" group. The zero value is ready
// to use and holds no state, so one value may be registered with any
// number of registries.
type Provider struct{}

var (
	_ apis.Provider = Provider{}
	_ apis.Lister   = Provider{}
)

// Group implements apis.Provider and returns "oauth".
func (Provider) Group() string { return Group }

// ValueOf implements apis.Provider. name is the registered wire name, for
// example "invalid_grant"; names are case-sensitive, as RFC 6749 defines
// them in lower case.
func (Provider) ValueOf(name string) (apis.ErrorCode, bool) {
	c, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return c, true
}

// Codes implements apis.Lister. The RFC 6749 codes come first, then the RFC 6750 bearer token codes. The slice is fresh
// on every call.
func (Provider) Codes() []apis.ErrorCode {
	out := make([]apis.ErrorCode, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, c)
	}
	return out
}
