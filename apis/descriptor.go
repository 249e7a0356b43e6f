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

package apis

// ErrorDescriptor is a flat, transport-friendly description of one code
// known to a provider, together with the statuses a mapper resolves for it.
//
// This type intentionally uses strings (not ErrorCode values) so that it can
// be printed, logged or marshaled by tooling without knowing the concrete
// code types.
type ErrorDescriptor struct {
	// Group is the provider group, e.g. "default" or "oauth".
	Group string `json:"group"`

	// Code is the wire name of the code, e.g. "NotFound" or "invalid_token".
	Code string `json:"code"`

	// SuggestedStatus is the status the code itself suggests.
	// A value of 0 means "not specified".
	SuggestedStatus int `json:"suggested_status,omitempty"`

	// HTTPStatus is the HTTP status a mapper resolves for a ticket carrying
	// only this code and group.
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is the gRPC status code (as integer) a mapper resolves for the
	// same ticket.
	GRPCCode int `json:"grpc_code,omitempty"`
}
