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

// ErrorCode is the minimal capability every error code implements.
//
// A code belongs to a named group (the namespace of the provider that can
// resolve it back from its wire name) and may suggest an HTTP status.
//
// Implementations MUST be comparable: tickets compare codes with ==.
type ErrorCode interface {
	// Group returns the provider group used to resolve this code.
	Group() string

	// StatusCode returns the suggested HTTP status, or 0 when unspecified.
	StatusCode() int

	// String returns the wire name of the code, e.g. "NotFound" or
	// "invalid_token".
	String() string
}

// Provider resolves wire names to ErrorCode values for exactly one group.
type Provider interface {
	// Group returns the logical group name served by this provider.
	// Matching against ticket groups is case-insensitive.
	Group() string

	// ValueOf resolves a code by its wire name. The boolean is false when
	// the name is not part of this group.
	ValueOf(name string) (ErrorCode, bool)
}

// Lister is implemented by providers that can enumerate their codes.
// It is optional; registries and tooling must not require it.
type Lister interface {
	Codes() []ErrorCode
}

// Coded is the read-only view of a ticket that mappers need.
type Coded interface {
	// Code returns the resolved code or nil when the ticket has none.
	Code() ErrorCode
	// Group returns the ticket group, "" when absent.
	Group() string
	// Status returns the explicit HTTP status, 0 when absent.
	Status() int
}
