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

package code

import "net/http"

// General-purpose codes.
const (
	// GeneralError indicates an unexpected, non-classified failure.
	// It is the fallback used when a failure carries no code of its own.
	GeneralError Code = "GeneralError"

	// NotImplemented indicates that the requested operation exists in the
	// contract but has no implementation yet.
	NotImplemented Code = "NotImplemented"
)

// Argument validation codes.
//
// These are raised by guard helpers when a precondition on caller input
// does not hold.
const (
	// ArgumentNull indicates that a required value is missing.
	ArgumentNull Code = "ArgumentNull"

	// ArgumentOutOfRange indicates a value outside its accepted range.
	ArgumentOutOfRange Code = "ArgumentOutOfRange"

	// ArgumentWrong indicates a value that fails validation.
	ArgumentWrong Code = "ArgumentWrong"

	// ArgumentShouldBeNull indicates a value that must be absent but was set.
	ArgumentShouldBeNull Code = "ArgumentShouldBeNull"
)

// Resource state codes.
const (
	// NotFound indicates that the target resource does not exist (or is not
	// visible to the caller).
	NotFound Code = "NotFound"

	// AlreadyExist indicates a creation clash with an existing entity.
	AlreadyExist Code = "AlreadyExist"
)

// Access codes.
const (
	// NotLoggedIn indicates that the caller must authenticate first.
	NotLoggedIn Code = "NotLoggedIn"

	// NotPermitted indicates an authenticated caller lacking permission.
	NotPermitted Code = "NotPermitted"
)

// statuses holds the suggested HTTP status of every builtin code. Membership
// in this map is what makes a name a builtin code.
var statuses = map[Code]int{
	GeneralError:         http.StatusInternalServerError,
	AlreadyExist:         http.StatusConflict,
	ArgumentNull:         http.StatusBadRequest,
	ArgumentOutOfRange:   http.StatusBadRequest,
	ArgumentWrong:        http.StatusBadRequest,
	NotFound:             http.StatusNotFound,
	NotImplemented:       http.StatusNotImplemented,
	NotLoggedIn:          http.StatusUnauthorized,
	NotPermitted:         http.StatusForbidden,
	ArgumentShouldBeNull: http.StatusBadRequest,
}

// ordered keeps the declaration order for listings.
var ordered = []Code{
	GeneralError,
	AlreadyExist,
	ArgumentNull,
	ArgumentOutOfRange,
	ArgumentWrong,
	NotFound,
	NotImplemented,
	NotLoggedIn,
	NotPermitted,
	ArgumentShouldBeNull,
}
