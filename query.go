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
	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/code"
)

// HasError reports whether the ticket's code equals one of codes.
func (t *Ticket) HasError(codes ...apis.ErrorCode) bool {
	if t.code == nil {
		return false
	}
	for _, c := range codes {
		if c != nil && c == t.code {
			return true
		}
	}
	return false
}

// HasErrorExcept reports whether the ticket's code is none of codes. It is
// true for a ticket without a code.
func (t *Ticket) HasErrorExcept(codes ...apis.ErrorCode) bool {
	return !t.HasError(codes...)
}

// CodeAs returns the ticket's code as the concrete type T.
//
//	if c, ok := errticket.CodeAs[oauth.Code](t); ok { … }
func CodeAs[T apis.ErrorCode](t *Ticket) (T, bool) {
	c, ok := t.code.(T)
	return c, ok
}

// BuiltinCode returns the ticket's code when it is a builtin one and
// code.GeneralError otherwise.
func (t *Ticket) BuiltinCode() code.Code {
	if c, ok := CodeAs[code.Code](t); ok {
		return c
	}
	return code.GeneralError
}
