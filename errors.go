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
	"errors"
	"fmt"
)

// BugPrefix starts the message of every Bug so that programmer errors are
// easy to grep for in logs.
const BugPrefix = "BUG: "

// Bug reports a programmer or integration error: an invariant broken by the
// caller's own code or configuration. A Bug is never retried.
type Bug struct {
	Msg   string
	Cause error
}

// NewBug returns a Bug with a fmt-formatted message.
func NewBug(format string, args ...any) *Bug {
	return &Bug{Msg: fmt.Sprintf(format, args...)}
}

// WrapBug returns a Bug caused by err.
func WrapBug(err error, format string, args ...any) *Bug {
	return &Bug{Msg: fmt.Sprintf(format, args...), Cause: err}
}

func (b *Bug) Error() string { return BugPrefix + b.Msg }

func (b *Bug) Unwrap() error { return b.Cause }

// PreconditionError reports a missing collaborator, such as a provider for
// an explicitly requested group.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string { return e.Msg }

// ErrInvalidPayload wraps every failure to decode a wire payload.
var ErrInvalidPayload = errors.New("errticket: invalid payload")

var errNotObject = errors.New("payload is not a JSON object")

func wrapPayload(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
}
