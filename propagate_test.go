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
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/errticket/code"
)

type silentError struct{}

func (silentError) Error() string { return "" }

type ptrError struct{ msg string }

func (e *ptrError) Error() string { return e.msg }

func nilDeref() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = r.(error)
		}
	}()
	var p *ptrError
	return errors.New(p.msg)
}

func TestPropagate_Nil(t *testing.T) {
	require.Nil(t, Propagate(nil))
}

func TestPropagate_Ticket(t *testing.T) {
	tk := E(code.NotFound, "x")
	require.Same(t, tk, Propagate(tk))
	require.Same(t, tk, Propagate(fmt.Errorf("wrapped: %w", tk)))

	cp := Propagate(tk, WithStatusOption(http.StatusGone))
	require.NotSame(t, tk, cp)
	require.Equal(t, tk.ID(), cp.ID())
	require.Equal(t, http.StatusGone, cp.Status())
	require.Equal(t, http.StatusNotFound, tk.Status())
}

func TestPropagate_Provider(t *testing.T) {
	tk := Propagate(NotFound("user %d", 7))
	require.Equal(t, code.NotFound, tk.Code())
	require.Equal(t, "Item Not Found:user 7", tk.Details())
	require.Equal(t, http.StatusNotFound, tk.Status())

	var nf *NotFoundError
	require.ErrorAs(t, tk, &nf)

	ni := &NotImplementedError{Msg: "later", Code: "FEATURE_X"}
	tk = Propagate(fmt.Errorf("ctx: %w", ni))
	require.Equal(t, code.NotImplemented, tk.Code())
	v, _ := tk.Extension("not_implemented_code")
	require.Equal(t, "FEATURE_X", v)
}

func TestPropagate_OutermostWins(t *testing.T) {
	inner := E(code.ArgumentWrong, "bad id")

	tk := Propagate(WrapNotFound(inner, "user %d", 7))
	require.Equal(t, code.NotFound, tk.Code())
	require.Equal(t, "Item Not Found:user 7", tk.Details())
	require.Equal(t, http.StatusNotFound, tk.Status())
	require.ErrorIs(t, tk, inner)

	// A ticket outside a domain error still wins.
	outer := E(code.NotPermitted, "no", WithCauseOption(NotFound("user %d", 7)))
	require.Same(t, outer, Propagate(outer))

	var typedNil *NotFoundError
	require.Equal(t, NullPointer, Propagate(typedNil).Details())
}

func TestPropagate_General(t *testing.T) {
	cause := errors.New("disk full")
	tk := Propagate(cause, WithExtensionOption("disk", "/dev/sda"))
	require.Equal(t, code.GeneralError, tk.Code())
	require.Equal(t, "disk full", tk.Details())
	require.Equal(t, http.StatusInternalServerError, tk.Status())
	require.ErrorIs(t, tk, cause)
}

func TestPropagate_NullPointer(t *testing.T) {
	err := nilDeref()
	require.Error(t, err)
	require.Equal(t, NullPointer, Propagate(err).Details())

	var typedNil *ptrError
	require.Equal(t, NullPointer, Propagate(typedNil).Details())
}

func TestPropagate_NoMessage(t *testing.T) {
	tk := Propagate(silentError{})
	require.Equal(t, "errticket.silentError", tk.Details())
}

func TestBug(t *testing.T) {
	cause := errors.New("root")
	b := WrapBug(cause, "bad %s", "config")
	require.Equal(t, "BUG: bad config", b.Error())
	require.ErrorIs(t, b, cause)
	require.True(t, strings.HasPrefix(NewBug("x").Error(), BugPrefix))
}
