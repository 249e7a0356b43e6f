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
	"net/http"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/code"
	"dirpx.dev/errticket/oauth"
	"google.golang.org/grpc/codes"
)

// fakeTicket is the smallest apis.Coded needed by the mapper.
type fakeTicket struct {
	c      apis.ErrorCode
	group  string
	status int
}

func (f fakeTicket) Code() apis.ErrorCode { return f.c }
func (f fakeTicket) Group() string        { return f.group }
func (f fakeTicket) Status() int          { return f.status }

func tk(c apis.ErrorCode) fakeTicket { return fakeTicket{c: c} }

func TestDefaults_FollowCodeStatus(t *testing.T) {
	m, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	check := func(c apis.ErrorCode, wantHTTP int, wantGRPC codes.Code) {
		t.Helper()
		st := m.Status(tk(c))
		if st.HTTP != wantHTTP || st.GRPC != wantGRPC {
			t.Fatalf("Status(%q) got HTTP=%d GRPC=%v; want HTTP=%d GRPC=%v",
				c, st.HTTP, st.GRPC, wantHTTP, wantGRPC)
		}
	}
	check(code.ArgumentWrong, 400, codes.InvalidArgument)
	check(code.NotFound, 404, codes.NotFound)
	check(code.NotLoggedIn, 401, codes.Unauthenticated)
	check(code.GeneralError, 500, codes.Internal)
	check(oauth.InvalidToken, 401, codes.Unauthenticated)
}

func TestTicketStatus_BeatsCodeStatus(t *testing.T) {
	m := MustNew()
	got := m.HTTPStatus(fakeTicket{c: code.NotFound, status: http.StatusGone})
	if got != http.StatusGone {
		t.Fatalf("ticket status must win over code status; got %d", got)
	}
}

func TestPriority_OverrideOverPrefixOverTicket_HTTP(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("default", 599),
		WithHTTPOverride("default.notfound", 418),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(fakeTicket{c: code.NotFound, status: 404}); got != 418 {
		t.Fatalf("override must win; got %d, want 418", got)
	}
	if got := m.HTTPStatus(fakeTicket{c: code.NotPermitted, status: 403}); got != 599 {
		t.Fatalf("prefix must beat ticket status; got %d, want 599", got)
	}
}

func TestPriority_OverrideOverPrefixOverStatus_GRPC(t *testing.T) {
	m, err := New(
		WithGRPCPrefix("default", codes.Internal),
		WithGRPCOverride("default.notfound", codes.Aborted),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.GRPCStatus(tk(code.NotFound)); got != codes.Aborted {
		t.Fatalf("override must win; got %v, want %v", got, codes.Aborted)
	}
	if got := m.GRPCStatus(tk(code.NotPermitted)); got != codes.Internal {
		t.Fatalf("prefix must win; got %v, want %v", got, codes.Internal)
	}
}

func TestKey_IsCaseInsensitive(t *testing.T) {
	m := MustNew(WithHTTPOverride("Default.NotFound", 418))
	if got := m.HTTPStatus(tk(code.NotFound)); got != 418 {
		t.Fatalf("override key must be case-insensitive; got %d", got)
	}
	if k := Key(fakeTicket{c: code.NotFound, group: "DEFAULT"}); k != "default.notfound" {
		t.Fatalf("Key = %q", k)
	}
}

func TestKey_GroupFallsBackToCode(t *testing.T) {
	if k := Key(tk(oauth.InvalidGrant)); k != "oauth.invalid_grant" {
		t.Fatalf("Key = %q", k)
	}
	if k := Key(fakeTicket{group: "billing"}); k != "billing" {
		t.Fatalf("Key without code = %q", k)
	}
	if k := Key(nil); k != "" {
		t.Fatalf("Key(nil) = %q", k)
	}
}

func TestPrefix_LPM_And_SegmentBoundary(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("oauth", 400),
		WithHTTPPrefix("oauth.invalid_token", 499),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.HTTPStatus(tk(oauth.InvalidToken)); got != 499 {
		t.Fatalf("LPM failed: got %d, want 499", got)
	}
	if got := m.HTTPStatus(tk(oauth.InvalidGrant)); got != 400 {
		t.Fatalf("group prefix failed: got %d, want 400", got)
	}

	// "oauth.invalid" must not match "oauth.invalid_token".
	m2 := MustNew(WithHTTPPrefix("oauth.invalid", 499))
	if got := m2.HTTPStatus(tk(oauth.InvalidToken)); got == 499 {
		t.Fatalf("unexpected match across segment boundary")
	}
}

func TestPrefix_Wildcard(t *testing.T) {
	m := MustNew(WithGRPCPrefix("*.notfound", codes.FailedPrecondition))
	if got := m.GRPCStatus(tk(code.NotFound)); got != codes.FailedPrecondition {
		t.Fatalf("wildcard failed: got %v", got)
	}
	if got := m.GRPCStatus(fakeTicket{c: code.NotFound, group: "billing"}); got != codes.FailedPrecondition {
		t.Fatalf("wildcard must match any group: got %v", got)
	}
}

func TestGRPC_FollowsResolvedHTTP(t *testing.T) {
	m := MustNew(WithHTTPOverride("default.notfound", http.StatusTooManyRequests))
	if got := m.GRPCStatus(tk(code.NotFound)); got != codes.ResourceExhausted {
		t.Fatalf("gRPC must follow the resolved HTTP status; got %v", got)
	}

	m2 := MustNew(WithGRPCForStatus(http.StatusNotFound, codes.OutOfRange))
	if got := m2.GRPCStatus(tk(code.NotFound)); got != codes.OutOfRange {
		t.Fatalf("status table override failed; got %v", got)
	}
}

func TestFallbacks(t *testing.T) {
	m := MustNew()
	st := m.Status(fakeTicket{group: "custom"})
	if st.HTTP != http.StatusInternalServerError {
		t.Fatalf("HTTP fallback = %d", st.HTTP)
	}
	if st.GRPC != codes.Internal {
		t.Fatalf("GRPC fallback = %v; 500 maps to Internal", st.GRPC)
	}

	m2 := MustNew(WithFallback(http.StatusTeapot, codes.Aborted))
	st = m2.Status(nil)
	if st.HTTP != http.StatusTeapot || st.GRPC != codes.Aborted {
		t.Fatalf("custom fallback = %+v", st)
	}

	// Undefined codes with a non-table status fall through to the gRPC fallback.
	if got := m2.GRPCStatus(tk(code.NewUndefined("X-7", "custom"))); got != codes.Aborted {
		t.Fatalf("unmapped status must use gRPC fallback; got %v", got)
	}
}

func TestInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		opt  Option
	}{
		{"empty override", WithHTTPOverride("", 400)},
		{"wildcard override", WithGRPCOverride("default.*", codes.Internal)},
		{"bad segment", WithHTTPPrefix("default..x", 400)},
		{"only wildcard", WithHTTPPrefix("*.*", 400)},
		{"leading underscore", WithGRPCPrefix("_x", codes.Internal)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.opt); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestExplain_Sources(t *testing.T) {
	m := MustNew(WithHTTPPrefix("oauth", 400))
	out := m.Explain(tk(oauth.InvalidToken))
	if !strings.Contains(out, `http: source=prefix pattern="oauth" -> 400`) {
		t.Fatalf("missing prefix line:\n%s", out)
	}
	if !strings.Contains(out, "grpc: source=status -> INVALIDARGUMENT(3)") {
		t.Fatalf("missing status line:\n%s", out)
	}
	out = m.Explain(fakeTicket{c: code.NotFound, status: 410})
	if !strings.Contains(out, "http: source=ticket -> 410") {
		t.Fatalf("missing ticket line:\n%s", out)
	}
}

func TestConcurrentUse(t *testing.T) {
	m := MustNew(WithHTTPPrefix("default", 400))
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if m.HTTPStatus(tk(code.NotFound)) != 400 {
					t.Error("unexpected status")
					return
				}
			}
		}()
	}
	wg.Wait()
}
