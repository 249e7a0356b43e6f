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
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/errticket/code"
	"dirpx.dev/errticket/oauth"
)

func TestParse_Fields(t *testing.T) {
	tk, err := Parse([]byte(`{
		"code": "NotFound",
		"id": "et42",
		"details": "gone",
		"status_code": 410,
		"type": "https://example.com/nf",
		"title": "Not Found",
		"instance": "/items/1",
		"trace": "abc"
	}`), "")
	require.NoError(t, err)
	require.Equal(t, code.NotFound, tk.Code())
	require.Equal(t, "default", tk.Group())
	require.Equal(t, "et42", tk.ID())
	require.Equal(t, "gone", tk.Details())
	require.Equal(t, http.StatusGone, tk.Status())
	require.Equal(t, "https://example.com/nf", tk.Type())
	require.Equal(t, "Not Found", tk.Title())
	require.Equal(t, "/items/1", tk.Instance())
	v, ok := tk.Extension("trace")
	require.True(t, ok)
	require.Equal(t, "abc", v)
}

func TestParse_InheritsStatus(t *testing.T) {
	tk, err := Parse([]byte(`{"code":"NotPermitted"}`), "")
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, tk.Status())
}

func TestParse_AliasesYieldToStandardMembers(t *testing.T) {
	tk, err := Parse([]byte(`{"code":"NotFound","detail":"gone","details":"extra","status":404,"status_code":"E404"}`), "")
	require.NoError(t, err)
	require.Equal(t, "gone", tk.Details())
	require.Equal(t, http.StatusNotFound, tk.Status())
	v, ok := tk.Extension(KeyDetails)
	require.True(t, ok)
	require.Equal(t, "extra", v)
	v, ok = tk.Extension(KeyStatusCode)
	require.True(t, ok)
	require.Equal(t, "E404", v)

	// Extensions named like an alias survive a round trip next to their
	// standard member.
	orig := New().WithCode(code.NotFound).WithDetails("gone").
		WithExtension(KeyDetails, "extra").
		WithExtension(KeyStatusCode, "E404").Build()
	want, err := json.Marshal(orig)
	require.NoError(t, err)
	back, err := Parse(want, "")
	require.NoError(t, err)
	got, err := json.Marshal(back)
	require.NoError(t, err)
	require.JSONEq(t, string(want), string(got))
}

func TestParse_GroupMandatory(t *testing.T) {
	_, err := Parse([]byte(`{"code":"Teapot"}`), "")
	require.Error(t, err)

	var bug *Bug
	require.True(t, errors.As(err, &bug))
	require.True(t, strings.HasPrefix(bug.Msg, "group is mandatory when code provided"))
	require.True(t, strings.HasPrefix(err.Error(), BugPrefix))
}

func TestParse_ProviderNotFound(t *testing.T) {
	_, err := testParser(t).Parse([]byte(`{"code":"X","group":"nowhere"}`), "")
	var pe *PreconditionError
	require.ErrorAs(t, err, &pe)
	require.True(t, strings.HasPrefix(err.Error(), "provider not found for group"))
}

func TestParse_CodeNotInGroup(t *testing.T) {
	_, err := testParser(t).Parse([]byte(`{"code":"Coffee","group":"custom"}`), "")
	var bug *Bug
	require.ErrorAs(t, err, &bug)
	require.Equal(t, "BUG: error not found in group. error: 'Coffee', group: 'custom'", err.Error())
}

func TestParse_DefaultGroup(t *testing.T) {
	p := testParser(t)
	tk, err := p.Parse([]byte(`{"code":"Teapot"}`), "CUSTOM")
	require.NoError(t, err)
	require.Equal(t, testCode("Teapot"), tk.Code())
	require.Equal(t, "CUSTOM", tk.Group())
	require.Equal(t, 418, tk.Status())

	tk, err = p.Parse([]byte(`{"code":"invalid_grant","group":"oauth"}`), "custom")
	require.NoError(t, err)
	require.Equal(t, oauth.InvalidGrant, tk.Code())
}

func TestParse_InvalidPayload(t *testing.T) {
	for _, in := range []string{``, `[]`, `null`, `{"status":"abc"}`, `{"status":1.5}`} {
		_, err := Parse([]byte(in), "")
		require.ErrorIs(t, err, ErrInvalidPayload, in)
	}
}

func TestRoundTrip(t *testing.T) {
	p := testParser(t)
	tickets := []*Ticket{
		New().WithCode(code.NotFound).WithDetails("missing item").Build(),
		New().WithCode(code.ArgumentWrong).WithType("https://x/t").WithTitle("Wrong").
			WithInstance("/r/1").WithStatus(422).
			WithExtension("fields", []any{"a", "b"}).
			WithExtension("n", 3).Build(),
		New().WithCode(oauth.InvalidToken).WithDetails("expired").WithType("https://x/o").Build(),
		New().WithCode(testCode("Teapot")).WithGroup("custom").Build(),
		New().WithDetails("no code at all").Build(),
	}
	for _, tk := range tickets {
		t.Run(tk.Error(), func(t *testing.T) {
			want, err := json.Marshal(tk.ToJSON())
			require.NoError(t, err)

			back, err := p.Parse(want, tk.Group())
			require.NoError(t, err)

			got, err := json.Marshal(back.ToJSON())
			require.NoError(t, err)
			require.Equal(t, string(want), string(got))
		})
	}
}

func TestFromMap_Undefined(t *testing.T) {
	tk := testParser(t).FromMap(map[string]any{
		"code":   "503",
		"group":  "upstream",
		"detail": "bad gateway",
	})
	u, ok := CodeAs[code.Undefined](tk)
	require.True(t, ok)
	require.Equal(t, "503", u.Name)
	require.Equal(t, "upstream", u.Group())
	require.Equal(t, 503, u.StatusCode())
	require.Zero(t, tk.Status())

	p := tk.ToJSON()
	require.Equal(t, "503", p.String("code"))
	require.Equal(t, "upstream", p.String("group"))
}

func TestFromMap_ResolvesKnownCodes(t *testing.T) {
	tk := FromMap(map[string]any{"code": "NotFound"})
	require.Equal(t, code.NotFound, tk.Code())
	require.Zero(t, tk.Status())

	tk = testParser(t).FromMap(map[string]any{"code": "Mystery"})
	_, ok := CodeAs[code.Undefined](tk)
	require.True(t, ok)
}

func TestUnmarshalJSON(t *testing.T) {
	var tk Ticket
	require.NoError(t, json.Unmarshal([]byte(`{"code":"Nope","group":"default","status":599}`), &tk))
	require.Equal(t, "Nope", tk.Code().String())
	require.Equal(t, 599, tk.Status())

	require.ErrorIs(t, json.Unmarshal([]byte(`[1]`), &tk), ErrInvalidPayload)
}

func TestParse_OAuthAliasesNotExtensions(t *testing.T) {
	tk, err := Parse([]byte(`{"code":"invalid_scope","error":"invalid_scope","error_description":"d","group":"oauth"}`), "")
	require.NoError(t, err)
	require.Empty(t, tk.Extensions())
	require.Equal(t, "d", tk.Details())
}
