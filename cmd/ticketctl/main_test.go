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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dirpx.dev/errticket/apis"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func init() { color.NoColor = true }

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestParse_Stdin(t *testing.T) {
	out, err := run(t, `{"code":"NotFound","detail":"user 7","id":"et-1"}`, "parse")
	require.NoError(t, err)
	require.Contains(t, out, "✓ -")
	require.Contains(t, out, "Content-Type: application/json")
	require.Contains(t, out, `"code": "NotFound"`)
	require.Contains(t, out, `"group": "default"`)
}

func TestParse_FilesKeepOrder(t *testing.T) {
	a := writeFile(t, "a.json", `{"code":"invalid_token","group":"oauth","status":401}`)
	b := writeFile(t, "b.json", `{"code":"AlreadyExist"}`)

	out, err := run(t, "", "parse", "--workers", "2", a, b)
	require.NoError(t, err)
	require.Less(t, strings.Index(out, a), strings.Index(out, b))
	require.Contains(t, out, `WWW-Authenticate: Bearer error="invalid_token"`)
}

func TestParse_StrictRejectsUnknown(t *testing.T) {
	out, err := run(t, `{"code":"Nope"}`, "parse")
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 1 payloads failed")
	require.Contains(t, out, "group is mandatory when code provided")
}

func TestParse_Lenient(t *testing.T) {
	out, err := run(t, `{"code":"Nope","group":"billing"}`, "parse", "--lenient")
	require.NoError(t, err)
	require.Contains(t, out, `"code": "Nope"`)
	require.Contains(t, out, `"group": "billing"`)
}

func TestParse_DefaultGroup(t *testing.T) {
	_, err := run(t, `{"code":"invalid_grant"}`, "parse", "--group", "oauth")
	require.NoError(t, err)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := run(t, "", "parse", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestCodes_JSON(t *testing.T) {
	out, err := run(t, "", "codes", "oauth", "--json")
	require.NoError(t, err)

	var ds []apis.ErrorDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &ds))
	require.NotEmpty(t, ds)
	for _, d := range ds {
		require.Equal(t, "oauth", d.Group)
	}
}

func TestCodes_Table(t *testing.T) {
	out, err := run(t, "", "codes")
	require.NoError(t, err)
	require.Contains(t, out, "GROUP")
	require.Contains(t, out, "NotFound")
	require.Contains(t, out, "invalid_token")
}

func TestCodes_UnknownGroup(t *testing.T) {
	_, err := run(t, "", "codes", "nope")
	require.Error(t, err)
}

func TestGRPC(t *testing.T) {
	out, err := run(t, `{"code":"NotPermitted","detail":"admins only"}`, "grpc", "--explain")
	require.NoError(t, err)
	require.Contains(t, out, "code: PermissionDenied(7)")
	require.Contains(t, out, "message: admins only")
	require.Contains(t, out, `key="default.notpermitted"`)
	require.Contains(t, out, "google.protobuf.Struct")
}

func TestLogLevelFlag(t *testing.T) {
	_, err := run(t, "{}", "parse", "--log-level", "loud")
	require.Error(t, err)
}
