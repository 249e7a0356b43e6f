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

package segmenttrie

import "testing"

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("oauth", 400))
	must(t, tr.Insert("oauth.invalid_token", 401))
	must(t, tr.Insert("default.notfound", 404))

	if v, ok, p := tr.MatchWithPattern("oauth.invalid_grant"); !ok || v != 400 || p != "oauth" {
		t.Fatalf("match oauth.invalid_grant => ok=%v v=%v p=%q; want 400, oauth", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("oauth.invalid_token"); !ok || v != 401 || p != "oauth.invalid_token" {
		t.Fatalf("match oauth.invalid_token => ok=%v v=%v p=%q; want 401", ok, v, p)
	}
	if v, ok := tr.Match("default.notfound"); !ok || v != 404 {
		t.Fatalf("match default.notfound => ok=%v v=%v; want 404", ok, v)
	}
	if _, ok := tr.Match("default.generalerror"); ok {
		t.Fatalf("unexpected match for default.generalerror")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("*.notfound", 410))
	must(t, tr.Insert("default.notfound", 404))

	if v, ok, p := tr.MatchWithPattern("default.notfound"); !ok || v != 404 || p != "default.notfound" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("billing.notfound"); !ok || v != 410 || p != "*.notfound" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	if _, ok := tr.Match("notfound"); ok {
		t.Fatalf("wildcard should not match zero segments")
	}
}

func TestLPM_PrefersDeeper(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestNumericSegments(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("upstream.503", 502))
	if v, ok := tr.Match("upstream.503"); !ok || v != 502 {
		t.Fatalf("numeric segment: ok=%v v=%v", ok, v)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, p := range []string{"", "UPPER.case", "a..b", "*", "*.*", "_x", "a.b-c"} {
		if err := tr.Insert(p, 1); err == nil {
			t.Fatalf("Insert(%q) must fail", p)
		}
	}
	must(t, tr.Insert("a", 1))
	for _, k := range []string{"A", "a..b", ".a"} {
		if k == "a..b" {
			// "a" still matches before the malformed segment
			if _, ok := tr.Match(k); !ok {
				t.Fatalf("Match(%q) should keep the valid leading prefix", k)
			}
			continue
		}
		if _, ok := tr.Match(k); ok {
			t.Fatalf("Match(%q) should fail", k)
		}
	}
}

func TestPatterns(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("oauth", 1))
	must(t, tr.Insert("*.notfound", 2))
	must(t, tr.Insert("default.notfound", 3))
	got := tr.Patterns()
	want := []string{"*.notfound", "default.notfound", "oauth"}
	if len(got) != len(want) {
		t.Fatalf("Patterns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Patterns() = %v, want %v", got, want)
		}
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
