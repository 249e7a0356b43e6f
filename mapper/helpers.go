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
	"fmt"
	"strings"

	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// Key returns the mapping key of a ticket: "group.code" lowercased. A
// ticket without a group uses the code's group; a ticket without a code
// yields just the group.
func Key(t apis.Coded) string {
	if t == nil {
		return ""
	}
	group := t.Group()
	c := t.Code()
	if group == "" && c != nil {
		group = c.Group()
	}
	if c == nil {
		return strings.ToLower(strings.TrimSpace(group))
	}
	return KeyOf(group, c.String())
}

// KeyOf joins a group and code name into a mapping key.
func KeyOf(group, name string) string {
	group = strings.ToLower(strings.TrimSpace(group))
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case group == "":
		return name
	case name == "":
		return group
	default:
		return group + "." + name
	}
}

// normalizeAndValidateKey lowercases a key or prefix and checks its
// segments. Wildcards are only allowed in prefixes.
func normalizeAndValidateKey(raw string, allowWildcard bool) (string, error) {
	p := strings.ToLower(strings.TrimSpace(raw))
	if p == "" {
		return "", fmt.Errorf("empty key")
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if seg == "*" && !allowWildcard {
			return "", fmt.Errorf("wildcard not allowed")
		}
		if !segmenttrie.ValidSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

func buildTrie[T any](rules []prefixRule, conv func(int) T, kind string) (*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, err := normalizeAndValidateKey(r.prefix, true)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s prefix %q: %w", kind, r.prefix, err)
		}
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s prefix %q: %w", kind, p, err)
		}
	}
	return t, nil
}

// freeze copies src converting values, so the mapper never aliases
// builder-owned maps.
func freeze[V any](src map[string]int, conv func(int) V) map[string]V {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = conv(v)
	}
	return dst
}

func freezeStatus(src map[int]int) map[int]codes.Code {
	dst := make(map[int]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

func identityInt(v int) int { return v }

func toCode(v int) codes.Code { return codes.Code(v) }

func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}
