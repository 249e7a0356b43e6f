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

import (
	"errors"
	"sort"
	"strings"
)

// Trie is a segment-aware prefix index for dot-separated keys such as
// "oauth.invalid_token". Each node represents one segment; the wildcard "*"
// matches exactly one segment. Lookups return the longest matching prefix,
// so a more specific rule wins over a shorter one.
//
// A Trie is not safe for concurrent Insert; once built, concurrent Match
// calls are safe.
type Trie[T any] struct {
	children map[string]*Trie[T]
	hasVal   bool
	val      T
	// pattern is the prefix as inserted, kept for Explain.
	pattern string
}

// ErrInvalidPrefix is returned when inserting a prefix that is empty, has
// empty or malformed segments, or consists only of wildcards.
var ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")

// New creates an empty trie.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert associates val with a dot-separated prefix. Inserting the same
// prefix twice replaces the value.
//
//	"oauth"
//	"default.notfound"
//	"*.not_found"
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	cur.pattern = prefix
	return nil
}

// Match returns the value of the deepest prefix matching key.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern is Match that also returns the matched pattern.
// At equal depth an exact segment beats a wildcard.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	best := -1
	var bestNode *Trie[T]

	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > best {
			best = depth
			bestNode = n
		}
		if off >= len(key) {
			return
		}
		end := segmentEnd(key, off)
		if end < 0 {
			return
		}
		next := end
		if next < len(key) && key[next] == '.' {
			next++
		}
		if child, ok := n.children[key[off:end]]; ok {
			dfs(child, next, depth+1)
		}
		if child, ok := n.children["*"]; ok {
			dfs(child, next, depth+1)
		}
	}
	dfs(t, 0, 0)

	if bestNode == nil {
		return zero, false, ""
	}
	return bestNode.val, true, bestNode.pattern
}

// Patterns lists every inserted prefix in lexical order.
func (t *Trie[T]) Patterns() []string {
	if t == nil {
		return nil
	}
	var out []string
	var walk func(n *Trie[T])
	walk = func(n *Trie[T]) {
		if n.hasVal {
			out = append(out, n.pattern)
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t)
	sort.Strings(out)
	return out
}

// segmentEnd returns the end offset of the segment starting at off, or -1
// when the segment is empty or malformed.
func segmentEnd(key string, off int) int {
	i := off
	for i < len(key) && key[i] != '.' {
		if !segmentByte(key[i]) {
			return -1
		}
		i++
	}
	if i == off {
		return -1
	}
	return i
}

func splitAndValidate(s string) ([]string, bool) {
	if s == "" {
		return nil, true
	}
	segs := strings.Split(s, ".")
	for _, seg := range segs {
		if !ValidSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

// ValidSegment reports whether seg is "*" or matches [a-z0-9][a-z0-9_]*.
func ValidSegment(seg string) bool {
	if seg == "*" {
		return true
	}
	if seg == "" || seg[0] == '_' {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if !segmentByte(seg[i]) {
			return false
		}
	}
	return true
}

func segmentByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_'
}
