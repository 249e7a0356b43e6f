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
	"fmt"
	"math"
	"strconv"
	"strings"

	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/code"
	"dirpx.dev/errticket/provider"
)

// Registry is the provider lookup a Parser resolves groups with.
// *provider.Registry implements it.
type Registry interface {
	Get(group string) (apis.Provider, bool)
}

// Parser reads wire payloads back into tickets.
//
// The zero value resolves groups through provider.Default.
type Parser struct {
	Registry Registry
}

func (p Parser) registry() Registry {
	if p.Registry != nil {
		return p.Registry
	}
	return provider.Default
}

// Parse decodes data with the default Parser.
func Parse(data []byte, defaultGroup string) (*Ticket, error) {
	return Parser{}.Parse(data, defaultGroup)
}

// ParseMap reads an already decoded payload with the default Parser.
func ParseMap(m map[string]any, defaultGroup string) (*Ticket, error) {
	return Parser{}.ParseMap(m, defaultGroup)
}

// FromMap reads an already decoded payload with the default Parser,
// degrading unresolved codes to code.Undefined.
func FromMap(m map[string]any) *Ticket {
	return Parser{}.FromMap(m)
}

// Parse decodes a JSON object and reads it strictly. defaultGroup is used
// when the payload carries no group; pass "" for none.
func (p Parser) Parse(data []byte, defaultGroup string) (*Ticket, error) {
	m, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	return p.ParseMap(m, defaultGroup)
}

// ParseMap reads a decoded payload strictly.
//
// When the payload has a code:
//   - without a group, only builtin codes resolve; anything else is a *Bug
//     ("group is mandatory when code provided");
//   - with a group, a missing provider is a *PreconditionError and a name
//     the provider does not know is a *Bug.
//
// Status is inherited from the resolved code when the payload has none.
func (p Parser) ParseMap(m map[string]any, defaultGroup string) (*Ticket, error) {
	b, name, group, err := read(m, defaultGroup)
	if err != nil {
		return nil, err
	}
	if name != "" {
		c, err := p.resolve(name, group)
		if err != nil {
			return nil, err
		}
		b.WithCode(c)
	}
	return b.Build(), nil
}

func (p Parser) resolve(name, group string) (apis.ErrorCode, error) {
	if group == "" {
		c, ok := code.Lookup(name)
		if !ok {
			return nil, NewBug("group is mandatory when code provided. '%s'", name)
		}
		return c, nil
	}
	prov, ok := p.registry().Get(group)
	if !ok || prov == nil {
		return nil, &PreconditionError{Msg: fmt.Sprintf("provider not found for group '%s'", group)}
	}
	c, ok := prov.ValueOf(name)
	if !ok {
		return nil, NewBug("error not found in group. error: '%s', group: '%s'", name, group)
	}
	return c, nil
}

// FromMap reads a decoded payload without failing on codes: a name that no
// provider resolves becomes a code.Undefined carrying the raw name. Status
// is taken from the payload only.
func (p Parser) FromMap(m map[string]any) *Ticket {
	b, name, group, _ := read(m, "")
	if name != "" {
		b.WithCode(p.lenient(name, group))
	}
	return b.build()
}

func (p Parser) lenient(name, group string) apis.ErrorCode {
	if group == "" {
		if c, ok := code.Lookup(name); ok {
			return c
		}
		return code.NewUndefined(name, group)
	}
	if prov, ok := p.registry().Get(group); ok && prov != nil {
		if c, ok := prov.ValueOf(name); ok {
			return c
		}
	}
	return code.NewUndefined(name, group)
}

// reserved lists members consumed by read; everything else becomes an
// extension. The input aliases details and status_code are consumed only
// when their standard member is absent, otherwise they stay extensions.
var reserved = map[string]bool{
	KeyCode: true, KeyGroup: true, KeyID: true, KeyType: true, KeyTitle: true,
	KeyStatus: true, KeyDetail: true, KeyInstance: true,
}

var oauthAliases = map[string]bool{
	KeyError: true, KeyErrorDescription: true, KeyErrorURI: true,
}

// read fills a builder with every member except the code, which it returns
// by name together with the effective group.
func read(m map[string]any, defaultGroup string) (b *Builder, name, group string, err error) {
	b = New()
	group = defaultGroup
	if g := str(m[KeyGroup]); g != "" {
		group = g
	}
	b.WithGroup(group)
	oauthGroup := isOAuthGroup(group)

	b.WithID(str(m[KeyID]))
	b.WithTitle(str(m[KeyTitle]))
	b.WithInstance(str(m[KeyInstance]))

	typ := str(m[KeyType])
	if typ == "" && oauthGroup {
		typ = str(m[KeyErrorURI])
	}
	b.WithType(typ)

	_, hasDetail := m[KeyDetail]
	details := str(m[KeyDetail])
	if !hasDetail {
		details = str(m[KeyDetails])
	}
	if details == "" && oauthGroup {
		details = str(m[KeyErrorDescription])
	}
	b.WithDetails(details)

	raw, ok := m[KeyStatus]
	hasStatus := ok && raw != nil
	if !hasStatus {
		raw, ok = m[KeyStatusCode]
	}
	if ok && raw != nil {
		s, serr := toStatus(raw)
		if serr != nil {
			err = wrapPayload(serr)
		} else {
			b.WithStatus(s)
		}
	}

	for k, v := range m {
		switch {
		case reserved[k], oauthGroup && oauthAliases[k]:
			continue
		case k == KeyDetails && !hasDetail, k == KeyStatusCode && !hasStatus:
			continue
		}
		b.WithExtension(k, v)
	}

	name = strings.TrimSpace(str(m[KeyCode]))
	if name == "" && oauthGroup {
		name = strings.TrimSpace(str(m[KeyError]))
	}
	return b, name, group, err
}

func str(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case fmt.Stringer:
		return s.String()
	default:
		return ""
	}
}

func toStatus(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("status %v is not an integer", n)
		}
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("status %q: %w", n, err)
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("status %q: %w", n, err)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("status has type %T", v)
	}
}
