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

// Package adapter converts tickets and code catalogs into portable
// apis.ErrorDescriptor values for logging, documentation and the CLI.
package adapter

import (
	"sort"
	"strings"

	"dirpx.dev/errticket"
	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/mapper"
)

// codeOnly is the ticket a mapper sees for a bare code: no explicit
// status, group taken from the code.
type codeOnly struct{ c apis.ErrorCode }

func (o codeOnly) Code() apis.ErrorCode { return o.c }
func (o codeOnly) Group() string        { return o.c.Group() }
func (o codeOnly) Status() int          { return 0 }

// ToDescriptor converts a ticket together with its resolved transport
// status into a portable ErrorDescriptor. A nil mapper uses mapper.Default.
func ToDescriptor(t *errticket.Ticket, m apis.Mapper) apis.ErrorDescriptor {
	if t == nil {
		return apis.ErrorDescriptor{}
	}
	if m == nil {
		m = mapper.Default
	}
	st := m.Status(t)
	d := apis.ErrorDescriptor{
		Group:      t.Group(),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
	}
	if c := t.Code(); c != nil {
		d.Code = c.String()
		d.SuggestedStatus = c.StatusCode()
	}
	return d
}

// Describe lists every code of p with the statuses m resolves for it.
// Providers that do not implement apis.Lister yield nil.
func Describe(m apis.Mapper, p apis.Provider) []apis.ErrorDescriptor {
	l, ok := p.(apis.Lister)
	if !ok {
		return nil
	}
	if m == nil {
		m = mapper.Default
	}
	cs := l.Codes()
	out := make([]apis.ErrorDescriptor, 0, len(cs))
	for _, c := range cs {
		st := m.Status(codeOnly{c})
		out = append(out, apis.ErrorDescriptor{
			Group:           p.Group(),
			Code:            c.String(),
			SuggestedStatus: c.StatusCode(),
			HTTPStatus:      st.HTTP,
			GRPCCode:        int(st.GRPC),
		})
	}
	return out
}

// DescribeAll concatenates Describe for each provider, ordered by group
// then code name.
func DescribeAll(m apis.Mapper, ps []apis.Provider) []apis.ErrorDescriptor {
	var out []apis.ErrorDescriptor
	for _, p := range ps {
		out = append(out, Describe(m, p)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		gi, gj := strings.ToLower(out[i].Group), strings.ToLower(out[j].Group)
		if gi != gj {
			return gi < gj
		}
		return out[i].Code < out[j].Code
	})
	return out
}
