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
	"bytes"
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"dirpx.dev/errticket/oauth"
)

// Wire member names.
const (
	KeyCode             = "code"
	KeyGroup            = "group"
	KeyID               = "id"
	KeyType             = "type"
	KeyTitle            = "title"
	KeyStatus           = "status"
	KeyStatusCode       = "status_code"
	KeyDetail           = "detail"
	KeyDetails          = "details"
	KeyInstance         = "instance"
	KeyError            = "error"
	KeyErrorDescription = "error_description"
	KeyErrorURI         = "error_uri"
)

// Media types returned by ContentType.
const (
	ContentTypeProblem = "application/problem+json"
	ContentTypeJSON    = "application/json"
)

// HeaderWWWAuthenticate is the only header a ticket synthesizes.
const HeaderWWWAuthenticate = "WWW-Authenticate"

// IsOAuth reports whether the ticket belongs to the OAuth group and is
// therefore projected with the RFC 6749 aliases.
func (t *Ticket) IsOAuth() bool { return isOAuthGroup(t.group) }

func isOAuthGroup(g string) bool { return strings.EqualFold(g, oauth.Group) }

// ToJSON projects the ticket onto its wire payload.
//
// Members appear in this order, each omitted when empty: code; for the
// OAuth group error, error_description and error_uri; then type, title,
// detail, group, id, status and instance; then the extensions sorted by
// key. An extension named like a standard member replaces its value.
//
// The input aliases (details, status_code and, for the OAuth group, error,
// error_description and error_uri) are read back as standard members when
// the standard member is absent. An extension with such a name therefore
// only round-trips while its standard member is set.
func (t *Ticket) ToJSON() *Payload {
	p := NewPayload()
	if t.code != nil {
		p.Set(KeyCode, t.code.String())
		if t.IsOAuth() {
			p.Set(KeyError, t.code.String())
			if t.details != "" {
				p.Set(KeyErrorDescription, t.details)
			}
			if t.typ != "" {
				p.Set(KeyErrorURI, t.typ)
			}
		}
	}
	setString(p, KeyType, t.typ)
	setString(p, KeyTitle, t.title)
	setString(p, KeyDetail, t.details)
	setString(p, KeyGroup, t.group)
	setString(p, KeyID, t.id)
	if t.status != 0 {
		p.Set(KeyStatus, t.status)
	}
	setString(p, KeyInstance, t.instance)

	keys := make([]string, 0, len(t.ext))
	for k := range t.ext {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		p.Set(k, t.ext[k])
	}
	return p
}

func setString(p *Payload, key, v string) {
	if v != "" {
		p.Set(key, v)
	}
}

// MarshalJSON implements json.Marshaler using ToJSON.
func (t *Ticket) MarshalJSON() ([]byte, error) {
	return t.ToJSON().MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler with the best-effort FromMap
// semantics: unknown codes never fail decoding.
func (t *Ticket) UnmarshalJSON(data []byte) error {
	m, err := decodeObject(data)
	if err != nil {
		return err
	}
	*t = *FromMap(m)
	return nil
}

// ContentType returns application/problem+json when a problem type is set
// and the ticket is not an OAuth error, application/json otherwise.
func (t *Ticket) ContentType() string {
	if t.typ != "" && !t.IsOAuth() {
		return ContentTypeProblem
	}
	return ContentTypeJSON
}

// Headers returns the response headers to send with the ticket. Only OAuth
// 401 tickets produce one: a Bearer WWW-Authenticate challenge. The result
// is never nil.
func (t *Ticket) Headers() http.Header {
	h := make(http.Header)
	if !t.IsOAuth() || t.status != http.StatusUnauthorized {
		return h
	}
	var sb strings.Builder
	sb.WriteString("Bearer")
	if t.code != nil {
		writeParam(&sb, "error", t.code.String())
	}
	if t.details != "" {
		writeParam(&sb, "error_description", t.details)
	}
	if t.typ != "" {
		writeParam(&sb, "error_uri", t.typ)
	}
	h.Set(HeaderWWWAuthenticate, sb.String())
	return h
}

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func writeParam(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	quoteEscaper.WriteString(sb, value)
	sb.WriteByte('"')
}

func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, wrapPayload(err)
	}
	if m == nil {
		return nil, wrapPayload(errNotObject)
	}
	return m, nil
}
