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

// Package ginx renders error tickets from gin handlers.
package ginx

import (
	"dirpx.dev/errticket"
	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/mapper"
	"github.com/gin-gonic/gin"
)

// mapperKey holds the request's apis.Mapper in the gin context.
const mapperKey = "errticket.mapper"

// Middleware renders the last error recorded with c.Error as a ticket once
// the handler chain returns, unless a response was already written. A nil
// mapper means mapper.Default.
func Middleware(m apis.Mapper) gin.HandlerFunc {
	if m == nil {
		m = mapper.Default
	}
	return func(c *gin.Context) {
		c.Set(mapperKey, m)
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		render(c, m, errticket.Propagate(c.Errors.Last().Err))
	}
}

// Abort records err on the context, writes it as a ticket and stops the
// handler chain. It returns the ticket that was written.
func Abort(c *gin.Context, err error) *errticket.Ticket {
	t := errticket.Propagate(err)
	if t == nil {
		c.Abort()
		return nil
	}
	_ = c.Error(t)
	render(c, mapperOf(c), t)
	c.Abort()
	return t
}

func render(c *gin.Context, m apis.Mapper, t *errticket.Ticket) {
	body, err := t.MarshalJSON()
	if err != nil {
		body, _ = errticket.New().WithID(t.ID()).WithCode(t.Code()).WithDetails(t.Details()).Build().MarshalJSON()
	}
	for k, vs := range t.Headers() {
		for _, v := range vs {
			c.Writer.Header().Add(k, v)
		}
	}
	c.Data(m.HTTPStatus(t), t.ContentType(), body)
}

func mapperOf(c *gin.Context) apis.Mapper {
	if v, ok := c.Get(mapperKey); ok {
		if m, ok := v.(apis.Mapper); ok {
			return m
		}
	}
	return mapper.Default
}
