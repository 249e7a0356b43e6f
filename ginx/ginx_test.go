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

package ginx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dirpx.dev/errticket"
	"dirpx.dev/errticket/code"
	"dirpx.dev/errticket/mapper"
	"dirpx.dev/errticket/oauth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func body(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestMiddleware_RendersLastError(t *testing.T) {
	r := gin.New()
	r.Use(Middleware(nil))
	r.GET("/x", func(c *gin.Context) {
		_ = c.Error(errors.New("first"))
		_ = c.Error(errticket.E(code.AlreadyExist, "user exists"))
	})

	rec := serve(r, "/x")
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "AlreadyExist", body(t, rec)["code"])
}

func TestMiddleware_SkipsWrittenResponses(t *testing.T) {
	r := gin.New()
	r.Use(Middleware(nil))
	r.GET("/x", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		c.String(http.StatusOK, "fine")
	})

	rec := serve(r, "/x")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "fine", rec.Body.String())
}

func TestAbort_UsesMiddlewareMapper(t *testing.T) {
	r := gin.New()
	r.Use(Middleware(mapper.MustNew(mapper.WithHTTPPrefix("oauth", http.StatusBadRequest))))
	reached := false
	r.GET("/x", func(c *gin.Context) {
		Abort(c, errticket.E(oauth.InvalidToken, "expired"))
	}, func(c *gin.Context) { reached = true })

	rec := serve(r, "/x")
	require.False(t, reached)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, errticket.ContentTypeJSON, rec.Header().Get("Content-Type"))
	require.Equal(t, "invalid_token", body(t, rec)["error"])
	require.NotEmpty(t, rec.Header().Get(errticket.HeaderWWWAuthenticate))
}

func TestAbort_WithoutMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		Abort(c, errors.New("plain"))
	})

	rec := serve(r, "/x")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "GeneralError", body(t, rec)["code"])
}
