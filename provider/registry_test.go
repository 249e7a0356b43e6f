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

package provider

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dirpx.dev/errticket/apis"
	"dirpx.dev/errticket/code"
	"dirpx.dev/errticket/oauth"
)

type billingCode string

func (c billingCode) Group() string   { return "Billing" }
func (c billingCode) StatusCode() int { return 402 }
func (c billingCode) String() string  { return string(c) }

type billing struct{ group string }

func (b billing) Group() string {
	if b.group != "" {
		return b.group
	}
	return "Billing"
}

func (billing) ValueOf(name string) (apis.ErrorCode, bool) {
	if name == "PaymentRequired" {
		return billingCode(name), true
	}
	return nil, false
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRegistry_CaseInsensitiveGet(t *testing.T) {
	r := New(WithLoader(func() []apis.Provider { return []apis.Provider{billing{}} }))

	for _, g := range []string{"billing", "BILLING", " Billing "} {
		p, ok := r.Get(g)
		require.True(t, ok, g)
		require.Equal(t, "Billing", p.Group())
	}
}

func TestRegistry_DuplicateGroup(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(billing{}))
	err := r.Register(billing{group: "BILLING"})
	require.ErrorIs(t, err, ErrDuplicateGroup)
	require.Len(t, r.All(), 1)
}

func TestRegistry_LoadDropsDuplicates(t *testing.T) {
	var buf bytes.Buffer
	r := New(
		WithLogger(newLogger(&buf)),
		WithLoader(func() []apis.Provider {
			return []apis.Provider{billing{}, billing{group: "billing"}, nil}
		}),
	)
	require.Len(t, r.All(), 1)
	require.Contains(t, buf.String(), "duplicate error code provider ignored")
}

func TestRegistry_LazyReloadAfterUnload(t *testing.T) {
	var calls atomic.Int32
	r := New(WithLoader(func() []apis.Provider {
		calls.Add(1)
		return Builtin()
	}))

	require.Len(t, r.All(), 2)
	require.Len(t, r.All(), 2)
	require.EqualValues(t, 1, calls.Load())

	r.Unload()
	_, ok := r.Get("oauth")
	require.True(t, ok)
	require.EqualValues(t, 2, calls.Load())
}

func TestRegistry_ConcurrentFirstReadLoadsOnce(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	r := New(WithLoader(func() []apis.Provider {
		calls.Add(1)
		<-release
		return Builtin()
	}))

	var wg sync.WaitGroup
	results := make([]bool, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = r.Get("default")
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, ok := range results {
		require.True(t, ok)
	}
	require.EqualValues(t, 1, calls.Load())
}

func TestRegistry_MissingGroupWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(newLogger(&buf)), WithLoader(Builtin))

	for i := 0; i < 5; i++ {
		p, ok := r.Get("nope")
		require.False(t, ok)
		require.Nil(t, p)
	}
	require.Equal(t, 1, strings.Count(buf.String(), "error code provider not found"))
}

func TestRegistry_UnloadResetsWarnings(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(newLogger(&buf)), WithLoader(Builtin))

	r.Get("nope")
	r.Unload()
	r.Get("nope")
	require.Equal(t, 2, strings.Count(buf.String(), "error code provider not found"))
}

func TestRegistry_WarnRateDisabled(t *testing.T) {
	var buf bytes.Buffer
	r := New(WithLogger(newLogger(&buf)), WithWarnRate(0, time.Second))
	_, ok := r.Get("nope")
	require.False(t, ok)
	require.NotContains(t, buf.String(), "not found")
}

func TestDefault_Builtin(t *testing.T) {
	p, ok := Get("DEFAULT")
	require.True(t, ok)
	c, ok := p.ValueOf("NotFound")
	require.True(t, ok)
	require.Equal(t, code.NotFound, c)

	p, ok = Get("oauth")
	require.True(t, ok)
	c, ok = p.ValueOf("invalid_grant")
	require.True(t, ok)
	require.Equal(t, oauth.InvalidGrant, c)
}

func TestRegistry_ZeroValue(t *testing.T) {
	var r Registry

	_, ok := r.Get("billing")
	require.False(t, ok)
	require.Empty(t, r.All())

	require.NoError(t, r.Register(billing{}))
	p, ok := r.Get("billing")
	require.True(t, ok)
	require.Equal(t, "Billing", p.Group())

	r.Unload()
	require.Empty(t, r.All())
}
