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
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"dirpx.dev/errticket/apis"
)

// ErrDuplicateGroup is returned when a second provider claims a group.
var ErrDuplicateGroup = errors.New("provider: duplicate group")

// Loader returns the providers a registry is filled with on (re)load.
type Loader func() []apis.Provider

const (
	warnCacheSize = 256
	warnTTL       = time.Minute
)

// Registry maps lowercased group names to providers.
//
// The zero value is an empty registry without a loader, warning at the
// default rate. Registry is safe for concurrent use.
type Registry struct {
	once      sync.Once
	mu        sync.RWMutex
	providers map[string]apis.Provider
	order     []string

	loader Loader
	loads  singleflight.Group
	logger *slog.Logger

	// warned deduplicates "not found" warnings per group; limiter caps the
	// overall warning rate when many distinct groups miss.
	warned  *expirable.LRU[string, struct{}]
	limiter *rate.Limiter
}

// Option configures a Registry.
type Option func(*Registry)

// WithLoader sets the function used to fill the registry when it is empty.
func WithLoader(l Loader) Option {
	return func(r *Registry) { r.loader = l }
}

// WithLogger sets the logger used for lookup warnings. The default is
// whatever slog.Default returns at the time of logging.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithWarnRate limits lookup warnings to at most n per interval across all
// groups. A non-positive n disables warnings.
func WithWarnRate(n int, every time.Duration) Option {
	return func(r *Registry) {
		if n <= 0 {
			r.limiter = rate.NewLimiter(0, 0)
			return
		}
		r.limiter = rate.NewLimiter(rate.Every(every/time.Duration(n)), n)
	}
}

// New returns an empty registry. Without WithLoader it loads nothing and
// only serves providers added with Register.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	r.setup()
	return r
}

// setup fills whatever New or the options left unset.
func (r *Registry) setup() {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.providers == nil {
			r.providers = make(map[string]apis.Provider)
		}
		if r.warned == nil {
			r.warned = expirable.NewLRU[string, struct{}](warnCacheSize, nil, warnTTL)
		}
		if r.limiter == nil {
			r.limiter = rate.NewLimiter(rate.Every(time.Second), 10)
		}
	})
}

func key(group string) string {
	return strings.ToLower(strings.TrimSpace(group))
}

// Register adds providers. It fails on the first provider whose group is
// already owned; providers before it stay registered.
func (r *Registry) Register(ps ...apis.Provider) error {
	r.setup()
	r.ensureLoaded()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range ps {
		if p == nil {
			continue
		}
		k := key(p.Group())
		if _, dup := r.providers[k]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateGroup, p.Group())
		}
		r.providers[k] = p
		r.order = append(r.order, k)
	}
	return nil
}

// Get returns the provider owning group, matched case-insensitively. Get
// never panics; a miss is reported through the boolean and logged at warn
// level.
//
// Miss warnings are deduplicated and rate-limited: a group that already
// missed is not logged again for one minute (or until Unload), and across
// all groups at most the WithWarnRate budget (10 per second by default) is
// logged. Warnings beyond that are dropped silently.
func (r *Registry) Get(group string) (apis.Provider, bool) {
	r.setup()
	r.ensureLoaded()

	k := key(group)
	r.mu.RLock()
	p, ok := r.providers[k]
	r.mu.RUnlock()
	if !ok {
		r.warnMissing(group)
	}
	return p, ok
}

// All returns a snapshot of the registered providers in registration order.
func (r *Registry) All() []apis.Provider {
	r.setup()
	r.ensureLoaded()

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]apis.Provider, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.providers[k])
	}
	return out
}

// Unload drops every provider. The next read reloads from the loader.
func (r *Registry) Unload() {
	r.setup()
	r.mu.Lock()
	r.providers = make(map[string]apis.Provider)
	r.order = nil
	r.mu.Unlock()
	r.warned.Purge()
}

func (r *Registry) empty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers) == 0
}

func (r *Registry) ensureLoaded() {
	if r.loader == nil || !r.empty() {
		return
	}
	_, _, _ = r.loads.Do("load", func() (any, error) {
		if !r.empty() {
			return nil, nil
		}
		r.load()
		return nil, nil
	})
}

// load builds the full table off-lock and publishes it in one step.
func (r *Registry) load() {
	providers := make(map[string]apis.Provider)
	var order []string
	for _, p := range r.loader() {
		if p == nil {
			continue
		}
		k := key(p.Group())
		if _, dup := providers[k]; dup {
			r.log().Warn("duplicate error code provider ignored",
				slog.String("group", p.Group()),
				slog.String("type", fmt.Sprintf("%T", p)))
			continue
		}
		providers[k] = p
		order = append(order, k)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.providers) != 0 {
		return
	}
	r.providers = providers
	r.order = order
	r.log().Debug("error code providers loaded", slog.Int("count", len(order)))
}

func (r *Registry) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return slog.Default()
}

func (r *Registry) warnMissing(group string) {
	k := key(group)
	if r.warned.Contains(k) {
		return
	}
	if !r.limiter.Allow() {
		return
	}
	r.warned.Add(k, struct{}{})
	r.log().Warn("error code provider not found", slog.String("group", group))
}
