// Package provider distributes the active theme to subscribers and owns the
// dark-mode flag.
package provider

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/themekit/internal/appearance"
	"github.com/opencode-ai/themekit/internal/logging"
	"github.com/opencode-ai/themekit/internal/styles"
	"github.com/opencode-ai/themekit/internal/theme"
	"github.com/opencode-ai/themekit/internal/tokens"
)

// Source records what caused a theme change.
type Source string

const (
	SourceToggle     Source = "toggle"
	SourceSet        Source = "set"
	SourceAppearance Source = "appearance"
)

// Change is delivered to subscribers after the active theme changes.
type Change struct {
	Theme      *theme.Theme
	IsDarkMode bool
	Version    uint64
	Source     Source
}

// Subscription is a handle returned by Subscribe.
type Subscription struct {
	ID       string
	provider *Provider
}

// Unsubscribe stops delivery to the subscription. It is safe to call more
// than once.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.provider == nil {
		return
	}
	s.provider.unsubscribe(s.ID)
}

type subscriber struct {
	id string
	fn func(Change)
}

// Provider holds the active theme for one token set.
//
// Mutations hold mu until every subscriber has been notified, so
// subscribers observe changes one at a time and in order. Reads only take
// the snapshot lock and may be called from subscribers. Subscribers must
// not mutate the provider.
type Provider struct {
	mu sync.Mutex

	snapshot sync.RWMutex
	tokens   *tokens.DesignTokens
	light    *theme.Theme
	dark     *theme.Theme
	isDark   bool
	version  uint64

	subsMu      sync.Mutex
	subscribers []subscriber

	mapper *styles.Mapper
	logger zerolog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the provider logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithMapper sets the style mapper used by Style.
func WithMapper(mapper *styles.Mapper) Option {
	return func(p *Provider) {
		p.mapper = mapper
	}
}

// New resolves both modes of t and seeds the dark-mode flag from the
// appearance signal. Unspecified appearance starts in light mode.
func New(t *tokens.DesignTokens, a appearance.Appearance, opts ...Option) (*Provider, error) {
	light, err := theme.Resolve(t, false)
	if err != nil {
		return nil, err
	}
	dark, err := theme.Resolve(t, true)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		tokens: t,
		light:  light,
		dark:   dark,
		isDark: a.IsDark(),
		logger: logging.Component("provider"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.mapper == nil {
		mapper, err := styles.NewMapper(styles.DefaultCacheSize)
		if err != nil {
			return nil, err
		}
		p.mapper = mapper
	}

	p.logger.Debug().
		Str("tokens", t.Name).
		Str("appearance", a.String()).
		Bool("dark", p.isDark).
		Msg("theme provider ready")
	return p, nil
}

// Theme returns the active theme. It is never nil.
func (p *Provider) Theme() *theme.Theme {
	p.snapshot.RLock()
	defer p.snapshot.RUnlock()
	return p.current()
}

func (p *Provider) current() *theme.Theme {
	if p.isDark {
		return p.dark
	}
	return p.light
}

// IsDarkMode reports the active mode.
func (p *Provider) IsDarkMode() bool {
	p.snapshot.RLock()
	defer p.snapshot.RUnlock()
	return p.isDark
}

// Version increases by one for every applied change.
func (p *Provider) Version() uint64 {
	p.snapshot.RLock()
	defer p.snapshot.RUnlock()
	return p.version
}

// Snapshot returns the active theme together with the version it was
// applied at.
func (p *Provider) Snapshot() (*theme.Theme, uint64) {
	p.snapshot.RLock()
	defer p.snapshot.RUnlock()
	return p.current(), p.version
}

// Tokens returns the token set the provider was built from.
func (p *Provider) Tokens() *tokens.DesignTokens {
	return p.tokens
}

// Style resolves a component style against the active theme.
func (p *Provider) Style(req styles.Request) (styles.ResolvedStyle, error) {
	return p.mapper.Resolve(p.Theme(), req)
}

// StyleStats reports the style cache counters.
func (p *Provider) StyleStats() styles.MapperStats {
	return p.mapper.Stats()
}

// ToggleDarkMode flips the mode and notifies subscribers before returning.
func (p *Provider) ToggleDarkMode() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(!p.IsDarkMode(), SourceToggle)
}

// SetDarkMode sets the mode. Setting the current mode does nothing.
func (p *Provider) SetDarkMode(dark bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if dark == p.IsDarkMode() {
		return
	}
	p.apply(dark, SourceSet)
}

// SetAppearance follows a new platform appearance. Unspecified is ignored
// once the provider is running.
func (p *Provider) SetAppearance(a appearance.Appearance) {
	if a == appearance.Unspecified {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if a.IsDark() == p.IsDarkMode() {
		return
	}
	p.apply(a.IsDark(), SourceAppearance)
}

// apply must be called with mu held.
func (p *Provider) apply(dark bool, source Source) {
	p.snapshot.Lock()
	p.isDark = dark
	p.version++
	change := Change{
		Theme:      p.current(),
		IsDarkMode: dark,
		Version:    p.version,
		Source:     source,
	}
	p.snapshot.Unlock()

	p.logger.Debug().
		Bool("dark", dark).
		Uint64("version", change.Version).
		Str("source", string(source)).
		Msg("theme changed")

	for _, sub := range p.subscriberSnapshot() {
		sub.fn(change)
	}
}

// Subscribe registers fn for every subsequent change. Subscribers are
// called synchronously in subscription order.
func (p *Provider) Subscribe(fn func(Change)) *Subscription {
	id := uuid.NewString()
	p.subsMu.Lock()
	p.subscribers = append(p.subscribers, subscriber{id: id, fn: fn})
	p.subsMu.Unlock()
	return &Subscription{ID: id, provider: p}
}

func (p *Provider) unsubscribe(id string) {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()
	for i, sub := range p.subscribers {
		if sub.id == id {
			p.subscribers = append(p.subscribers[:i:i], p.subscribers[i+1:]...)
			return
		}
	}
}

func (p *Provider) subscriberSnapshot() []subscriber {
	p.subsMu.Lock()
	defer p.subsMu.Unlock()
	out := make([]subscriber, len(p.subscribers))
	copy(out, p.subscribers)
	return out
}
