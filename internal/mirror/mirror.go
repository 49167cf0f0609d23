package mirror

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// UserSettingLabel is the label attached to an explicitly configured mirror.
const UserSettingLabel = "User setting"

// DefaultLookupTimeout bounds each geolocation request.
const DefaultLookupTimeout = 3 * time.Second

// Selector resolves the preferred package index. It holds its own session
// cache so tests can construct independent instances with fake lookups
// instead of sharing module-level state.
type Selector struct {
	override   string // explicit index URL; empty or "auto" enables geolocation
	httpClient *http.Client
	endpoints  []string
	rules      []Rule
	timeout    time.Duration

	// Session cache. cached distinguishes "not yet resolved" from a
	// resolved nil ("no mirror"). Safe without a lock: all engine
	// operations are sequential.
	cached     bool
	cachedInfo *Info
}

// Option configures a Selector.
type Option func(*Selector)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(s *Selector) {
		s.httpClient = c
	}
}

// WithEndpoints replaces the geolocation lookup endpoints.
func WithEndpoints(endpoints []string) Option {
	return func(s *Selector) {
		s.endpoints = endpoints
	}
}

// WithRules replaces the country-to-mirror rule table.
func WithRules(rules []Rule) Option {
	return func(s *Selector) {
		s.rules = rules
	}
}

// WithLookupTimeout sets the per-endpoint request timeout.
func WithLookupTimeout(d time.Duration) Option {
	return func(s *Selector) {
		s.timeout = d
	}
}

// New creates a Selector. override is the user's index-url setting; any value
// other than "" and "auto" is returned verbatim by Preferred.
func New(override string, opts ...Option) *Selector {
	s := &Selector{
		override:   override,
		httpClient: http.DefaultClient,
		endpoints:  DefaultEndpoints,
		rules:      DefaultRules,
		timeout:    DefaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Preferred returns the mirror to use, or nil for the default index.
// Resolution order: explicit user setting, session cache, geolocation lookup.
// Network failures never propagate; total lookup failure resolves to nil.
func (s *Selector) Preferred(ctx context.Context) *Info {
	if s.override != "" && s.override != "auto" {
		return &Info{URL: s.override, Label: UserSettingLabel}
	}

	if s.cached {
		return s.cachedInfo
	}

	var resolved *Info
	if country := s.lookupCountry(ctx); country != "" {
		for i := range s.rules {
			if s.rules[i].matches(country) {
				m := s.rules[i].Mirror
				resolved = &m
				break
			}
		}
	}

	s.cachedInfo = resolved
	s.cached = true
	return resolved
}

// ClearCache drops the session cache so the next Preferred call re-resolves.
func (s *Selector) ClearCache() {
	s.cached = false
	s.cachedInfo = nil
}

// IndexArgs returns the pip index override arguments for the preferred
// mirror, or nil when the default index is in effect.
func (s *Selector) IndexArgs(ctx context.Context) []string {
	m := s.Preferred(ctx)
	if m == nil {
		return nil
	}
	return []string{"--index-url", m.URL}
}

// geoPayload covers the country field spellings of the supported endpoints.
type geoPayload struct {
	Country      string `json:"country"`
	CountryCode  string `json:"countryCode"`
	CountryCode2 string `json:"country_code"`
}

func (p *geoPayload) code() string {
	for _, c := range []string{p.Country, p.CountryCode, p.CountryCode2} {
		if len(c) == 2 {
			return c
		}
	}
	return ""
}

// lookupCountry tries each endpoint in turn and returns the first two-letter
// country code, or "" when every endpoint fails.
func (s *Selector) lookupCountry(ctx context.Context) string {
	for _, endpoint := range s.endpoints {
		if code := s.queryEndpoint(ctx, endpoint); code != "" {
			return code
		}
	}
	return ""
}

func (s *Selector) queryEndpoint(ctx context.Context, endpoint string) string {
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return ""
	}

	var payload geoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.code()
}
