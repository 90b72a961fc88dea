package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/core/kb"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/metrics"
	"github.com/MuhamadAgungGumelar/support-assistant-be/internal/shared/utils"
)

const (
	DefaultBaseURL  = "http://localhost:5000/api"
	DefaultTimeout  = 4 * time.Second
	DefaultCacheTTL = 60 * time.Second

	plansPath       = "/plans?active=true"
	customPriceText = "Contact for Quote"
	unnamedPlan     = "Unnamed Plan"
	maxFeatures     = 3
	maxBodyBytes    = 1 << 20
)

// ErrUpstreamUnavailable wraps every failure of the remote plan source:
// network errors, timeouts, non-2xx responses and malformed bodies.
var ErrUpstreamUnavailable = errors.New("remote plan source unavailable")

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Source fetches live pricing plans. No authentication is sent.
type Source struct {
	endpoint string
	timeout  time.Duration
	ttl      time.Duration
	http     *http.Client
	cache    Cache
	metrics  *metrics.Metrics
	group    singleflight.Group
}

// NewSource creates a plan source. A nil cache disables caching.
func NewSource(cfg Config, cache Cache, m *metrics.Metrics) *Source {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &Source{
		endpoint: base + plansPath,
		timeout:  timeout,
		ttl:      ttl,
		http:     &http.Client{Timeout: timeout},
		cache:    cache,
		metrics:  m,
	}
}

// Endpoint is also the cache key
func (s *Source) Endpoint() string {
	return s.endpoint
}

// ActivePlans returns cached plans while fresh, otherwise fetches them.
// An empty slice with a nil error means the source answered with no plans.
func (s *Source) ActivePlans(ctx context.Context) ([]kb.PricingPlan, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, s.endpoint)
		if err != nil {
			utils.LogWarn("⚠️ Plan cache read failed", map[string]interface{}{
				"cache": s.cache.Name(),
				"error": err.Error(),
			})
		}
		if ok {
			s.metrics.ObservePlanFetch(metrics.PlanFetchCacheHit, 0)
			return cached, nil
		}
	}
	return s.Refresh(ctx)
}

// Refresh always goes to the network and stores a non-empty result.
// Concurrent calls share one request.
func (s *Source) Refresh(ctx context.Context) ([]kb.PricingPlan, error) {
	v, err, _ := s.group.Do(s.endpoint, func() (interface{}, error) {
		start := time.Now()
		plans, err := s.fetch(ctx)
		elapsed := time.Since(start).Seconds()

		if err != nil {
			s.metrics.ObservePlanFetch(metrics.PlanFetchFailure, elapsed)
			utils.LogWarn("⚠️ Remote plans unavailable, falling back to static pricing", map[string]interface{}{
				"url":   s.endpoint,
				"error": err.Error(),
			})
			return nil, err
		}
		if len(plans) == 0 {
			s.metrics.ObservePlanFetch(metrics.PlanFetchEmpty, elapsed)
			return plans, nil
		}

		s.metrics.ObservePlanFetch(metrics.PlanFetchSuccess, elapsed)
		if s.cache != nil {
			if err := s.cache.Set(ctx, s.endpoint, plans, s.ttl); err != nil {
				utils.LogWarn("⚠️ Plan cache write failed", map[string]interface{}{
					"cache": s.cache.Name(),
					"error": err.Error(),
				})
			}
		}
		return plans, nil
	})
	if err != nil {
		return nil, err
	}
	return clonePlans(v.([]kb.PricingPlan)), nil
}

func (s *Source) fetch(ctx context.Context) ([]kb.PricingPlan, error) {
	// detached from the caller: every singleflight waiter shares this request
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrUpstreamUnavailable, err)
	}

	return ParsePlans(body)
}

// ParsePlans decodes `{"data": {"plans": [...]}}` without trusting any field
func ParsePlans(body []byte) ([]kb.PricingPlan, error) {
	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed json: %v", ErrUpstreamUnavailable, err)
	}

	data, ok := envelope["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: missing data object", ErrUpstreamUnavailable)
	}
	rawPlans, ok := data["plans"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: missing data.plans array", ErrUpstreamUnavailable)
	}

	plans := make([]kb.PricingPlan, 0, len(rawPlans))
	for _, raw := range rawPlans {
		fields, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		plans = append(plans, normalizePlan(fields))
	}
	return plans, nil
}

func normalizePlan(fields map[string]interface{}) kb.PricingPlan {
	plan := kb.PricingPlan{
		Name:     unnamedPlan,
		Features: []string{},
	}

	if name, ok := fields["name"].(string); ok && strings.TrimSpace(name) != "" {
		plan.Name = name
	}

	if truthy(fields["isCustom"]) {
		plan.Price = customPriceText
	} else {
		amount := "0"
		for _, key := range []string{"monthlyPrice", "price"} {
			if v, ok := amountString(fields[key]); ok {
				amount = v
				break
			}
		}
		plan.Price = "$" + amount + "/mo"
	}

	if features, ok := fields["features"].([]interface{}); ok {
		if len(features) > maxFeatures {
			features = features[:maxFeatures]
		}
		for _, f := range features {
			if s, ok := f.(string); ok {
				plan.Features = append(plan.Features, s)
			}
		}
	}

	return plan
}

// amountString accepts JSON numbers and strings, empty ones included.
// Null and any other type count as absent.
func amountString(v interface{}) (string, bool) {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case string:
		return val, true
	}
	return "", false
}

// truthy is false only for null, false, 0 and ""
func truthy(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return true
	}
}
