// SPDX-License-Identifier: MIT
package poller

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thatcatcamp/obskit/internal/overlays"
)

// Interval bounds in seconds.
const (
	MinInterval     = overlays.MinPollRate
	MaxInterval     = overlays.MaxPollRate
	DefaultInterval = overlays.DefaultPollRate
)

// DefaultCustomPath is read from custom endpoints when no path is given.
const DefaultCustomPath = "value"

// Service describes how to read a count from one public API.
type Service struct {
	Name string
	// URL builds the request URL from the user id and API key.
	URL func(userID, apiKey string) string
	// Paths maps metric names to JSON paths. The empty metric is the default.
	Paths map[string]string
	// ClientIDFromKey sends the API key as the Client-ID header.
	ClientIDFromKey bool
}

// Path returns the JSON path for metric, or the default path.
func (s Service) Path(metric string) string {
	if p, ok := s.Paths[strings.ToLower(strings.TrimSpace(metric))]; ok {
		return p
	}
	return s.Paths[""]
}

// Services holds the built-in API integrations by counter service name.
var Services = map[string]Service{
	overlays.ServiceYouTube: {
		Name: "YouTube",
		URL: func(userID, apiKey string) string {
			return "https://www.googleapis.com/youtube/v3/channels?part=statistics&id=" +
				url.QueryEscape(userID) + "&key=" + url.QueryEscape(apiKey)
		},
		Paths: map[string]string{
			"":            "items.0.statistics.subscriberCount",
			"subscribers": "items.0.statistics.subscriberCount",
			"views":       "items.0.statistics.viewCount",
			"videos":      "items.0.statistics.videoCount",
		},
	},
	overlays.ServiceTwitch: {
		Name: "Twitch",
		URL: func(userID, _ string) string {
			return "https://api.twitch.tv/helix/channels/followers?broadcaster_id=" + url.QueryEscape(userID)
		},
		Paths: map[string]string{
			"":          "total",
			"followers": "total",
		},
		ClientIDFromKey: true,
	},
	overlays.ServiceGitHub: {
		Name: "GitHub",
		URL: func(userID, _ string) string {
			return "https://api.github.com/users/" + url.PathEscape(userID)
		},
		Paths: map[string]string{
			"":          "followers",
			"followers": "followers",
			"following": "following",
			"repos":     "public_repos",
			"gists":     "public_gists",
		},
	},
}

// Config is everything needed to poll one counter.
type Config struct {
	Service  string
	UserID   string
	APIKey   string
	Metric   string
	URL      string
	Path     string
	Interval time.Duration
}

// ConfigFor builds the poll configuration of a resolved counter.
func ConfigFor(p *overlays.CounterParams) Config {
	cfg := Config{
		Service:  p.Service,
		UserID:   p.UserID,
		APIKey:   p.APIKey,
		Metric:   p.Metric,
		Interval: ClampInterval(p.PollRate),
	}
	if p.Service == overlays.ServicePoll {
		cfg.URL = p.Poll
		cfg.Path = p.PollKey
	}
	return cfg
}

// ClampInterval converts seconds to a poll interval within bounds.
func ClampInterval(seconds float64) time.Duration {
	return time.Duration(overlays.ClampPollRate(seconds) * float64(time.Second))
}

// Key identifies configurations that can share one poller.
func (c Config) Key() string {
	return strings.Join([]string{
		c.Service, c.UserID, c.APIKey, c.Metric, c.URL, c.Path, c.Interval.String(),
	}, "\x00")
}

// Validate reports whether c can be polled at all.
func (c Config) Validate() error {
	if c.Service == overlays.ServicePoll {
		u, err := url.Parse(c.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid poll URL %q", c.URL)
		}
		return nil
	}
	if _, ok := Services[c.Service]; !ok {
		return fmt.Errorf("service %q does not poll", c.Service)
	}
	if c.UserID == "" {
		return fmt.Errorf("%s needs a user id", c.Service)
	}
	return nil
}

// ErrHostNotAllowed is returned by CheckHost for a poll URL the server may
// not fetch.
var ErrHostNotAllowed = errors.New("poll host not allowed")

// CheckHost reports whether the server may fetch a custom poll URL. With an
// allowed list, the host must equal an entry or be a subdomain of one.
// Without one, loopback, private, link-local and unspecified IP literals and
// localhost are refused. Other services always pass.
func (c Config) CheckHost(allowed []string) error {
	if c.Service != overlays.ServicePoll {
		return nil
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid poll URL %q", c.URL)
	}
	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))

	if len(allowed) > 0 {
		for _, a := range allowed {
			a = strings.ToLower(strings.TrimSpace(a))
			if a != "" && (host == a || strings.HasSuffix(host, "."+a)) {
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrHostNotAllowed, host)
	}

	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return fmt.Errorf("%w: %s", ErrHostNotAllowed, host)
	}
	if ip := net.ParseIP(host); ip != nil {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
			ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
			return fmt.Errorf("%w: %s", ErrHostNotAllowed, host)
		}
	}
	return nil
}

// JSONPath returns the path read from the response.
func (c Config) JSONPath() string {
	if c.Service == overlays.ServicePoll {
		if c.Path != "" {
			return c.Path
		}
		return DefaultCustomPath
	}
	if c.Path != "" {
		return c.Path
	}
	return Services[c.Service].Path(c.Metric)
}

// Request builds the HTTP request for one fetch.
func (c Config) Request(ctx context.Context) (*http.Request, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	target := c.URL
	svc, builtin := Services[c.Service]
	if builtin {
		target = svc.URL(c.UserID, c.APIKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if builtin && svc.ClientIDFromKey && c.APIKey != "" {
		req.Header.Set("Client-ID", c.APIKey)
	}
	return req, nil
}
