package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"linkpulse/internal/config"
	"linkpulse/internal/model"

	"github.com/goccy/go-json"
)

const userAgent = "URL-Shortener/1.0"

var (
	// ErrRejected means the provider answered but could not place the address
	ErrRejected = errors.New("geo: provider rejected address")
	// ErrRateLimited means the local quota for the provider is spent
	ErrRateLimited = errors.New("geo: provider rate limited")
	// ErrProviderStatus means the provider answered with a non-200 status
	ErrProviderStatus = errors.New("geo: unexpected provider status")
)

// Provider is one geolocation service in the resolver chain
type Provider interface {
	Name() string
	Timeout() time.Duration
	NewRequest(ctx context.Context, ip string) (*http.Request, error)
	Parse(body []byte) (*model.GeoLookupResult, error)
}

// NewProvider builds the provider described by cfg
func NewProvider(cfg config.ProviderConfig) (Provider, error) {
	base := baseProvider{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		timeout: cfg.Timeout,
	}
	switch cfg.Kind {
	case config.ProviderIPAPI:
		base.name = cfg.Kind
		if base.baseURL == "" {
			base.baseURL = "http://ip-api.com"
		}
		return &ipAPIProvider{baseProvider: base}, nil
	case config.ProviderIPInfo:
		base.name = cfg.Kind
		if base.baseURL == "" {
			base.baseURL = "https://ipinfo.io"
		}
		return &ipInfoProvider{baseProvider: base, token: cfg.Token}, nil
	case config.ProviderIPAPICo:
		base.name = cfg.Kind
		if base.baseURL == "" {
			base.baseURL = "https://ipapi.co"
		}
		return &ipapiCoProvider{baseProvider: base}, nil
	default:
		return nil, fmt.Errorf("unknown geo provider kind %q", cfg.Kind)
	}
}

type baseProvider struct {
	name    string
	baseURL string
	timeout time.Duration
}

func (p baseProvider) Name() string { return p.name }

func (p baseProvider) Timeout() time.Duration {
	if p.timeout <= 0 {
		return 3 * time.Second
	}
	return p.timeout
}

func (p baseProvider) get(ctx context.Context, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// ip-api.com

const ipAPIFields = "status,message,country,countryCode,region,regionName,city,timezone,lat,lon,isp,org"

type ipAPIProvider struct {
	baseProvider
}

type ipAPIResponse struct {
	Status      string   `json:"status"`
	Message     string   `json:"message"`
	Country     string   `json:"country"`
	CountryCode string   `json:"countryCode"`
	RegionName  string   `json:"regionName"`
	City        string   `json:"city"`
	Timezone    string   `json:"timezone"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
	ISP         string   `json:"isp"`
	Org         string   `json:"org"`
}

func (p *ipAPIProvider) NewRequest(ctx context.Context, ip string) (*http.Request, error) {
	return p.get(ctx, fmt.Sprintf("%s/json/%s?fields=%s", p.baseURL, url.PathEscape(ip), ipAPIFields))
}

func (p *ipAPIProvider) Parse(body []byte) (*model.GeoLookupResult, error) {
	var resp ipAPIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode ip-api response: %w", err)
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("%w: ip-api status %q: %s", ErrRejected, resp.Status, resp.Message)
	}
	org := resp.Org
	if org == "" {
		org = resp.ISP
	}
	return &model.GeoLookupResult{
		CountryCode:  optional(resp.CountryCode),
		CountryName:  optional(resp.Country),
		Region:       optional(resp.RegionName),
		City:         optional(resp.City),
		Timezone:     optional(resp.Timezone),
		Latitude:     resp.Lat,
		Longitude:    resp.Lon,
		Organization: optional(org),
	}, nil
}

// ipinfo.io

type ipInfoProvider struct {
	baseProvider
	token string
}

type ipInfoResponse struct {
	Country  string          `json:"country"`
	Region   string          `json:"region"`
	City     string          `json:"city"`
	Timezone string          `json:"timezone"`
	Loc      string          `json:"loc"`
	Org      string          `json:"org"`
	Bogon    bool            `json:"bogon"`
	Error    json.RawMessage `json:"error"`
}

func (p *ipInfoProvider) NewRequest(ctx context.Context, ip string) (*http.Request, error) {
	req, err := p.get(ctx, fmt.Sprintf("%s/%s/json", p.baseURL, url.PathEscape(ip)))
	if err != nil {
		return nil, err
	}
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	return req, nil
}

func (p *ipInfoProvider) Parse(body []byte) (*model.GeoLookupResult, error) {
	var resp ipInfoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode ipinfo response: %w", err)
	}
	if len(resp.Error) > 0 && string(resp.Error) != "null" {
		return nil, fmt.Errorf("%w: ipinfo error %s", ErrRejected, resp.Error)
	}
	if resp.Bogon {
		return nil, fmt.Errorf("%w: ipinfo bogon address", ErrRejected)
	}
	if resp.Country == "" {
		return nil, fmt.Errorf("%w: ipinfo returned no country", ErrRejected)
	}
	lat, lon := parseLoc(resp.Loc)
	return &model.GeoLookupResult{
		CountryCode:  optional(resp.Country),
		CountryName:  optional(CountryName(resp.Country)),
		Region:       optional(resp.Region),
		City:         optional(resp.City),
		Timezone:     optional(resp.Timezone),
		Latitude:     lat,
		Longitude:    lon,
		Organization: optional(resp.Org),
	}, nil
}

// parseLoc splits ipinfo's "lat,lon". Zero or unparsable coordinates are
// treated as absent.
func parseLoc(loc string) (lat, lon *float64) {
	parts := strings.Split(loc, ",")
	if len(parts) != 2 {
		return nil, nil
	}
	return nonZeroFloat(parts[0]), nonZeroFloat(parts[1])
}

func nonZeroFloat(s string) *float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f == 0 {
		return nil
	}
	return &f
}

// ipapi.co

type ipapiCoProvider struct {
	baseProvider
}

type ipapiCoResponse struct {
	Error       bool     `json:"error"`
	Reason      string   `json:"reason"`
	CountryCode string   `json:"country_code"`
	CountryName string   `json:"country_name"`
	Region      string   `json:"region"`
	City        string   `json:"city"`
	Timezone    string   `json:"timezone"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Org         string   `json:"org"`
}

func (p *ipapiCoProvider) NewRequest(ctx context.Context, ip string) (*http.Request, error) {
	return p.get(ctx, fmt.Sprintf("%s/%s/json/", p.baseURL, url.PathEscape(ip)))
}

func (p *ipapiCoProvider) Parse(body []byte) (*model.GeoLookupResult, error) {
	var resp ipapiCoResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode ipapi.co response: %w", err)
	}
	if resp.Error {
		return nil, fmt.Errorf("%w: ipapi.co: %s", ErrRejected, resp.Reason)
	}
	if resp.CountryCode == "" {
		return nil, fmt.Errorf("%w: ipapi.co returned no country", ErrRejected)
	}
	return &model.GeoLookupResult{
		CountryCode:  optional(resp.CountryCode),
		CountryName:  optional(resp.CountryName),
		Region:       optional(resp.Region),
		City:         optional(resp.City),
		Timezone:     optional(resp.Timezone),
		Latitude:     resp.Latitude,
		Longitude:    resp.Longitude,
		Organization: optional(resp.Org),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
