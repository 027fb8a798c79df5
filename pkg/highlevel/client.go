package highlevel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethanbaker/highlevel/pkg/utils"
	"golang.org/x/oauth2"
)

// Endpoint is the HighLevel OAuth endpoint for marketplace apps
var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://marketplace.gohighlevel.com/oauth/chooselocation",
	TokenURL:  "https://services.leadconnectorhq.com/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

// Client performs authenticated calls against the HighLevel API for a single location
type Client struct {
	baseURL    string
	version    string
	locationID string
	httpClient *http.Client
}

// Options configures a Client
type Options struct {
	BaseURL    string
	Version    string
	LocationID string
	Timeout    time.Duration

	// TokenSource supplies bearer tokens. Required
	TokenSource oauth2.TokenSource
}

// NewClient creates a new HighLevel client
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if opts.LocationID == "" {
		return nil, errors.New("location id is required")
	}
	if opts.TokenSource == nil {
		return nil, errors.New("token source is required")
	}

	if opts.BaseURL == "" {
		opts.BaseURL = utils.DefaultBaseURL
	}
	if opts.Version == "" {
		opts.Version = utils.DefaultAPIVersion
	}
	if opts.Timeout == 0 {
		opts.Timeout = utils.DefaultTimeoutSeconds * time.Second
	}

	httpClient := oauth2.NewClient(ctx, opts.TokenSource)
	httpClient.Timeout = opts.Timeout

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		version:    opts.Version,
		locationID: opts.LocationID,
		httpClient: httpClient,
	}, nil
}

// NewClientFromConfig builds a client from configuration. A refresh token with
// client credentials takes precedence over a static access token
func NewClientFromConfig(ctx context.Context, cfg *utils.Config) (*Client, error) {
	locationID, err := cfg.Require(utils.KeyLocationID)
	if err != nil {
		return nil, err
	}

	ts, err := tokenSourceFromConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewClient(ctx, Options{
		BaseURL:     cfg.GetWithDefault(utils.KeyBaseURL, utils.DefaultBaseURL),
		Version:     cfg.GetWithDefault(utils.KeyAPIVersion, utils.DefaultAPIVersion),
		LocationID:  locationID,
		Timeout:     cfg.Timeout(),
		TokenSource: ts,
	})
}

// tokenSourceFromConfig picks the OAuth refresh flow when configured, otherwise a
// static token. A token saved in the token file wins over the configured
// refresh token since HighLevel rotates refresh tokens on every refresh
func tokenSourceFromConfig(ctx context.Context, cfg *utils.Config) (oauth2.TokenSource, error) {
	tokenPath := cfg.Get(utils.KeyTokenFile)

	refreshToken := cfg.Get(utils.KeyRefreshToken)
	var initial *oauth2.Token
	if tokenPath != "" {
		saved, err := loadToken(tokenPath)
		if err != nil {
			return nil, err
		}
		if saved != nil && saved.RefreshToken != "" {
			initial = saved
		}
	}
	if initial == nil && refreshToken != "" {
		initial = &oauth2.Token{RefreshToken: refreshToken}
	}

	if initial != nil {
		clientID, err := cfg.Require(utils.KeyClientID)
		if err != nil {
			return nil, err
		}
		clientSecret, err := cfg.Require(utils.KeyClientSecret)
		if err != nil {
			return nil, err
		}

		conf := &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     Endpoint,
		}
		ts := conf.TokenSource(ctx, initial)
		if tokenPath == "" {
			return ts, nil
		}
		return &tokenSavingSource{source: ts, tokenPath: tokenPath, lastToken: initial}, nil
	}

	accessToken := cfg.Get(utils.KeyAccessToken)
	if accessToken == "" {
		return nil, fmt.Errorf("%s or %s not set in environment", utils.KeyAccessToken, utils.KeyRefreshToken)
	}

	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}), nil
}

// GetLocationID returns the location every request is scoped to
func (c *Client) GetLocationID() string {
	return c.locationID
}

// APIError is returned for non-2xx responses from HighLevel
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[HIGHLEVEL]: '%s %s' failed: %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
