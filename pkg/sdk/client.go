package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ethanbaker/highlevel/pkg/action"
)

// Client wraps calls to the action runner API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// ListActions returns every registered action definition
func (c *Client) ListActions(ctx context.Context) ([]action.Definition, error) {
	var out ApiResponse[ActionsResponse]
	if err := c.doJSON(ctx, http.MethodGet, "/api/actions", nil, &out); err != nil {
		return nil, err
	}

	return out.Data.Actions, nil
}

// ResolveProps returns the schema of an action for values, with option lists loaded
func (c *Client) ResolveProps(ctx context.Context, key string, values map[string]any) ([]action.Prop, error) {
	path := fmt.Sprintf("/api/actions/%s/props", url.PathEscape(key))

	var out ApiResponse[PropsResponse]
	if err := c.doJSON(ctx, http.MethodPost, path, &ValuesRequest{Values: values}, &out); err != nil {
		return nil, err
	}

	return out.Data.Props, nil
}

// PropOptions returns the option list of a single prop
func (c *Client) PropOptions(ctx context.Context, key, prop string, values map[string]any) ([]action.Option, error) {
	path := fmt.Sprintf("/api/actions/%s/props/%s/options", url.PathEscape(key), url.PathEscape(prop))

	var out ApiResponse[OptionsResponse]
	if err := c.doJSON(ctx, http.MethodPost, path, &ValuesRequest{Values: values}, &out); err != nil {
		return nil, err
	}

	return out.Data.Options, nil
}

// RunAction invokes an action with values
func (c *Client) RunAction(ctx context.Context, key string, values map[string]any) (*RunResponse, error) {
	path := fmt.Sprintf("/api/actions/%s/run", url.PathEscape(key))

	var out ApiResponse[RunResponse]
	if err := c.doJSON(ctx, http.MethodPost, path, &ValuesRequest{Values: values}, &out); err != nil {
		return nil, err
	}

	return &out.Data, nil
}

// doJSON is a helper to perform JSON requests to the runner
func (c *Client) doJSON(ctx context.Context, method, path string, in any, out any) error {
	// Create request body if input is provided
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("[RUNNER]: '%s %s' failed: %d: %s", method, path, resp.StatusCode, string(b))
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
