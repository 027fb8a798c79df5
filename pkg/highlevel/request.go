package highlevel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
)

// Params are query parameters. Slice values repeat the key
type Params map[string]any

// Request describes one call to the HighLevel API
type Request struct {
	Method string // Defaults to GET
	Path   string // Relative to the base url, e.g. "/contacts/"
	Params Params // Encoded as the query string
	Data   any    // Encoded as the JSON body when non-nil
}

// MakeRequest performs req and decodes the JSON response into out. A nil out
// discards the body
func (c *Client) MakeRequest(ctx context.Context, req *Request, out any) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	// Create request body if data is provided
	var body io.Reader
	if req.Data != nil {
		b, err := json.Marshal(req.Data)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + req.Path
	if query := encodeParams(req.Params); query != "" {
		u += "?" + query
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Version", c.version)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	log.Printf("[HIGHLEVEL]: %s %s -> %d", method, req.Path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return &APIError{Method: method, Path: req.Path, StatusCode: resp.StatusCode, Body: string(b)}
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// encodeParams renders params as a sorted query string, skipping nil values
func encodeParams(params Params) string {
	q := url.Values{}
	for key, value := range params {
		switch v := value.(type) {
		case nil:
		case []string:
			for _, s := range v {
				q.Add(key, s)
			}
		case []any:
			for _, item := range v {
				q.Add(key, formatParam(item))
			}
		default:
			q.Set(key, formatParam(v))
		}
	}
	return q.Encode()
}

func formatParam(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}
