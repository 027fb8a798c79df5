package highlevel

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ethanbaker/highlevel/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// newTestClient starts server and returns a client pointed at it
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(context.Background(), Options{
		BaseURL:     server.URL,
		LocationID:  "loc-1",
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok", TokenType: "Bearer"}),
	})
	require.NoError(t, err)

	return client
}

func TestNewClient(t *testing.T) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "tok"})

	tests := []struct {
		name      string
		opts      Options
		wantError bool
	}{
		{"valid", Options{LocationID: "loc-1", TokenSource: ts}, false},
		{"missing location", Options{TokenSource: ts}, true},
		{"missing token source", Options{LocationID: "loc-1"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(context.Background(), tt.opts)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "loc-1", client.GetLocationID())
			assert.Equal(t, utils.DefaultBaseURL, client.baseURL)
			assert.Equal(t, utils.DefaultAPIVersion, client.version)
		})
	}
}

func TestNewClientFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		wantError bool
	}{
		{
			name:   "static access token",
			values: map[string]string{utils.KeyLocationID: "loc-1", utils.KeyAccessToken: "tok"},
		},
		{
			name: "refresh token",
			values: map[string]string{
				utils.KeyLocationID:   "loc-1",
				utils.KeyRefreshToken: "refresh",
				utils.KeyClientID:     "client",
				utils.KeyClientSecret: "secret",
			},
		},
		{
			name:      "refresh token without client credentials",
			values:    map[string]string{utils.KeyLocationID: "loc-1", utils.KeyRefreshToken: "refresh"},
			wantError: true,
		},
		{
			name:      "no credentials",
			values:    map[string]string{utils.KeyLocationID: "loc-1"},
			wantError: true,
		},
		{
			name:      "no location",
			values:    map[string]string{utils.KeyAccessToken: "tok"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClientFromConfig(context.Background(), utils.NewConfig(tt.values))
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "loc-1", client.GetLocationID())
		})
	}
}

func TestMakeRequest(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/contacts/", r.URL.Path)
		assert.Equal(t, "loc-1", r.URL.Query().Get("locationId"))
		assert.Equal(t, []string{"a", "b"}, r.URL.Query()["tag"])
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, utils.DefaultAPIVersion, r.Header.Get("Version"))

		w.Write([]byte(`{"contacts":[{"id":"c1","email":"a@example.com"},{"id":42,"email":"b@example.com"}]}`))
	})

	var out ContactsResponse
	err := client.MakeRequest(context.Background(), &Request{
		Path:   "/contacts/",
		Params: Params{"locationId": "loc-1", "tag": []string{"a", "b"}, "skip": nil},
	}, &out)
	require.NoError(t, err)

	require.Len(t, out.Contacts, 2)
	assert.Equal(t, ID("c1"), out.Contacts[0].ID)
	assert.Equal(t, "42", out.Contacts[1].ID.String())
}

func TestMakeRequestError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid JWT"}`))
	})

	err := client.MakeRequest(context.Background(), &Request{Path: "/users/"}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "/users/", apiErr.Path)
	assert.Contains(t, apiErr.Error(), "Invalid JWT")
}

func TestGetFreeSlots(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendars/cal-1/free-slots", r.URL.Path)
		assert.Equal(t, "1705276800000", r.URL.Query().Get("startDate"))
		assert.Equal(t, "UTC", r.URL.Query().Get("timezone"))
		assert.False(t, r.URL.Query().Has("endDate"))

		w.Write([]byte(`{"2024-01-15":{"slots":["2024-01-15T09:00:00Z","2024-01-15T09:30:00Z"]},"traceId":"t-1"}`))
	})

	resp, err := client.GetFreeSlots(context.Background(), "cal-1", Params{
		"startDate": int64(1705276800000),
		"timezone":  "UTC",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.CountSlots())
	assert.Equal(t, "t-1", resp["traceId"])
}

func TestSendNewMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/conversations/messages", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var data map[string]any
		assert.NoError(t, json.Unmarshal(body, &data))
		assert.Equal(t, "SMS", data["type"])
		assert.Equal(t, "hi", data["message"])

		w.Write([]byte(`{"conversationId":"conv-1","messageId":"abc"}`))
	})

	resp, err := client.SendNewMessage(context.Background(), map[string]any{"type": "SMS", "message": "hi"})
	require.NoError(t, err)

	assert.Equal(t, "abc", resp.MessageID())
	assert.Equal(t, "conv-1", resp["conversationId"])
}
