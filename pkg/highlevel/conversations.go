package highlevel

import (
	"context"
	"net/http"
)

// SendNewMessage posts data as a new outbound conversation message
func (c *Client) SendNewMessage(ctx context.Context, data map[string]any) (MessageResponse, error) {
	var out MessageResponse
	err := c.MakeRequest(ctx, &Request{
		Method: http.MethodPost,
		Path:   "/conversations/messages",
		Data:   data,
	}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}
