package highlevel

import (
	"context"
	"net/url"
)

// GetFreeSlots fetches free slots for a calendar. params is forwarded as the query string
func (c *Client) GetFreeSlots(ctx context.Context, calendarID string, params Params) (FreeSlotsResponse, error) {
	var out FreeSlotsResponse
	err := c.MakeRequest(ctx, &Request{
		Path:   "/calendars/" + url.PathEscape(calendarID) + "/free-slots",
		Params: params,
	}, &out)
	if err != nil {
		return nil, err
	}

	return out, nil
}
