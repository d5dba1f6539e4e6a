package zoomapi

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListUsers returns every user on the account in one call.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.get(ctx, requestOptions{
		url:          c.baseURL + "/users",
		authenticate: true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("list users: status %d", resp.StatusCode())
	}

	var out userListResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("list users: decode: %w", err)
	}
	return out.Users, nil
}
