package zoomapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// The server keeps roughly six months of recordings and caps date-range
// queries at about a month, so enumeration walks 8 sequential 30-day windows
// back from now. Adjacent windows share a boundary day; the completion ledger
// makes any duplicates harmless.
const (
	windowCount = 8
	windowStep  = 30 * 24 * time.Hour
)

const dateLayout = "2006-01-02"

// ListRecordings returns every recording the server holds for one user,
// concatenated across all windows and continuation pages in request order.
// No deduplication happens here.
func (c *Client) ListRecordings(ctx context.Context, userID string) ([]Recording, error) {
	endpoint := fmt.Sprintf("%s/users/%s/recordings", c.baseURL, url.PathEscape(userID))
	now := c.now()

	var all []Recording
	for i := 0; i < windowCount; i++ {
		from := now.Add(-windowStep * time.Duration(i+1)).Format(dateLayout)
		to := now.Add(-windowStep * time.Duration(i)).Format(dateLayout)
		c.log.Info().Str("from", from).Str("to", to).Msg("fetching recordings for time period")

		page, err := c.recordingPage(ctx, endpoint, map[string]string{
			"page_size": strconv.Itoa(c.pageSize),
			"from":      from,
			"to":        to,
		})
		if err != nil {
			return nil, err
		}
		window := page.Meetings

		// Follow continuation pages until the server stops handing out a token.
		for page.NextPageToken != "" {
			page, err = c.recordingPage(ctx, endpoint, map[string]string{
				"page_size":       strconv.Itoa(c.pageSize),
				"from":            from,
				"to":              to,
				"next_page_token": page.NextPageToken,
			})
			if err != nil {
				return nil, err
			}
			window = append(window, page.Meetings...)
		}

		c.log.Info().Int("count", len(window)).Msg("recordings found for this time period")
		all = append(all, window...)
	}
	return all, nil
}

func (c *Client) recordingPage(ctx context.Context, endpoint string, query map[string]string) (*recordingPage, error) {
	resp, err := c.get(ctx, requestOptions{
		url:          endpoint,
		query:        query,
		authenticate: true,
	})
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("list recordings: status %d", resp.StatusCode())
	}

	var page recordingPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, fmt.Errorf("list recordings: decode: %w", err)
	}
	return &page, nil
}
