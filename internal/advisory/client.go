// Package advisory is the HTTP client for the match-advisory ML service.
// The service only ranks candidates; nothing in the claim lifecycle depends
// on it for correctness, so every failure here normalizes to
// domain.ErrAdvisoryUnavailable and callers decide how to degrade.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"retreivo-backend/internal/domain"
	"retreivo-backend/internal/logger"
)

// ItemDescriptor is the wire form of an item sent for storage or matching.
type ItemDescriptor struct {
	ItemID      int32  `json:"item_id,omitempty"`
	ItemType    string `json:"item_type"`
	Name        string `json:"item_name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Date        string `json:"date,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Match is one ranked candidate returned by the advisory service.
type Match struct {
	ItemID     int32   `json:"item_id"`
	MatchScore float64 `json:"match_score"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// SubmitItem registers a newly reported item with the advisory service so it
// can participate in future matching. Best effort; the caller must never
// fail its own operation on an error from here.
func (c *Client) SubmitItem(ctx context.Context, desc ItemDescriptor) error {
	var resp struct {
		OK bool `json:"ok"`
	}
	logger.ExternalServiceCall("advisory", "store-item", "item_id", desc.ItemID, "item_type", desc.ItemType)
	err := c.post(ctx, "/store-item", desc, &resp)
	if err == nil && !resp.OK {
		err = fmt.Errorf("%w: store-item rejected", domain.ErrAdvisoryUnavailable)
	}
	logger.ExternalServiceResult("advisory", "store-item", err, "item_id", desc.ItemID)
	return err
}

// RankMatches returns candidate found items ranked against the descriptor.
func (c *Client) RankMatches(ctx context.Context, desc ItemDescriptor) ([]Match, error) {
	var resp struct {
		OK      bool    `json:"ok"`
		Results []Match `json:"results"`
	}
	logger.ExternalServiceCall("advisory", "match-item", "item_name", desc.Name)
	err := c.post(ctx, "/match-item", desc, &resp)
	if err == nil && !resp.OK {
		err = fmt.Errorf("%w: match-item rejected", domain.ErrAdvisoryUnavailable)
	}
	logger.ExternalServiceResult("advisory", "match-item", err)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Health probes the advisory service.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAdvisoryUnavailable, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAdvisoryUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", domain.ErrAdvisoryUnavailable, resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAdvisoryUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAdvisoryUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAdvisoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("%w: %s returned %d", domain.ErrAdvisoryUnavailable, path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", domain.ErrAdvisoryUnavailable, path, err)
	}
	return nil
}
