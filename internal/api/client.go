// Package api is a small Go client for the dicebox HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pefman/dicebox/internal/models"
	"github.com/pefman/dicebox/internal/stats"
)

var httpClient = &http.Client{Timeout: 8 * time.Second}

// Client talks to a running dicebox server.
type Client struct {
	baseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var apiErr models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("api status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Dice returns the current state of the dice set.
func (c *Client) Dice(ctx context.Context) (models.TableState, error) {
	var state models.TableState
	err := c.get(ctx, "/api/dice", &state)
	return state, err
}

// RollAll triggers a collection roll. The result arrives asynchronously over
// the websocket stream; this only acknowledges the trigger.
func (c *Client) RollAll(ctx context.Context) error {
	return c.post(ctx, "/api/roll", nil, nil)
}

// RollOne triggers a roll of the die at index.
func (c *Client) RollOne(ctx context.Context, index int) error {
	return c.post(ctx, fmt.Sprintf("/api/roll/%d", index), nil, nil)
}

// SetValues forces every die positionally and returns the resulting state.
func (c *Client) SetValues(ctx context.Context, values []int) (models.TableState, error) {
	var state models.TableState
	err := c.post(ctx, "/api/dice/values", models.SetValuesRequest{Values: values}, &state)
	return state, err
}

// SetValue forces the die at index to value and returns the resulting state.
func (c *Client) SetValue(ctx context.Context, index, value int) (models.TableState, error) {
	var state models.TableState
	err := c.post(ctx, fmt.Sprintf("/api/dice/%d/value", index), models.SetValueRequest{Value: value}, &state)
	return state, err
}

// Stats returns the server's roll statistics.
func (c *Client) Stats(ctx context.Context) (stats.Snapshot, error) {
	var s stats.Snapshot
	err := c.get(ctx, "/api/stats", &s)
	return s, err
}
