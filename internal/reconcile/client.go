// Package reconcile keeps the local store loosely converged with a
// remote row store. Reconciliation is eventually consistent and last
// write wins: there are no version tokens, no conflict records, and a
// failed exchange never blocks or rolls back a local mutation.
package reconcile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the outbound row-store surface. Implementations return the
// raw row payloads; translation to domain types happens in one place.
type Client interface {
	// List fetches every row of a table. An empty table yields an
	// empty slice, not an error.
	List(ctx context.Context, table string) ([]json.RawMessage, error)
	// Upsert writes one full row, inserting or replacing by id.
	Upsert(ctx context.Context, table string, row any) error
	// Delete removes one row by id. Deleting an absent row is not an
	// error.
	Delete(ctx context.Context, table, id string) error
}

// RESTClient talks to a PostgREST-style row API: one resource per table,
// filters in the query string, merge-duplicates upserts.
type RESTClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewRESTClient(baseURL, apiKey string) *RESTClient {
	return &RESTClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *RESTClient) List(ctx context.Context, table string) ([]json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rest/v1/"+table+"?select=*", nil)
	if err != nil {
		return nil, err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list %s: unexpected status %d", table, resp.StatusCode)
	}

	var rows []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("list %s: decode: %w", table, err)
	}
	return rows, nil
}

func (c *RESTClient) Upsert(ctx context.Context, table string, row any) error {
	body, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("upsert %s: encode: %w", table, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/v1/"+table, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	defer drain(resp)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("upsert %s: unexpected status %d", table, resp.StatusCode)
	}
	return nil
}

func (c *RESTClient) Delete(ctx context.Context, table, id string) error {
	u := c.baseURL + "/rest/v1/" + table + "?id=eq." + url.QueryEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", table, id, err)
	}
	defer drain(resp)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("delete %s/%s: unexpected status %d", table, id, resp.StatusCode)
	}
	return nil
}

func (c *RESTClient) authorize(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
