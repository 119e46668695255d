// Package steam provides a client for the two ISteamRemoteStorage Web API
// calls the importer needs: collection membership and per-file tag details.
// Both are form-encoded POSTs authenticated by a Web API key; requests are
// made once, with no retry, and any failure is surfaced to the caller.
package steam

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/srcdskit/mapcycle/pkg/constants"
	"github.com/srcdskit/mapcycle/pkg/errors"
)

// DefaultBaseURL is the Steam Web API host.
const DefaultBaseURL = "https://api.steampowered.com"

const (
	collectionDetailsPath    = "/ISteamRemoteStorage/GetCollectionDetails/v1/"
	publishedFileDetailsPath = "/ISteamRemoteStorage/GetPublishedFileDetails/v1/"
)

// Client talks to the Steam Web API.
type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host. Used by tests to
// target an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// NewClient creates a Steam Web API client using the given Web API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: constants.DefaultHTTPTimeout},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCollectionDetails fetches the member lists of the given collections.
func (c *Client) GetCollectionDetails(ctx context.Context, collections []string) (*CollectionDetailsResult, error) {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("format", "json")
	form.Set("collectioncount", strconv.Itoa(len(collections)))
	addIndexedIDs(form, collections)

	var envelope collectionDetailsEnvelope
	if err := c.postForm(ctx, collectionDetailsPath, form, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Response, nil
}

// GetPublishedFileDetails fetches tag metadata for the given published files.
func (c *Client) GetPublishedFileDetails(ctx context.Context, fileIDs []string) (*PublishedFileDetailsResult, error) {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("format", "json")
	form.Set("itemcount", strconv.Itoa(len(fileIDs)))
	addIndexedIDs(form, fileIDs)

	var envelope publishedFileDetailsEnvelope
	if err := c.postForm(ctx, publishedFileDetailsPath, form, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Response, nil
}

// addIndexedIDs adds ids as the indexed "publishedfileids[i]" parameters the
// Web API expects in place of a repeated field.
func addIndexedIDs(form url.Values, ids []string) {
	for i, id := range ids {
		form.Set("publishedfileids["+strconv.Itoa(i)+"]", id)
	}
}

// postForm performs a form-encoded POST and decodes the JSON response into
// target.
func (c *Client) postForm(ctx context.Context, path string, form url.Values, target any) error {
	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return errors.WrapAPI("steam", 0, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &errors.APIError{
			Service:  "steam",
			Endpoint: endpoint,
			Message:  "request failed",
			Err:      err,
		}
	}
	return decodeResponse(resp, endpoint, target)
}

// decodeResponse reads and decodes a JSON response body into target.
func decodeResponse(resp *http.Response, endpoint string, target any) error {
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &errors.APIError{
			Service:    "steam",
			StatusCode: resp.StatusCode,
			Endpoint:   endpoint,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "steam response", err)
	}
	return nil
}
