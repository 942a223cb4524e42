// Package client implements the submission adapter for the remote HirePlan
// job API. It converts validated postings into wire payloads, issues the
// create/update/fetch calls, and surfaces server rejections unmodified.
// There are no retries and no backoff: a failed submission is resubmitted by
// the user, not by this package.
package client

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireplan/hireplan/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for API requests.
const DefaultUserAgent = "hireplan-cli/1.0"

// Options configures the client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// HTTPClient overrides the transport, mainly for tests. When set, its
	// timeout configuration wins over Timeout.
	HTTPClient *http.Client
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client talks to the remote job API. The zero value is not usable; build
// one with New.
type Client struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
}

// New builds a client for the API at baseURL authenticating with token.
func New(baseURL, token string, opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: baseURL, Message: "invalid API base URL", Cause: err}
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		userAgent: userAgent,
		http:      httpClient,
	}, nil
}

// CreateJob submits a new posting. On success the returned record carries
// the identifier assigned by the remote system of record.
func (c *Client) CreateJob(ctx context.Context, posting *types.JobPosting) (*types.JobPosting, error) {
	payload, err := marshalPayload(posting)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/jobs", payload)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeJob(resp)
}

// UpdateJob resubmits an existing posting under its remote identifier.
func (c *Client) UpdateJob(ctx context.Context, id string, posting *types.JobPosting) (*types.JobPosting, error) {
	if id == "" {
		return nil, &Error{URL: c.baseURL, Message: "job id is required for updates"}
	}

	payload, err := marshalPayload(posting)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPut, "/jobs/"+url.PathEscape(id), payload)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeJob(resp)
}

// GetJob hydrates a remote posting into the in-memory model, for edit flows.
func (c *Client) GetJob(ctx context.Context, id string) (*types.JobPosting, error) {
	if id == "" {
		return nil, &Error{URL: c.baseURL, Message: "job id is required"}
	}

	resp, err := c.do(ctx, http.MethodGet, "/jobs/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return decodeJob(resp)
}

// ListOptions controls job listing.
type ListOptions struct {
	Page    int
	PerPage int
	Search  string
}

// JobPage is one page of listed jobs.
type JobPage struct {
	Jobs       []types.JobPosting `json:"jobs"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
	Total      int                `json:"total"`
}

// ListJobs fetches a page of postings, optionally filtered by a search term.
func (c *Client) ListJobs(ctx context.Context, opts ListOptions) (*JobPage, error) {
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		query.Set("perPage", strconv.Itoa(opts.PerPage))
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}

	path := "/jobs"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	return decodePage(resp)
}

// do issues a single API request. Responses with an error status are turned
// into *APIError; transport failures are wrapped in *Error. The response
// body is the caller's to close on success.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	if tokenExpired(c.token, time.Now()) {
		return nil, ErrTokenExpired
	}

	requestURL := c.baseURL + path

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, &Error{URL: requestURL, Message: "failed to create request", Cause: err}
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: requestURL, Message: "HTTP request failed", Cause: err}
	}

	if resp.StatusCode >= 400 {
		apiErr := decodeAPIError(resp, requestID)
		_ = resp.Body.Close()
		return nil, apiErr
	}

	return resp, nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
