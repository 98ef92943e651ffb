package dropbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultAPIURL     = "https://api.dropboxapi.com/2"
	defaultContentURL = "https://content.dropboxapi.com/2"
	defaultTimeout    = 60 * time.Second

	apiArgHeader    = "Dropbox-API-Arg"
	apiResultHeader = "Dropbox-API-Result"
)

// HTTPClient is the resty-backed implementation of Client.
type HTTPClient struct {
	apiURL     string
	contentURL string
	rest       *resty.Client
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithBaseURLs overrides the API and content hosts. Used by tests to point
// the client at a local server.
func WithBaseURLs(apiURL, contentURL string) ClientOption {
	return func(c *HTTPClient) {
		c.apiURL = apiURL
		c.contentURL = contentURL
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.rest.SetTimeout(timeout)
	}
}

// NewClient returns an HTTPClient authenticated with accessToken.
func NewClient(accessToken string, opts ...ClientOption) (*HTTPClient, error) {
	if accessToken == "" {
		return nil, ErrEmptyAccessToken
	}

	rest := resty.New()
	rest.SetDisableWarn(true)
	rest.SetTimeout(defaultTimeout)
	rest.SetHeader("Authorization", "Bearer "+accessToken)

	c := &HTTPClient{
		apiURL:     defaultAPIURL,
		contentURL: defaultContentURL,
		rest:       rest,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// rpc posts a JSON body to an api-host endpoint and decodes the JSON answer
// into out. A non-2xx status is returned as *APIError.
func (c *HTTPClient) rpc(ctx context.Context, endpoint string, reqBody, out any) error {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		Post(c.apiURL + endpoint)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", endpoint, err)
	}

	if resp.IsError() {
		return parseAPIError(resp.StatusCode(), resp.Body(), resp.Header())
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode %s response failed: %w", endpoint, err)
		}
	}

	return nil
}

func (c *HTTPClient) Upload(ctx context.Context, path string, mode WriteMode, autorename bool, content io.Reader) (*Metadata, error) {
	arg, err := json.Marshal(struct {
		Path       string `json:"path"`
		Mode       string `json:"mode"`
		Autorename bool   `json:"autorename"`
		Mute       bool   `json:"mute"`
	}{path, string(mode), autorename, false})
	if err != nil {
		return nil, fmt.Errorf("marshal upload arg failed: %w", err)
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader(apiArgHeader, string(arg)).
		SetBody(content).
		Post(c.contentURL + "/files/upload")
	if err != nil {
		return nil, fmt.Errorf("upload request failed: %w", err)
	}

	if resp.IsError() {
		return nil, parseAPIError(resp.StatusCode(), resp.Body(), resp.Header())
	}

	var meta Metadata
	if err := json.Unmarshal(resp.Body(), &meta); err != nil {
		return nil, fmt.Errorf("decode upload response failed: %w", err)
	}
	// files/upload returns FileMetadata without a ".tag" discriminator.
	meta.Tag = TagFile

	return &meta, nil
}

func (c *HTTPClient) Download(ctx context.Context, path string) (*Metadata, io.ReadCloser, error) {
	arg, err := json.Marshal(struct {
		Path string `json:"path"`
	}{path})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal download arg failed: %w", err)
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader(apiArgHeader, string(arg)).
		SetDoNotParseResponse(true).
		Post(c.contentURL + "/files/download")
	if err != nil {
		return nil, nil, fmt.Errorf("download request failed: %w", err)
	}

	if resp.IsError() {
		body, _ := io.ReadAll(resp.RawBody())
		resp.RawBody().Close()
		return nil, nil, parseAPIError(resp.StatusCode(), body, resp.Header())
	}

	// File metadata rides in a response header; the body is the content.
	var meta Metadata
	if result := resp.Header().Get(apiResultHeader); result != "" {
		if err := json.Unmarshal([]byte(result), &meta); err != nil {
			resp.RawBody().Close()
			return nil, nil, fmt.Errorf("decode %s header failed: %w", apiResultHeader, err)
		}
	}
	meta.Tag = TagFile

	return &meta, resp.RawBody(), nil
}

// relocationResult wraps the metadata object returned by move_v2, copy_v2,
// delete_v2 and create_folder_v2.
type relocationResult struct {
	Metadata Metadata `json:"metadata"`
}

func (c *HTTPClient) Move(ctx context.Context, fromPath, toPath string, opts RelocationOptions) (*Metadata, error) {
	req := struct {
		FromPath               string `json:"from_path"`
		ToPath                 string `json:"to_path"`
		Autorename             bool   `json:"autorename"`
		AllowOwnershipTransfer bool   `json:"allow_ownership_transfer"`
	}{fromPath, toPath, opts.Autorename, opts.AllowOwnershipTransfer}

	var result relocationResult
	if err := c.rpc(ctx, "/files/move_v2", req, &result); err != nil {
		return nil, err
	}

	return &result.Metadata, nil
}

func (c *HTTPClient) Copy(ctx context.Context, fromPath, toPath string, opts RelocationOptions) (*Metadata, error) {
	req := struct {
		FromPath   string `json:"from_path"`
		ToPath     string `json:"to_path"`
		Autorename bool   `json:"autorename"`
	}{fromPath, toPath, opts.Autorename}

	var result relocationResult
	if err := c.rpc(ctx, "/files/copy_v2", req, &result); err != nil {
		return nil, err
	}

	return &result.Metadata, nil
}

func (c *HTTPClient) Delete(ctx context.Context, path string) (*Metadata, error) {
	req := struct {
		Path string `json:"path"`
	}{path}

	var result relocationResult
	if err := c.rpc(ctx, "/files/delete_v2", req, &result); err != nil {
		return nil, err
	}

	return &result.Metadata, nil
}

func (c *HTTPClient) CreateFolder(ctx context.Context, path string, autorename bool) (*Metadata, error) {
	req := struct {
		Path       string `json:"path"`
		Autorename bool   `json:"autorename"`
	}{path, autorename}

	var result relocationResult
	if err := c.rpc(ctx, "/files/create_folder_v2", req, &result); err != nil {
		return nil, err
	}
	// create_folder_v2 returns FolderMetadata without a ".tag" discriminator.
	result.Metadata.Tag = TagFolder

	return &result.Metadata, nil
}

func (c *HTTPClient) GetMetadata(ctx context.Context, path string, includeMediaInfo bool) (*Metadata, error) {
	req := struct {
		Path             string `json:"path"`
		IncludeMediaInfo bool   `json:"include_media_info"`
	}{path, includeMediaInfo}

	var meta Metadata
	if err := c.rpc(ctx, "/files/get_metadata", req, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (c *HTTPClient) ListFolder(ctx context.Context, path string, recursive bool, limit uint32) (*Page, error) {
	// The API designates the root as "", not "/".
	if path == "/" {
		path = ""
	}

	req := map[string]any{
		"path":      path,
		"recursive": recursive,
	}
	if limit > 0 {
		req["limit"] = limit
	}

	var parsed struct {
		Entries []Metadata `json:"entries"`
		Cursor  string     `json:"cursor"`
		HasMore bool       `json:"has_more"`
	}
	if err := c.rpc(ctx, "/files/list_folder", req, &parsed); err != nil {
		return nil, err
	}

	return &Page{Entries: parsed.Entries, Cursor: parsed.Cursor, HasMore: parsed.HasMore}, nil
}

func (c *HTTPClient) ListFolderContinue(ctx context.Context, cursor string) (*Page, error) {
	req := struct {
		Cursor string `json:"cursor"`
	}{cursor}

	var parsed struct {
		Entries []Metadata `json:"entries"`
		Cursor  string     `json:"cursor"`
		HasMore bool       `json:"has_more"`
	}
	if err := c.rpc(ctx, "/files/list_folder/continue", req, &parsed); err != nil {
		return nil, err
	}

	return &Page{Entries: parsed.Entries, Cursor: parsed.Cursor, HasMore: parsed.HasMore}, nil
}

// searchResult is the search_v2 wire shape: each match wraps its metadata
// object one level deeper than list_folder does.
type searchResult struct {
	Matches []struct {
		Metadata struct {
			Metadata Metadata `json:"metadata"`
		} `json:"metadata"`
	} `json:"matches"`
	Cursor  string `json:"cursor"`
	HasMore bool   `json:"has_more"`
}

func (r *searchResult) page() *Page {
	entries := make([]Metadata, 0, len(r.Matches))
	for _, match := range r.Matches {
		entries = append(entries, match.Metadata.Metadata)
	}
	return &Page{Entries: entries, Cursor: r.Cursor, HasMore: r.HasMore}
}

func (c *HTTPClient) Search(ctx context.Context, query string, opts SearchOptions) (*Page, error) {
	options := map[string]any{}
	if opts.Path != "" {
		options["path"] = opts.Path
	}
	if opts.MaxResults > 0 {
		options["max_results"] = opts.MaxResults
	}
	if len(opts.FileExtensions) > 0 {
		options["file_extensions"] = opts.FileExtensions
	}

	req := map[string]any{"query": query}
	if len(options) > 0 {
		req["options"] = options
	}

	var parsed searchResult
	if err := c.rpc(ctx, "/files/search_v2", req, &parsed); err != nil {
		return nil, err
	}

	return parsed.page(), nil
}

func (c *HTTPClient) SearchContinue(ctx context.Context, cursor string) (*Page, error) {
	req := struct {
		Cursor string `json:"cursor"`
	}{cursor}

	var parsed searchResult
	if err := c.rpc(ctx, "/files/search/continue_v2", req, &parsed); err != nil {
		return nil, err
	}

	return parsed.page(), nil
}

func parseAPIError(status int, body []byte, header http.Header) error {
	apiErr := &APIError{StatusCode: status}

	var parsed struct {
		ErrorSummary string `json:"error_summary"`
		Error        struct {
			RetryAfter int `json:"retry_after"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Summary = parsed.ErrorSummary
		apiErr.RetryAfter = parsed.Error.RetryAfter
	}

	if apiErr.RetryAfter == 0 {
		if after := header.Get("Retry-After"); after != "" {
			if secs, err := strconv.Atoi(after); err == nil {
				apiErr.RetryAfter = secs
			}
		}
	}

	return apiErr
}
