package yadisk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrysvd/test-task/internal/config"
	"github.com/dmitrysvd/test-task/internal/core/port"
)

// Client talks to the cloud disk provider. An upload is two-phase: request an
// upload target for the destination path, then transfer the bytes to the
// returned href.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// NewClient returns Client. Every outbound call is bounded by the configured
// request timeout.
func NewClient(cfg config.CloudConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		logger:     logger,
	}
}

var _ port.CloudStorage = (*Client)(nil)

// Upload transfers content to the provider under path.
func (c *Client) Upload(ctx context.Context, path string, content io.Reader) error {
	href, err := c.requestUploadHref(ctx, path)
	if err != nil {
		return err
	}
	return c.transfer(ctx, href, path, content)
}

// requestUploadHref is phase one: ask the provider where to put the bytes.
func (c *Client) requestUploadHref(ctx context.Context, path string) (string, error) {
	endpoint := c.baseURL + "/v1/disk/resources/upload?path=" + url.QueryEscape(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("error building upload target request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error requesting upload target: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("upload target request failed with status %d: %s", resp.StatusCode, body)
	}

	var target struct {
		Href string `json:"href"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&target); err != nil {
		return "", fmt.Errorf("error decoding upload target response: %w", err)
	}
	if target.Href == "" {
		return "", fmt.Errorf("upload target response has empty href")
	}
	return target.Href, nil
}

// transfer is phase two: PUT the bytes to the href as a multipart form with a
// single "file" field. The form body is streamed through a pipe, never fully
// buffered.
func (c *Client) transfer(ctx context.Context, href string, path string, content io.Reader) error {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", strings.TrimPrefix(path, "/"))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, href, pr)
	if err != nil {
		return fmt.Errorf("error building transfer request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error transferring content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("transfer failed with status %d: %s", resp.StatusCode, body)
	}
	return nil
}
