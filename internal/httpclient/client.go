// Package httpclient issues the skill's outbound JSON GET requests.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"net/http"
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	StatusCode int
	Host       string
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d: %s %s", e.StatusCode, e.Host, e.Path)
}

type Client struct {
	rc *resty.Client
}

// New returns a client that sends every request to baseURL with the given User-Agent.
// There is no timeout and no retry; cancellation comes only from the caller's context.
// Redirects are not followed, so a 3xx is reported as a StatusError.
func New(baseURL, userAgent string, log *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		})).
		SetLogger(log.Sugar())

	return &Client{rc: rc}
}

// GetJSON fetches path and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.rc.R().SetContext(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}

	if !resp.IsSuccess() {
		u := resp.RawResponse.Request.URL
		return &StatusError{
			StatusCode: resp.StatusCode(),
			Host:       u.Host,
			Path:       u.EscapedPath(),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
