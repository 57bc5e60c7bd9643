// Package github reads a user's public activity from the GitHub REST API.
package github

//go:generate mockgen -destination=mock/mock_github.go -package=mock . EventLister

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

var ErrEmptyUsername = errors.New("username is empty")

// Event is one entry of the public events feed. Only the fields the skill speaks are decoded.
type Event struct {
	Type    string  `json:"type"`
	Repo    Repo    `json:"repo"`
	Payload Payload `json:"payload"`
}

type Repo struct {
	Name string `json:"name"`
}

type Payload struct {
	Commits []Commit `json:"commits,omitempty"`
}

type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
}

type EventLister interface {
	ListUserEvents(ctx context.Context, username string) ([]Event, error)
}

type getter interface {
	GetJSON(ctx context.Context, path string, out any) error
}

type Client struct {
	http getter
}

func NewClient(http getter) *Client {
	return &Client{http: http}
}

// ListUserEvents returns the first page of public events for username.
func (c *Client) ListUserEvents(ctx context.Context, username string) ([]Event, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	var events []Event
	if err := c.http.GetJSON(ctx, "/users/"+escapeSegment(username)+"/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

// componentUnescaper undoes the QueryEscape encodings that a URI component
// leaves literal: space is %20, and ! ' ( ) * stay as they are.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escapeSegment percent-encodes s as a single URI component.
func escapeSegment(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
