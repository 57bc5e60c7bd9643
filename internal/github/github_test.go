package github

import (
	"bitbucket.org/sotavant/github-activity-skill/internal/httpclient"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"testing"
)

const eventsBody = `[
	{"type": "PushEvent", "repo": {"name": "octocat/hello"}, "payload": {"commits": [{"sha": "a1", "message": "first"}, {"sha": "b2", "message": "second"}]}},
	{"type": "WatchEvent", "repo": {"name": "octocat/spoon"}, "payload": {"action": "started"}}
]`

func TestListUserEvents(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		if r.URL.Path == "/users/ghost/events" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(eventsBody))
	}))
	defer srv.Close()

	c := NewClient(httpclient.New(srv.URL, "https", zap.NewNop()))

	t.Run("decodes_events", func(t *testing.T) {
		events, err := c.ListUserEvents(context.Background(), "octocat")
		require.NoError(t, err)
		assert.Equal(t, "/users/octocat/events", gotPath)

		require.Len(t, events, 2)
		assert.Equal(t, "octocat/hello", events[0].Repo.Name)
		assert.Equal(t, []Commit{{SHA: "a1", Message: "first"}, {SHA: "b2", Message: "second"}}, events[0].Payload.Commits)
		assert.Empty(t, events[1].Payload.Commits)
	})

	t.Run("escapes_username", func(t *testing.T) {
		testCases := []struct {
			username string
			path     string
		}{
			{username: "a/b c", path: "/users/a%2Fb%20c/events"},
			{username: "a+b", path: "/users/a%2Bb/events"},
			{username: "a:b@c;d", path: "/users/a%3Ab%40c%3Bd/events"},
			{username: "a&b=c,d$", path: "/users/a%26b%3Dc%2Cd%24/events"},
		}

		for _, tc := range testCases {
			_, err := c.ListUserEvents(context.Background(), tc.username)
			require.NoError(t, err)
			assert.Equal(t, tc.path, gotPath, tc.username)
		}
	})

	t.Run("upstream_not_found", func(t *testing.T) {
		_, err := c.ListUserEvents(context.Background(), "ghost")

		var se *httpclient.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
	})

	t.Run("empty_username", func(t *testing.T) {
		_, err := c.ListUserEvents(context.Background(), "")
		assert.ErrorIs(t, err, ErrEmptyUsername)
	})
}

func TestEscapeSegment(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{in: "octocat", want: "octocat"},
		{in: "a b", want: "a%20b"},
		{in: "a+b", want: "a%2Bb"},
		{in: "a/b?c#d", want: "a%2Fb%3Fc%23d"},
		{in: "-_.!~*'()", want: "-_.!~*'()"},
		{in: "ü", want: "%C3%BC"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, escapeSegment(tc.in))
		})
	}
}
