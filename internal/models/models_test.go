package models

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDecodeIntentRequest(t *testing.T) {
	body := `{
		"version": "1.0",
		"session": {"new": true, "sessionId": "s-1", "application": {"applicationId": "app-1"}, "user": {"userId": "u-1"}},
		"request": {
			"type": "IntentRequest",
			"requestId": "r-1",
			"locale": "en-US",
			"intent": {"name": "GithubIntent", "slots": {"username": {"name": "username", "value": "Octo Cat"}}}
		}
	}`

	var env RequestEnvelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	require.NoError(t, env.Validate())

	assert.True(t, env.Session.New)
	assert.Equal(t, "u-1", env.Session.User.UserID)
	assert.Equal(t, TypeIntentRequest, env.Request.Type)

	v, ok := env.Request.SlotValue("username")
	assert.True(t, ok)
	assert.Equal(t, "Octo Cat", v)

	_, ok = env.Request.SlotValue("missing")
	assert.False(t, ok)
}

func TestSlotValue(t *testing.T) {
	testCases := []struct {
		name string
		req  Request
		ok   bool
	}{
		{name: "no_intent", req: Request{Type: TypeLaunchRequest}},
		{name: "no_slots", req: Request{Intent: &Intent{Name: "GithubIntent"}}},
		{name: "empty_value", req: Request{Intent: &Intent{Name: "GithubIntent", Slots: map[string]Slot{"username": {Name: "username"}}}}},
		{name: "filled", req: Request{Intent: &Intent{Name: "GithubIntent", Slots: map[string]Slot{"username": {Name: "username", Value: "x"}}}}, ok: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := tc.req.SlotValue("username")
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name  string
		env   RequestEnvelope
		valid bool
	}{
		{name: "launch", env: RequestEnvelope{Version: Version, Request: Request{Type: TypeLaunchRequest}}, valid: true},
		{name: "no_version", env: RequestEnvelope{Request: Request{Type: TypeLaunchRequest}}},
		{name: "no_type", env: RequestEnvelope{Version: Version}},
		{name: "intent_without_name", env: RequestEnvelope{Version: Version, Request: Request{Type: TypeIntentRequest, Intent: &Intent{}}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.env.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestResponseBuilder(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		b, err := json.Marshal(NewResponse().Build())
		require.NoError(t, err)
		assert.JSONEq(t, `{"version": "1.0", "response": {}}`, string(b))
	})

	t.Run("speak_reprompt_card", func(t *testing.T) {
		env := NewResponse().
			Speak("hello").
			Reprompt("again").
			SimpleCard("Title", "content").
			Build()

		b, err := json.Marshal(env)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"version": "1.0",
			"response": {
				"outputSpeech": {"type": "PlainText", "text": "hello"},
				"reprompt": {"outputSpeech": {"type": "PlainText", "text": "again"}},
				"card": {"type": "Simple", "title": "Title", "content": "content"},
				"shouldEndSession": false
			}
		}`, string(b))
	})

	t.Run("end_session", func(t *testing.T) {
		env := NewResponse().Speak("bye").EndSession(true).Build()
		require.NotNil(t, env.Response.ShouldEndSession)
		assert.True(t, *env.Response.ShouldEndSession)
		assert.Nil(t, env.Response.Reprompt)
	})
}
