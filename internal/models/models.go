package models

import (
	"fmt"
	"github.com/go-playground/validator/v10"
)

const (
	TypeLaunchRequest       = "LaunchRequest"
	TypeIntentRequest       = "IntentRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"

	Version = "1.0"
)

// RequestEnvelope is the body the voice platform posts for every invocation.
type RequestEnvelope struct {
	Version string   `json:"version" validate:"required"`
	Session *Session `json:"session,omitempty"`
	Request Request  `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	User        User           `json:"user"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

// Request is one of LaunchRequest, IntentRequest or SessionEndedRequest.
// Fields that do not apply to the type are left empty.
type Request struct {
	Type      string        `json:"type" validate:"required"`
	RequestID string        `json:"requestId"`
	Timestamp string        `json:"timestamp,omitempty"`
	Locale    string        `json:"locale,omitempty"`
	Intent    *Intent       `json:"intent,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	Error     *RequestError `json:"error,omitempty"`
}

type Intent struct {
	Name               string          `json:"name" validate:"required"`
	ConfirmationStatus string          `json:"confirmationStatus,omitempty"`
	Slots              map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name               string `json:"name"`
	Value              string `json:"value,omitempty"`
	ConfirmationStatus string `json:"confirmationStatus,omitempty"`
}

// RequestError accompanies a SessionEndedRequest whose reason is ERROR.
type RequestError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// SlotValue returns the raw value of the named slot and whether it was filled.
func (r Request) SlotValue(name string) (string, bool) {
	if r.Intent == nil {
		return "", false
	}
	s, ok := r.Intent.Slots[name]
	if !ok || s.Value == "" {
		return "", false
	}
	return s.Value, true
}

var validate = validator.New()

func (e RequestEnvelope) Validate() error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("invalid request envelope: %w", err)
	}
	return nil
}

// ResponseEnvelope is returned to the voice platform.
type ResponseEnvelope struct {
	Version           string         `json:"version"`
	SessionAttributes map[string]any `json:"sessionAttributes,omitempty"`
	Response          Response       `json:"response"`
}

type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession *bool         `json:"shouldEndSession,omitempty"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
