// Package skill answers voice-platform requests for the Code Activity skill.
//
// A LaunchRequest is routed to the activity handler like GithubIntent, but
// since a launch never carries a username slot it is answered with the
// welcome message and a help reprompt instead of failing into the error
// answer.
package skill

import (
	"bitbucket.org/sotavant/github-activity-skill/internal/github"
	"bitbucket.org/sotavant/github-activity-skill/internal/i18n"
	"bitbucket.org/sotavant/github-activity-skill/internal/models"
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	IntentGithub   = "GithubIntent"
	IntentHelp     = "AMAZON.HelpIntent"
	IntentCancel   = "AMAZON.CancelIntent"
	IntentStop     = "AMAZON.StopIntent"
	IntentFallback = "AMAZON.FallbackIntent"

	SlotUsername = "username"
)

// Message keys of the locale bundle.
const (
	KeySkillName   = "SKILL_NAME"
	KeyWelcome     = "WELCOME_MESSAGE"
	KeyHelp        = "HELP_MESSAGE"
	KeyStop        = "STOP_MESSAGE"
	KeyError       = "ERROR_MESSAGE"
	KeyEventsIntro = "USER_EVENTS_RESULT_INTRO"
	KeyNoActivity  = "NO_ACTIVITY_MESSAGE"
)

var (
	ErrMissingSlot      = errors.New("missing slot value")
	ErrUnhandledRequest = errors.New("no handler for request")
)

type Skill struct {
	events github.EventLister
	bundle *i18n.Bundle
	log    *zap.Logger
}

func New(events github.EventLister, bundle *i18n.Bundle, log *zap.Logger) *Skill {
	return &Skill{
		events: events,
		bundle: bundle,
		log:    log,
	}
}

// Handle answers one invocation. It never fails: any handler error, and any
// panic raised while handling, is turned into the generic spoken error.
func (s *Skill) Handle(ctx context.Context, env models.RequestEnvelope) (resp *models.ResponseEnvelope) {
	req := env.Request

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := s.log.With(
		zap.String("request_id", requestID),
		zap.String("type", req.Type),
	)

	t := s.bundle.Translator(req.Locale)

	defer func() {
		if r := recover(); r != nil {
			resp = s.handleError(log, t, fmt.Errorf("panic: %v", r))
		}
	}()

	resp, err := s.dispatch(ctx, log, t, req)
	if err != nil {
		return s.handleError(log, t, err)
	}
	return resp
}

func (s *Skill) dispatch(ctx context.Context, log *zap.Logger, t i18n.Translator, req models.Request) (*models.ResponseEnvelope, error) {
	switch req.Type {
	case models.TypeLaunchRequest:
		return s.handleActivity(ctx, t, req)
	case models.TypeSessionEndedRequest:
		return s.handleSessionEnded(log, req), nil
	case models.TypeIntentRequest:
		if req.Intent == nil {
			return nil, fmt.Errorf("%w: %s without intent", ErrUnhandledRequest, req.Type)
		}

		switch req.Intent.Name {
		case IntentGithub:
			return s.handleActivity(ctx, t, req)
		case IntentHelp:
			return handleHelp(t), nil
		case IntentCancel, IntentStop:
			return handleExit(t), nil
		case IntentFallback:
			return handleFallback(t), nil
		}
		return nil, fmt.Errorf("%w: intent %s", ErrUnhandledRequest, req.Intent.Name)
	}

	return nil, fmt.Errorf("%w: type %s", ErrUnhandledRequest, req.Type)
}
