package skill

import (
	"bitbucket.org/sotavant/github-activity-skill/internal/i18n"
	"bitbucket.org/sotavant/github-activity-skill/internal/models"
	"go.uber.org/zap"
)

func handleHelp(t i18n.Translator) *models.ResponseEnvelope {
	return models.NewResponse().
		Speak(t.T(KeyHelp)).
		Reprompt(t.T(KeyHelp)).
		Build()
}

func handleExit(t i18n.Translator) *models.ResponseEnvelope {
	return models.NewResponse().
		Speak(t.T(KeyStop)).
		EndSession(true).
		Build()
}

func handleFallback(t i18n.Translator) *models.ResponseEnvelope {
	return models.NewResponse().
		Speak(t.T(KeyError)).
		Reprompt(t.T(KeyHelp)).
		Build()
}

// The platform ignores any speech in reply to a SessionEndedRequest.
func (s *Skill) handleSessionEnded(log *zap.Logger, req models.Request) *models.ResponseEnvelope {
	fields := []zap.Field{zap.String("reason", req.Reason)}
	if req.Error != nil {
		fields = append(fields,
			zap.String("error_type", req.Error.Type),
			zap.String("error_message", req.Error.Message),
		)
	}
	log.Info("session ended", fields...)

	return models.NewResponse().Build()
}

func (s *Skill) handleError(log *zap.Logger, t i18n.Translator, err error) *models.ResponseEnvelope {
	log.Error("error handled", zap.Error(err), zap.StackSkip("stack", 1))

	return models.NewResponse().
		Speak(t.T(KeyError)).
		Reprompt(t.T(KeyError)).
		Build()
}
