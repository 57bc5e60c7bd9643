package skill

import (
	"bitbucket.org/sotavant/github-activity-skill/internal/github"
	"bitbucket.org/sotavant/github-activity-skill/internal/i18n"
	"bitbucket.org/sotavant/github-activity-skill/internal/models"
	"context"
	"fmt"
	"strings"
)

// maxCommitLines is how many commits are read out per answer.
const maxCommitLines = 2

const lineSeparator = ". "

func (s *Skill) handleActivity(ctx context.Context, t i18n.Translator, req models.Request) (*models.ResponseEnvelope, error) {
	// a launch has no slots; greet instead of failing on the missing username
	if req.Type == models.TypeLaunchRequest {
		return models.NewResponse().
			Speak(t.T(KeyWelcome, t.T(KeySkillName))).
			Reprompt(t.T(KeyHelp)).
			Build(), nil
	}

	raw, ok := req.SlotValue(SlotUsername)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingSlot, SlotUsername)
	}

	username := normalizeUsername(raw)
	if username == "" {
		return nil, fmt.Errorf("%w: %s is blank", ErrMissingSlot, SlotUsername)
	}

	events, err := s.events.ListUserEvents(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list events for %s: %w", username, err)
	}

	intro := t.T(KeyEventsIntro, username)

	summary := strings.Join(commitLines(events, maxCommitLines), lineSeparator)
	if summary == "" {
		summary = t.T(KeyNoActivity)
	}

	return models.NewResponse().
		Speak(intro + lineSeparator + summary).
		SimpleCard(t.T(KeySkillName), intro).
		Build(), nil
}

// normalizeUsername drops all whitespace and lower-cases, so that a spelled
// out " Octo Cat " becomes "octocat".
func normalizeUsername(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// commitLines flattens the commits of events in feed order into spoken
// lines and keeps the first limit of them.
func commitLines(events []github.Event, limit int) []string {
	var lines []string
	for _, e := range events {
		for _, c := range e.Payload.Commits {
			if len(lines) == limit {
				return lines
			}
			lines = append(lines, "commit for "+e.Repo.Name+" "+c.Message)
		}
	}
	return lines
}
