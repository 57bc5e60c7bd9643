// Package main is the entry point for the skill when hosted as an AWS Lambda function.
package main

import (
	"bitbucket.org/sotavant/github-activity-skill/internal/config"
	"bitbucket.org/sotavant/github-activity-skill/internal/github"
	"bitbucket.org/sotavant/github-activity-skill/internal/httpclient"
	"bitbucket.org/sotavant/github-activity-skill/internal/i18n"
	"bitbucket.org/sotavant/github-activity-skill/internal/logger"
	"bitbucket.org/sotavant/github-activity-skill/internal/models"
	"bitbucket.org/sotavant/github-activity-skill/internal/skill"
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
)

type handler struct {
	skill  *skill.Skill
	warmer warmer
}

func main() {
	cfg := config.Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		panic(err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		panic(err)
	}

	bundle, err := i18n.Load(cfg.DefaultLocale)
	if err != nil {
		logger.Log.Fatal("cannot load locale bundle", zap.Error(err))
	}

	hc := httpclient.New(cfg.GitHubAPIURL, cfg.UserAgent, logger.Log)
	h := &handler{
		skill:  skill.New(github.NewClient(hc), bundle, logger.Log),
		warmer: lambdaWarmer{},
	}

	lambda.Start(h.handleRequest)
}

func (h *handler) handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// Warmup detection must come before anything else touches the event
	if warmup, ok := IsWarmupEvent(event); ok {
		return HandleWarmup(ctx, h.warmer, warmup)
	}

	var req models.RequestEnvelope
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, fmt.Errorf("decode request envelope: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger.Log.Debug("invocation",
			zap.String("aws_request_id", lc.AwsRequestID),
			zap.String("type", req.Request.Type),
		)
	}

	return h.skill.Handle(ctx, req), nil
}
