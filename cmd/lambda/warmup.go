package main

import (
	"bitbucket.org/sotavant/github-activity-skill/internal/logger"
	"context"
	"encoding/json"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"os"
	"strconv"
	"time"
)

const (
	// WarmupSource identifies warmup events from the scheduler
	WarmupSource = "warmup"

	// WarmupDelay keeps this instance busy long enough for the copies to land elsewhere
	WarmupDelay = 75 * time.Millisecond
)

type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// warmer starts count extra instances of this function.
type warmer interface {
	Warm(ctx context.Context, count int) error
}

// IsWarmupEvent reports whether event came from the warmup scheduler. Any
// event with the warmup source is one, even when its concurrency is not a
// usable number; such an event warms only this instance.
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var raw struct {
		Source      string          `json:"source"`
		Concurrency json.RawMessage `json:"concurrency"`
	}
	if err := json.Unmarshal(event, &raw); err != nil {
		return nil, false
	}

	if raw.Source != WarmupSource {
		return nil, false
	}

	return &WarmupEvent{
		Source:      raw.Source,
		Concurrency: parseConcurrency(raw.Concurrency),
	}, true
}

// parseConcurrency accepts 3 as well as "3". Anything else is 0.
func parseConcurrency(v json.RawMessage) int {
	if len(v) == 0 {
		return 0
	}

	var n int
	if err := json.Unmarshal(v, &n); err == nil {
		return max(n, 0)
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		logger.Log.Warn("ignoring warmup concurrency", zap.ByteString("concurrency", v))
		return 0
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		logger.Log.Warn("ignoring warmup concurrency", zap.String("concurrency", s))
		return 0
	}
	return max(n, 0)
}

// HandleWarmup answers a warmup event, invoking Concurrency more copies when asked.
func HandleWarmup(ctx context.Context, w warmer, warmup *WarmupEvent) (*WarmupResponse, error) {
	instancesWarmed := 1

	if warmup.Concurrency > 0 {
		if err := w.Warm(ctx, warmup.Concurrency); err != nil {
			logger.Log.Warn("warmup self-invoke failed", zap.Error(err))
		} else {
			instancesWarmed += warmup.Concurrency
		}
	}

	timer := time.NewTimer(WarmupDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &WarmupResponse{
		Status:          "warm",
		InstancesWarmed: instancesWarmed,
	}, nil
}

// lambdaWarmer invokes this function asynchronously through the Lambda API.
type lambdaWarmer struct{}

func (lambdaWarmer) Warm(ctx context.Context, count int) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}

	// copies get concurrency 0 so they do not invoke further copies
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return err
	}

	client := lambdasdk.NewFromConfig(cfg)
	functionName := os.Getenv("AWS_LAMBDA_FUNCTION_NAME")

	// every copy is attempted; the first failure is reported
	var g errgroup.Group
	for i := 0; i < count; i++ {
		g.Go(func() error {
			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			return err
		})
	}
	return g.Wait()
}
