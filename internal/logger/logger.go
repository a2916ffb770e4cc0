package logger

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
)

func Setup(dev bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if dev {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	if dev {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, FormatTimestamp: func(i any) string {
			return time.Now().Format(time.RFC3339)
		}}).With().Caller().Stack().Logger()
	}

	return logger
}

// Invocations wraps a Lambda handler so every invocation carries a request scoped
// logger in its context and is logged on completion.
func Invocations[E any](logger zerolog.Logger, next func(context.Context, E) error) func(context.Context, E) error {
	return func(ctx context.Context, event E) error {
		started := time.Now()

		lc := logger.With()
		if meta, ok := lambdacontext.FromContext(ctx); ok {
			lc = lc.Str("request_id", meta.AwsRequestID)
		}
		ctx = lc.Logger().WithContext(ctx)

		err := next(ctx, event)
		if err != nil {
			zerolog.Ctx(ctx).Error().
				Err(err).
				Dur("duration", time.Since(started)).
				Msg("invocation failed")
			return err
		}

		zerolog.Ctx(ctx).Info().
			Dur("duration", time.Since(started)).
			Msg("invocation")
		return nil
	}
}
