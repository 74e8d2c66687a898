package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/smithy-go/logging"
	"github.com/jumppad-labs/rdsecho/pkg/clients/logger"
)

// LoadConfig resolves credentials and settings for region from the default
// provider chain. SDK retries are disabled, the only retried calls are tag
// reads which carry their own backoff.
func LoadConfig(ctx context.Context, region string, l logger.Logger) (aws.Config, error) {
	mode := aws.ClientLogMode(0)
	if l.IsTrace() {
		mode = aws.LogRequest | aws.LogResponse
	}

	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(region),
		config.WithLogger(NewLogAdapter(l)),
		config.WithClientLogMode(mode),
		config.WithRetryer(func() aws.Retryer { return aws.NopRetryer{} }),
	)

	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load AWS configuration: %w", err)
	}

	return cfg, nil
}

// LogAdapter writes SDK log messages to a Logger
type LogAdapter struct {
	log logger.Logger
}

// NewLogAdapter creates a smithy logger that forwards to l
func NewLogAdapter(l logger.Logger) *LogAdapter {
	return &LogAdapter{l}
}

// Logf implements logging.Logger, warnings are logged as warnings and
// everything else at debug
func (a *LogAdapter) Logf(c logging.Classification, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)

	switch c {
	case logging.Warn:
		a.log.Warn(msg, "source", "aws")
	default:
		a.log.Debug(msg, "source", "aws")
	}
}
