package encounter

import (
	"context"
	"log/slog"
	"time"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/retry"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-dungeon-map/internal/errors"
)

// DialOptions tunes the connection to rpg-api
type DialOptions struct {
	// MaxRetries for Unavailable and ResourceExhausted responses (default 3)
	MaxRetries uint
	// RetryBackoff between attempts (default 200ms)
	RetryBackoff time.Duration
	// Extra options appended after the defaults, e.g. a bufconn dialer in tests
	Extra []grpc.DialOption
}

// Dial creates a connection to the rpg-api gRPC server with call logging and
// retries installed
func Dial(target string, opts *DialOptions) (*grpc.ClientConn, error) {
	if target == "" {
		return nil, errors.InvalidArgument("target is required")
	}
	if opts == nil {
		opts = &DialOptions{}
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryBackoff == 0 {
		opts.RetryBackoff = 200 * time.Millisecond
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(
			grpc_logging.UnaryClientInterceptor(
				grpc_logging.LoggerFunc(logFunc),
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
			),
			grpc_retry.UnaryClientInterceptor(
				grpc_retry.WithMax(opts.MaxRetries),
				grpc_retry.WithBackoff(grpc_retry.BackoffLinear(opts.RetryBackoff)),
				grpc_retry.WithCodes(codes.Unavailable, codes.ResourceExhausted),
			),
		),
	}
	dialOpts = append(dialOpts, opts.Extra...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to connect to %s", target)
	}

	return conn, nil
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
