package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/cenkalti/backoff/v5"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
)

// ErrConnect is returned by Connect once every attempt has failed.
var ErrConnect = errors.New("database: connect failed")

// ConnectOptions bounds the retry policy of Connect.
type ConnectOptions struct {
	Database       string
	Attempts       uint
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Logger         *slog.Logger
}

// Dialer opens a client and checks it is usable. Tests substitute it.
type Dialer func(ctx context.Context, database string) (*spanner.Client, error)

// Connect opens a Spanner client and verifies it with a trivial query,
// retrying with exponential backoff up to opts.Attempts times.
func Connect(ctx context.Context, opts ConnectOptions) (*spanner.Client, error) {
	return connect(ctx, opts, dialSpanner)
}

func connect(ctx context.Context, opts ConnectOptions, dial Dialer) (*spanner.Client, error) {
	if opts.Attempts == 0 {
		opts.Attempts = 1
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	b := backoff.NewExponentialBackOff()
	if opts.InitialBackoff > 0 {
		b.InitialInterval = opts.InitialBackoff
	}
	if opts.MaxBackoff > 0 {
		b.MaxInterval = opts.MaxBackoff
	}

	attempt := 0
	client, err := backoff.Retry(ctx, func() (*spanner.Client, error) {
		attempt++
		c, err := dial(ctx, opts.Database)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return c, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(opts.Attempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			opts.Logger.Warn("database connect attempt failed",
				"attempt", attempt, "max_attempts", opts.Attempts, "retry_in", next, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w after %d attempt(s): %w", ErrConnect, attempt, err)
	}
	opts.Logger.Info("database connected", "database", opts.Database, "attempts", attempt)
	return client, nil
}

func dialSpanner(ctx context.Context, database string) (*spanner.Client, error) {
	client, err := spanner.NewClient(ctx, database)
	if err != nil {
		return nil, err
	}
	if err := Ping(ctx, client); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// Ping runs SELECT 1 against the database.
func Ping(ctx context.Context, client *spanner.Client) error {
	iter := client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()
	_, err := iter.Next()
	if err == iterator.Done {
		return nil
	}
	return err
}

// IsUnavailable reports whether err means the database could not be reached,
// as opposed to a problem with the request itself.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConnect) {
		return true
	}
	switch spanner.ErrCode(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	}
	return false
}

func retryable(err error) bool {
	switch spanner.ErrCode(err) {
	case codes.InvalidArgument, codes.NotFound, codes.PermissionDenied, codes.Unauthenticated:
		return false
	}
	return !errors.Is(err, context.Canceled)
}
