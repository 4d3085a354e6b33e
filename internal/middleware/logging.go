package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
)

// LoggingInterceptor writes one line per unary call, keyed by the request ID
// that RequestIDInterceptor put on the context, so it goes after that one.
// Rejected calls carry their Connect code and, for ledger validation, how
// many faults were found; anything that is not a *connect.Error is an
// internal failure and logs at error level.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"request_id", GetRequestID(ctx),
				"duration_ms", time.Since(start).Milliseconds(),
			}

			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.InfoContext(ctx, "RPC ok", attrs...)
			case errors.As(err, &connectErr):
				attrs = append(attrs,
					"code", connectErr.Code(),
					"error", connectErr.Message(),
					"faults", len(calculator.Faults(connectErr.Unwrap())),
				)
				slog.WarnContext(ctx, "RPC rejected", attrs...)
			default:
				slog.ErrorContext(ctx, "RPC failed", append(attrs, "error", err)...)
			}

			return resp, err
		}
	}
}
