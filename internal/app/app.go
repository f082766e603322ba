package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/samvad-hq/line-login/internal/config"
	"github.com/samvad-hq/line-login/internal/logger"
	"github.com/samvad-hq/line-login/pkg/httpclient"
	"github.com/samvad-hq/line-login/pkg/linelogin"
)

// App runs single LINE Login calls and renders their results.
type App struct {
	cfg    *config.Config
	log    logger.Logger
	client *linelogin.Client
}

// New builds an App from config. Credentials may be empty; the provider
// rejects them when a call is made.
func New(cfg *config.Config, log logger.Logger, opts ...linelogin.Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = logger.NopLogger{}
	}

	base := []linelogin.Option{
		linelogin.WithBaseURL(cfg.APIBaseURL),
		linelogin.WithHTTPClient(httpclient.NewRestyClient(cfg.HTTPTimeout)),
	}
	client := linelogin.New(cfg.ClientID, cfg.ClientSecret, append(base, opts...)...)

	log.DebugObj("line login client ready", "client_config", map[string]any{
		"client_id":       cfg.ClientID,
		"base_url":        cfg.APIBaseURL,
		"timeout_seconds": int(cfg.HTTPTimeout.Seconds()),
	})

	return &App{cfg: cfg, log: log, client: client}, nil
}

// Client exposes the underlying API client.
func (a *App) Client() *linelogin.Client { return a.client }

// Run performs op, writes its result to w in the requested format and logs
// failures. The returned error is the call's own error, unchanged.
func (a *App) Run(ctx context.Context, w io.Writer, format, name string, op func(context.Context, *linelogin.Client) (any, error)) error {
	if format == "" {
		format = a.cfg.OutputFormat
	}
	if err := config.ValidateOutput(format); err != nil {
		return err
	}

	start := time.Now()
	result, err := op(ctx, a.client)
	if err != nil {
		a.log.ErrorObj("line login call failed", "call_error", describeError(name, err))
		return err
	}
	a.log.InfoObj("line login call completed", "call_meta", map[string]any{
		"operation":  name,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})

	return Render(w, format, result)
}

// describeError flattens a client error into loggable fields.
func describeError(name string, err error) map[string]any {
	fields := map[string]any{
		"operation": name,
		"status":    linelogin.StatusCode(err),
		"message":   err.Error(),
	}

	var (
		apiErr *linelogin.APIError
		trErr  *linelogin.TransportError
		sysErr *linelogin.SystemError
	)
	switch {
	case errors.As(err, &apiErr):
		fields["kind"] = "api"
		fields["error"] = apiErr.Body.Error
		fields["error_description"] = apiErr.Body.ErrorDescription
	case errors.As(err, &trErr):
		fields["kind"] = "transport"
	case errors.As(err, &sysErr):
		fields["kind"] = "system"
	default:
		fields["kind"] = "unknown"
	}
	return fields
}
