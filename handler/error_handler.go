package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/petadopt/pkg/logger"
	"github.com/dmitrymomot/petadopt/pkg/requestid"
)

type ErrorPageParams struct {
	Error      string
	StatusCode int
	RequestID  string
	RetryURL   string
}

type ErrorToastParams struct {
	Message   string
	Type      string // "error", "warning", "info"
	RequestID string
}

// ErrorHandlerConfig configures NewErrorHandler.
type ErrorHandlerConfig struct {
	// ErrorPage renders a full page for regular requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a notification for DataStar requests.
	ErrorToast func(ErrorToastParams) templ.Component

	// ToastTarget defaults to "#toast-container".
	ToastTarget string

	// ToastMode defaults to PatchPrepend.
	ToastMode datastar.ElementPatchMode

	// Translate turns an HTTPError key into a user-facing message. Keys are
	// shown as-is when nil.
	Translate func(ctx context.Context, key string) string
}

// ErrorInfo is the classified form of an error.
type ErrorInfo struct {
	StatusCode int
	Key        string
	Type       string
	LogLevel   slog.Level
}

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

func determineErrorType(statusCode int) string {
	switch {
	case isClientError(statusCode):
		return "warning"
	case statusCode >= http.StatusInternalServerError:
		return "error"
	default:
		return "info"
	}
}

func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Key:        ErrInternalServerError.Key,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Key = httpErr.Key
	}

	// validation errors win over an HTTPError joined with them
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		info.StatusCode = http.StatusBadRequest
		info.Key = ErrBadRequest.Key
	}

	info.Type = determineErrorType(info.StatusCode)
	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

// NewErrorHandler returns the application error handler. JSON clients get
// JSONError, DataStar requests a toast patch, everyone else an error page.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}
	if cfg.ToastMode == "" {
		cfg.ToastMode = PatchPrepend
	}
	if cfg.Translate == nil {
		cfg.Translate = func(_ context.Context, key string) string { return key }
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		w := ctx.ResponseWriter()
		reqID := requestid.FromContext(r.Context())
		info := classifyError(err)
		message := cfg.Translate(r.Context(), info.Key)

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(reqID),
			logger.Error(err),
			logger.HTTPRequest(r.Method, r.URL.Path, info.StatusCode),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		var resp Response
		switch {
		case WantsJSON(r):
			opts := []JSONOption{WithJSONStatus(info.StatusCode)}
			var validationErr ValidationError
			if !errors.As(err, &validationErr) {
				opts = append(opts, WithJSONMessage(message))
			}
			resp = JSONError(err, opts...)
		case IsDataStar(r):
			if cfg.ErrorToast == nil {
				return
			}
			resp = Templ(cfg.ErrorToast(ErrorToastParams{
				Message:   message,
				Type:      info.Type,
				RequestID: reqID,
			}), WithTarget(cfg.ToastTarget), WithPatchMode(cfg.ToastMode))
		case cfg.ErrorPage == nil:
			http.Error(w, message, info.StatusCode)
			return
		default:
			resp = TemplStatus(info.StatusCode, cfg.ErrorPage(ErrorPageParams{
				Error:      message,
				StatusCode: info.StatusCode,
				RequestID:  reqID,
				RetryURL:   r.URL.Path,
			}))
		}

		if renderErr := resp.Render(w, r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.RequestID(reqID),
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
