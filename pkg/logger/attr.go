package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil err yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func AnimalID(id int64) slog.Attr {
	return slog.Int64("animal_id", id)
}

// Field records a form field identifier.
func Field(id string) slog.Attr {
	return slog.String("field", id)
}

func Query(q string) slog.Attr {
	return slog.String("query", q)
}

func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// HTTPRequest groups the method, path and status of a served request.
func HTTPRequest(method, path string, status int) slog.Attr {
	return slog.Group("http",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)
}
