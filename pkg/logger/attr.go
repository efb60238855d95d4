package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// DocumentKind records the identifier kind ("cpf", "cnpj") under "document_kind".
func DocumentKind(kind string) slog.Attr {
	return slog.String("document_kind", kind)
}

// Reason records a rejection reason code under the key "reason".
func Reason(reason string) slog.Attr {
	if reason == "" {
		return slog.Attr{}
	}
	return slog.String("reason", reason)
}

// Field records the name of an input field under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Value records an already masked input value under the key "value".
func Value(masked string) slog.Attr {
	return slog.String("value", masked)
}

// Duration records d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
