package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Entity records the data-model entity name under the key "entity".
func Entity(name string) slog.Attr {
	return slog.String("entity", name)
}

// Field records the entity field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Stage records the lifecycle stage under the key "stage".
func Stage(stage string) slog.Attr {
	return slog.String("stage", stage)
}

// Fields records failing field names under the key "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}
