// Package render holds the null-safe primitives every description section is
// built from. Optional values are never checked ad hoc by section code: they
// go through If, and long text goes through Truncate.
package render

import (
	"log/slog"
	"math"
	"reflect"

	"github.com/lysyi3m/apogee-rss/app/metrics"
)

const Ellipsis = "..."

// If returns fn(value) when value is present, otherwise the output of the first
// fallback (or "" when none is given). fn is never called for an absent value.
// A panic inside fn is recovered, logged and treated as absent.
func If[T any](value T, fn func(T) string, fallback ...func() string) (out string) {
	if IsAbsent(value) {
		return orElse(fallback)
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Recovered render fault", "value_type", reflect.TypeOf(value), "panic", r)
			metrics.RenderFaultsTotal.Inc()
			out = orElse(fallback)
		}
	}()

	return fn(value)
}

// IsAbsent reports whether value counts as missing: nil, empty string, empty
// slice or map, or NaN. Pointers are looked through, so a pointer to "" or to
// NaN is absent as well.
func IsAbsent(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	case bool, int, int64:
		return false
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return true
		}
		return IsAbsent(rv.Elem().Interface())
	case reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() == 0
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	}

	return false
}

// Truncate cuts text to max characters and appends an ellipsis. Text that
// already fits is returned unchanged.
func Truncate(text string, max int) string {
	if max < 0 {
		max = 0
	}

	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	return string(runes[:max]) + Ellipsis
}

func orElse(fallback []func() string) string {
	if len(fallback) == 0 || fallback[0] == nil {
		return ""
	}
	return fallback[0]()
}
