package models

import (
	"reflect"
	"strconv"
)

// Number is the set of scalar element types the writers accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ─── shared formatting helpers ──────────────────────────────────────────

func itoa64(v int64) string  { return strconv.FormatInt(v, 10) }
func utoa64(v uint64) string { return strconv.FormatUint(v, 10) }
func ftoa(v float64, bits int) string {
	return strconv.FormatFloat(v, 'g', -1, bits)
}

// FormatValue renders v with Go's default text conversion: decimal for
// integers, shortest round-trip 'g' form for floats (the same text fmt's %v
// produces).
func FormatValue[T Number](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return itoa64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return utoa64(rv.Uint())
	case reflect.Float32:
		return ftoa(rv.Float(), 32)
	default:
		return ftoa(rv.Float(), 64)
	}
}
