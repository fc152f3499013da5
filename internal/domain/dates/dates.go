// Package dates canonicalizes the date handling shared by the whole import
// pipeline: every persisted date is pinned to 12:00 UTC of its calendar day so
// that client timezones can never shift a date across midnight, and all
// day-count metrics are computed over those canonical instants.
package dates

import (
	"reflect"
	"regexp"
	"time"
)

// Excel serial dates count days since 1899-12-30 (the off-by-two epoch that
// absorbs Lotus 1-2-3's leap-year bug).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}(T|$)`)

var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Noon returns 12:00:00.000 UTC of t's calendar day.
func Noon(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC)
}

// IsNoon reports whether t is already exactly the canonical noon instant.
func IsNoon(t time.Time) bool {
	return t.Equal(Noon(t))
}

// LooksLikeDate reports whether a raw string is ISO-8601-shaped enough to be
// treated as a date by the normalizer.
func LooksLikeDate(s string) bool {
	return isoDatePattern.MatchString(s)
}

// ParseFlexible converts any date-like value to a noon-UTC instant:
// time.Time values, ISO-8601-ish strings, and Excel serial-date numbers.
// Returns false for everything else, including malformed date strings.
func ParseFlexible(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return Noon(d), true
	case *time.Time:
		if d == nil {
			return time.Time{}, false
		}
		return Noon(*d), true
	case string:
		if !LooksLikeDate(d) {
			return time.Time{}, false
		}
		for _, layout := range parseLayouts {
			if t, err := time.Parse(layout, d); err == nil {
				return Noon(t), true
			}
		}
		return time.Time{}, false
	case float64:
		return Noon(excelEpoch.Add(time.Duration(d * float64(24*time.Hour)))), true
	case int:
		return Noon(excelEpoch.AddDate(0, 0, d)), true
	case int64:
		return Noon(excelEpoch.AddDate(0, 0, int(d))), true
	default:
		return time.Time{}, false
	}
}

// BusinessDays counts Monday-to-Friday days in the half-open interval
// [start, end). Both bounds are noon-normalized first; a reversed interval
// counts as 0, never negative. BusinessDays(x, x) == 0.
func BusinessDays(start, end time.Time) int {
	s := Noon(start)
	e := Noon(end)
	if e.Before(s) {
		return 0
	}

	days := 0
	for cur := s; cur.Before(e); cur = cur.AddDate(0, 0, 1) {
		switch cur.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}

// SubtractBusinessDays walks backwards from t one calendar day at a time,
// counting only Mon-Fri decrements, until n business days have been
// subtracted. Used by the exact-lead-time SLA rules to find the one target
// date that counts as compliant.
func SubtractBusinessDays(t time.Time, n int) time.Time {
	target := Noon(t)
	for count := 0; count < n; {
		target = target.AddDate(0, 0, -1)
		switch target.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return target
}

const maxNormalizeDepth = 10

// Keys and struct fields the normalizer never touches: identifiers, audit
// timestamps and version markers are bookkeeping, not business dates.
var skippedFields = map[string]bool{
	"ID":        true,
	"CreatedAt": true,
	"UpdatedAt": true,
	"id":        true,
	"_id":       true,
	"createdAt": true,
	"updatedAt": true,
	"__v":       true,
}

// NormalizeInPlace walks a composite value (struct pointer, map, slice) to
// arbitrary depth and rewrites every date member to noon UTC: time.Time and
// *time.Time fields are pinned in place, and ISO-looking strings inside
// map[string]any payloads are replaced with parsed noon instants. Reports
// whether anything actually changed so callers can skip unnecessary writes.
//
// Revisited composites are not reprocessed and descent stops past a fixed
// depth; the guard never fails, it just stops descending.
func NormalizeInPlace(v any) bool {
	if v == nil {
		return false
	}
	seen := map[uintptr]bool{}
	return normalizeValue(reflect.ValueOf(v), seen, 0)
}

func normalizeValue(rv reflect.Value, seen map[uintptr]bool, depth int) bool {
	if depth > maxNormalizeDepth || !rv.IsValid() {
		return false
	}

	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		if rv.Type() == reflect.TypeOf((*time.Time)(nil)) {
			return normalizeTime(rv.Elem())
		}
		ptr := rv.Pointer()
		if seen[ptr] {
			return false
		}
		seen[ptr] = true
		return normalizeValue(rv.Elem(), seen, depth+1)

	case reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return normalizeValue(rv.Elem(), seen, depth+1)

	case reflect.Struct:
		if rv.Type() == reflect.TypeOf(time.Time{}) {
			return normalizeTime(rv)
		}
		changed := false
		for i := 0; i < rv.NumField(); i++ {
			if skippedFields[rv.Type().Field(i).Name] {
				continue
			}
			if normalizeValue(rv.Field(i), seen, depth+1) {
				changed = true
			}
		}
		return changed

	case reflect.Slice, reflect.Array:
		changed := false
		for i := 0; i < rv.Len(); i++ {
			if normalizeValue(rv.Index(i), seen, depth+1) {
				changed = true
			}
		}
		return changed

	case reflect.Map:
		changed := false
		for _, key := range rv.MapKeys() {
			if key.Kind() == reflect.String && skippedFields[key.String()] {
				continue
			}
			val := rv.MapIndex(key)
			newVal, replaced, entryChanged := normalizeMapValue(val, seen, depth+1)
			if replaced {
				rv.SetMapIndex(key, newVal)
			}
			if entryChanged {
				changed = true
			}
		}
		return changed

	default:
		return false
	}
}

// normalizeMapValue handles map entries, which are not addressable: date-like
// values are replaced wholesale, composites are descended into.
func normalizeMapValue(val reflect.Value, seen map[uintptr]bool, depth int) (newVal reflect.Value, replaced, changed bool) {
	if depth > maxNormalizeDepth || !val.IsValid() {
		return reflect.Value{}, false, false
	}

	inner := val
	if inner.Kind() == reflect.Interface && !inner.IsNil() {
		inner = inner.Elem()
	}

	switch inner.Kind() {
	case reflect.Struct:
		if t, ok := inner.Interface().(time.Time); ok {
			if IsNoon(t) {
				return reflect.Value{}, false, false
			}
			return reflect.ValueOf(any(Noon(t))), true, true
		}
	case reflect.String:
		if t, ok := ParseFlexible(inner.String()); ok {
			return reflect.ValueOf(any(t)), true, true
		}
	case reflect.Map, reflect.Slice, reflect.Pointer:
		// Mutate the nested composite in place; the entry itself stays.
		return reflect.Value{}, false, normalizeValue(inner, seen, depth)
	}
	return reflect.Value{}, false, false
}

func normalizeTime(rv reflect.Value) bool {
	t, ok := rv.Interface().(time.Time)
	if !ok || t.IsZero() || IsNoon(t) {
		return false
	}
	if !rv.CanSet() {
		return false
	}
	rv.Set(reflect.ValueOf(Noon(t)))
	return true
}
