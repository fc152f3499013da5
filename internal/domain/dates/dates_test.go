package dates

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestNoon(t *testing.T) {
	t.Run("pins any instant to noon utc of its day", func(t *testing.T) {
		in := time.Date(2024, time.March, 15, 23, 30, 0, 0, time.FixedZone("x", 5*3600))
		got := Noon(in)
		want := day(2024, time.March, 15) // 23:30+05:00 is 18:30 UTC, same day
		if !got.Equal(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		in := time.Date(2024, time.July, 1, 3, 4, 5, 6, time.UTC)
		once := Noon(in)
		if !Noon(once).Equal(once) {
			t.Fatalf("Noon(Noon(t)) != Noon(t)")
		}
		if !IsNoon(once) {
			t.Fatalf("expected IsNoon to hold after Noon")
		}
	})
}

func TestParseFlexible(t *testing.T) {
	t.Run("iso date string", func(t *testing.T) {
		got, ok := ParseFlexible("2024-03-15")
		if !ok || !got.Equal(day(2024, time.March, 15)) {
			t.Fatalf("expected noon 2024-03-15, got %v ok=%v", got, ok)
		}
	})

	t.Run("rfc3339 string", func(t *testing.T) {
		got, ok := ParseFlexible("2024-03-15T18:45:00Z")
		if !ok || !got.Equal(day(2024, time.March, 15)) {
			t.Fatalf("expected noon 2024-03-15, got %v ok=%v", got, ok)
		}
	})

	t.Run("excel serial int", func(t *testing.T) {
		got, ok := ParseFlexible(45357) // 2024-03-06
		if !ok || !got.Equal(day(2024, time.March, 6)) {
			t.Fatalf("expected noon 2024-03-06, got %v ok=%v", got, ok)
		}
	})

	t.Run("excel serial float", func(t *testing.T) {
		got, ok := ParseFlexible(45357.0)
		if !ok || !got.Equal(day(2024, time.March, 6)) {
			t.Fatalf("expected noon 2024-03-06, got %v ok=%v", got, ok)
		}
	})

	t.Run("time value", func(t *testing.T) {
		got, ok := ParseFlexible(time.Date(2024, time.May, 2, 1, 2, 3, 0, time.UTC))
		if !ok || !got.Equal(day(2024, time.May, 2)) {
			t.Fatalf("expected noon 2024-05-02, got %v ok=%v", got, ok)
		}
	})

	t.Run("non date string", func(t *testing.T) {
		if _, ok := ParseFlexible("not a date"); ok {
			t.Fatalf("expected failure for free text")
		}
	})

	t.Run("date shaped but invalid", func(t *testing.T) {
		if _, ok := ParseFlexible("2024-13-99"); ok {
			t.Fatalf("expected failure for invalid calendar date")
		}
	})

	t.Run("nil pointer", func(t *testing.T) {
		var p *time.Time
		if _, ok := ParseFlexible(p); ok {
			t.Fatalf("expected failure for nil pointer")
		}
	})
}

func TestBusinessDays(t *testing.T) {
	t.Run("full week is five", func(t *testing.T) {
		start := day(2024, time.March, 4)  // Monday
		end := day(2024, time.March, 11)   // next Monday
		if got := BusinessDays(start, end); got != 5 {
			t.Fatalf("expected 5, got %d", got)
		}
	})

	t.Run("half open excludes end", func(t *testing.T) {
		start := day(2024, time.March, 4) // Monday
		end := day(2024, time.March, 5)   // Tuesday
		if got := BusinessDays(start, end); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("weekend skipped", func(t *testing.T) {
		start := day(2024, time.March, 8) // Friday
		end := day(2024, time.March, 11)  // Monday
		if got := BusinessDays(start, end); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})

	t.Run("same day is zero", func(t *testing.T) {
		d := day(2024, time.March, 6)
		if got := BusinessDays(d, d); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("reversed interval is zero", func(t *testing.T) {
		if got := BusinessDays(day(2024, time.March, 11), day(2024, time.March, 4)); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("time of day does not matter", func(t *testing.T) {
		start := time.Date(2024, time.March, 4, 23, 59, 0, 0, time.UTC)
		end := time.Date(2024, time.March, 5, 0, 1, 0, 0, time.UTC)
		if got := BusinessDays(start, end); got != 1 {
			t.Fatalf("expected 1, got %d", got)
		}
	})
}

func TestSubtractBusinessDays(t *testing.T) {
	t.Run("skips weekend backwards", func(t *testing.T) {
		got := SubtractBusinessDays(day(2024, time.March, 4), 1) // Monday - 1 = Friday
		if !got.Equal(day(2024, time.March, 1)) {
			t.Fatalf("expected 2024-03-01, got %v", got)
		}
	})

	t.Run("midweek", func(t *testing.T) {
		got := SubtractBusinessDays(day(2024, time.March, 6), 2) // Wednesday - 2 = Monday
		if !got.Equal(day(2024, time.March, 4)) {
			t.Fatalf("expected 2024-03-04, got %v", got)
		}
	})

	t.Run("zero returns noon of same day", func(t *testing.T) {
		in := time.Date(2024, time.March, 6, 3, 0, 0, 0, time.UTC)
		if got := SubtractBusinessDays(in, 0); !got.Equal(day(2024, time.March, 6)) {
			t.Fatalf("expected noon 2024-03-06, got %v", got)
		}
	})
}

func TestNormalizeInPlace(t *testing.T) {
	type record struct {
		ID       string
		When     *time.Time
		Exact    time.Time
		Children []record
	}

	t.Run("pins struct dates", func(t *testing.T) {
		raw := time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC)
		rec := record{
			ID:    "abc",
			When:  &raw,
			Exact: time.Date(2024, time.April, 1, 23, 0, 0, 0, time.UTC),
		}
		if !NormalizeInPlace(&rec) {
			t.Fatalf("expected a change report")
		}
		if !rec.When.Equal(day(2024, time.March, 15)) {
			t.Fatalf("pointer date not pinned: %v", rec.When)
		}
		if !rec.Exact.Equal(day(2024, time.April, 1)) {
			t.Fatalf("value date not pinned: %v", rec.Exact)
		}
	})

	t.Run("descends into slices", func(t *testing.T) {
		raw := time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC)
		rec := record{Children: []record{{When: &raw}}}
		if !NormalizeInPlace(&rec) {
			t.Fatalf("expected a change report")
		}
		if !rec.Children[0].When.Equal(day(2024, time.March, 15)) {
			t.Fatalf("nested date not pinned: %v", rec.Children[0].When)
		}
	})

	t.Run("rewrites iso strings in maps", func(t *testing.T) {
		payload := map[string]any{
			"actual_ship_date": "2024-03-15",
			"master_bl":        "MBL-1",
			"id":               "2024-03-15", // skipped key, must stay a string
		}
		if !NormalizeInPlace(payload) {
			t.Fatalf("expected a change report")
		}
		got, ok := payload["actual_ship_date"].(time.Time)
		if !ok || !got.Equal(day(2024, time.March, 15)) {
			t.Fatalf("expected noon time, got %#v", payload["actual_ship_date"])
		}
		if payload["master_bl"] != "MBL-1" {
			t.Fatalf("non-date string rewritten: %#v", payload["master_bl"])
		}
		if payload["id"] != "2024-03-15" {
			t.Fatalf("skipped key rewritten: %#v", payload["id"])
		}
	})

	t.Run("nested maps", func(t *testing.T) {
		payload := map[string]any{
			"postshipment": map[string]any{"actual_ship_date": "2024-03-15"},
		}
		if !NormalizeInPlace(payload) {
			t.Fatalf("expected a change report")
		}
		inner := payload["postshipment"].(map[string]any)
		if _, ok := inner["actual_ship_date"].(time.Time); !ok {
			t.Fatalf("nested date not rewritten: %#v", inner["actual_ship_date"])
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		raw := time.Date(2024, time.March, 15, 8, 30, 0, 0, time.UTC)
		rec := record{When: &raw}
		NormalizeInPlace(&rec)
		if NormalizeInPlace(&rec) {
			t.Fatalf("second pass reported changes")
		}
	})

	t.Run("nil input", func(t *testing.T) {
		if NormalizeInPlace(nil) {
			t.Fatalf("nil input reported changes")
		}
	})
}
