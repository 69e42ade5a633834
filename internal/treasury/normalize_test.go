package treasury

import (
	"reflect"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize_LastWins(t *testing.T) {
	raw := []PricePoint{
		{Date: day(2024, 1, 2), Price: 1},
		{Date: day(2024, 1, 1), Price: 5},
		{Date: day(2024, 1, 2), Price: 3},
	}

	got := Normalize(raw)

	want := TimeSeries{
		{Date: day(2024, 1, 1), Price: 5},
		{Date: day(2024, 1, 2), Price: 3},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize() = %v, want %v", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	raw := []PricePoint{
		{Date: day(2024, 3, 5), Price: 10},
		{Date: day(2024, 3, 1), Price: 20},
		{Date: day(2024, 3, 5), Price: 30},
		{Date: day(2024, 3, 3), Price: 40},
	}

	once := Normalize(raw)
	twice := Normalize(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Normalize() not idempotent: first %v, second %v", once, twice)
	}
}

func TestNormalize_AscendingUniqueDates(t *testing.T) {
	tests := []struct {
		name string
		raw  []PricePoint
	}{
		{
			name: "empty input",
			raw:  nil,
		},
		{
			name: "shuffled with duplicates",
			raw: []PricePoint{
				{Date: day(2024, 2, 10), Price: 1},
				{Date: day(2024, 2, 1), Price: 2},
				{Date: day(2024, 2, 10), Price: 3},
				{Date: day(2024, 2, 5), Price: 4},
				{Date: day(2024, 2, 1), Price: 5},
			},
		},
		{
			name: "already normalized",
			raw: []PricePoint{
				{Date: day(2024, 2, 1), Price: 2},
				{Date: day(2024, 2, 2), Price: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)

			for i := 1; i < len(got); i++ {
				if !got[i-1].Date.Before(got[i].Date) {
					t.Errorf("Normalize() not strictly ascending at %d: %v, %v",
						i, got[i-1].Date, got[i].Date)
				}
			}
		})
	}
}

func TestNormalize_TruncatesToDay(t *testing.T) {
	raw := []PricePoint{
		{Date: time.Date(2024, 1, 2, 15, 30, 45, 0, time.UTC), Price: 7},
	}

	got := Normalize(raw)

	if len(got) != 1 {
		t.Fatalf("Normalize() returned %d points, want 1", len(got))
	}
	if !got[0].Date.Equal(day(2024, 1, 2)) {
		t.Errorf("Normalize() date = %v, want %v", got[0].Date, day(2024, 1, 2))
	}
}

func TestNormalize_SubDayDuplicatesCollapse(t *testing.T) {
	// Two timestamps on the same calendar day: the later input entry wins.
	raw := []PricePoint{
		{Date: time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC), Price: 100},
		{Date: time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC), Price: 200},
	}

	got := Normalize(raw)

	if len(got) != 1 {
		t.Fatalf("Normalize() returned %d points, want 1", len(got))
	}
	if got[0].Price != 200 {
		t.Errorf("Normalize() price = %v, want 200 (last entry wins)", got[0].Price)
	}
}
