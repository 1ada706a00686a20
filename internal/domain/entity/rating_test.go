package entity

import (
	"sort"
	"testing"
)

func TestRatingBefore(t *testing.T) {
	tests := []struct {
		name string
		a, b Rating
		want bool
	}{
		{"lower rated first", 1, 2, true},
		{"higher rated later", 3, 1, false},
		{"rated before unrated", 5, RatingUnset, true},
		{"unrated after rated", RatingUnset, 5, false},
		{"unrated not before unrated", RatingUnset, RatingUnset, false},
		{"equal not before", 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Before(tt.b); got != tt.want {
				t.Errorf("Rating(%d).Before(%d) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRatingOrdering(t *testing.T) {
	ratings := []Rating{RatingUnset, 3, 1, RatingUnset, 5, 2}
	sort.SliceStable(ratings, func(i, j int) bool {
		return ratings[i].Before(ratings[j])
	})

	want := []Rating{1, 2, 3, 5, RatingUnset, RatingUnset}
	for i := range want {
		if ratings[i] != want[i] {
			t.Fatalf("sorted ratings = %v, want %v", ratings, want)
		}
	}
}

func TestRatingValue(t *testing.T) {
	v, err := RatingUnset.Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != nil {
		t.Errorf("unset rating Value() = %v, want nil", v)
	}

	v, err = Rating(4).Value()
	if err != nil {
		t.Fatalf("Value() error: %v", err)
	}
	if v != int64(4) {
		t.Errorf("Value() = %v, want 4", v)
	}
}

func TestRatingScan(t *testing.T) {
	var r Rating
	if err := r.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error: %v", err)
	}
	if r.IsSet() {
		t.Errorf("rating scanned from NULL should be unset")
	}

	if err := r.Scan(int64(2)); err != nil {
		t.Fatalf("Scan(2) error: %v", err)
	}
	if r != 2 {
		t.Errorf("scanned rating = %d, want 2", r)
	}
}
