package entity

import (
	"database/sql/driver"
	"fmt"
)

// Rating is an optional promotional ordinal. Value 1 means first place,
// 5 means fifth place, zero means unrated. Among siblings at most one
// entity may hold a given value; writes clear the previous holder.
type Rating int16

const (
	RatingUnset Rating = 0
	RatingMin   Rating = 1
	RatingMax   Rating = 5
)

func (r Rating) IsSet() bool {
	return r >= RatingMin && r <= RatingMax
}

// Before reports whether r sorts ahead of other. Rated entries come first
// in ascending order (1 = first place); unrated entries sort after any
// rated one.
func (r Rating) Before(other Rating) bool {
	if r.IsSet() != other.IsSet() {
		return r.IsSet()
	}
	return r < other
}

func (r Rating) String() string {
	if !r.IsSet() {
		return "-"
	}
	return fmt.Sprintf("%d", int16(r))
}

// Value implements driver.Valuer, storing unrated as NULL.
func (r Rating) Value() (driver.Value, error) {
	if !r.IsSet() {
		return nil, nil
	}
	return int64(r), nil
}

// Scan implements sql.Scanner, mapping NULL back to RatingUnset.
func (r *Rating) Scan(value interface{}) error {
	if value == nil {
		*r = RatingUnset
		return nil
	}
	switch v := value.(type) {
	case int64:
		*r = Rating(v)
	case int32:
		*r = Rating(v)
	case int16:
		*r = Rating(v)
	default:
		return fmt.Errorf("unsupported rating value: %v", value)
	}
	return nil
}
