package helpers

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TextOrEmpty returns the string value of a nullable text, or "" when NULL.
func TextOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

// TextFromString wraps a string into a pgtype.Text. The empty string maps
// to NULL.
func TextFromString(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// TextFromPtr wraps an optional string into a pgtype.Text. Nil and the
// empty string map to NULL.
func TextFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return TextFromString(*s)
}

// Int4FromPtr wraps an optional int32 into a pgtype.Int4. Nil maps to NULL.
func Int4FromPtr(i *int32) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *i, Valid: true}
}

// Int4Ptr returns a pointer to the int32 value, or nil when NULL.
func Int4Ptr(i pgtype.Int4) *int32 {
	if !i.Valid {
		return nil
	}
	v := i.Int32
	return &v
}

// TimeOrZero returns the time value of a nullable timestamptz, or the zero
// time when NULL.
func TimeOrZero(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// TimePtr returns a pointer to the timestamptz value, or nil when NULL.
func TimePtr(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// TimestamptzFromTime wraps a time into a pgtype.Timestamptz.
func TimestamptzFromTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateFromTime wraps a time into a pgtype.Date.
func DateFromTime(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}

// DateFromPtr wraps an optional time into a pgtype.Date. Nil maps to NULL.
func DateFromPtr(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

// DatePtr returns a pointer to the date value, or nil when NULL.
func DatePtr(d pgtype.Date) *time.Time {
	if !d.Valid {
		return nil
	}
	v := d.Time
	return &v
}

// DateString formats a nullable date as YYYY-MM-DD, or "" when NULL.
func DateString(d pgtype.Date) string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}
