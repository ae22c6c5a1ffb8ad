package task

import (
	"encoding/json"
	"time"
)

const layoutISO = "2006-01-02"

// ParseDate parses an ISO calendar date, for example "2024-01-31".
func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// Date is a calendar day with no time-of-day component. It marshals to the
// ISO form the persisted documents have always used.
type Date struct {
	time.Time
}

func (d Date) Valid() bool {
	return !d.IsZero()
}

// Between reports whether the date falls within [start, end] inclusive.
func (d Date) Between(start, end time.Time) bool {
	if d.IsZero() {
		return false
	}
	return !d.Time.Before(start) && !d.Time.After(end)
}

func (d *Date) MarshalJSON() ([]byte, error) {
	if d == nil || d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON tolerates unparsable stored dates: the record loads with a
// zero date instead of failing the whole document.
func (d *Date) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		d.Time = time.Time{}
		return nil
	}
	d.Time = t
	return nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(layoutISO)
}
