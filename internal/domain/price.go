package domain

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar day. It marshals as "2006-01-02" so price rows
// carry no intraday component over the wire.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("invalid date %s: %w", string(b), err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = Date{t}
	return nil
}

type PricePoint struct {
	Date  Date    `json:"date"`
	Close float64 `json:"close"`
}

// PriceSeries is ordered by date ascending with unique dates. It is
// built once by the price source and never mutated afterwards.
type PriceSeries []PricePoint

func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Close
	}
	return out
}

func (s PriceSeries) First() PricePoint {
	return s[0]
}

func (s PriceSeries) Last() PricePoint {
	return s[len(s)-1]
}
