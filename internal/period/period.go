// Package period разбирает даты/время записей и описывает отчётные окна.
package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

type Name string

const (
	Daily   Name = "day"
	Weekly  Name = "week"
	Monthly Name = "month"
)

var ErrUnknown = errors.New("unknown period")

// Predicate решает, попадает ли дата записи в окно.
type Predicate func(date time.Time) bool

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// ParseClock возвращает минуты от начала суток для "HH:MM".
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Match применяет p к строковой дате; неразбираемая дата не попадает ни в одно окно.
func (p Predicate) Match(date string) bool {
	d, err := ParseDate(date)
	if err != nil {
		return false
	}
	return p(d)
}

func Day(now time.Time) Predicate {
	y, m, d := now.Date()
	return func(date time.Time) bool {
		dy, dm, dd := date.Date()
		return dy == y && dm == m && dd == d
	}
}

// Week: ISO-8601 неделя (понедельник..воскресенье), год по четвергу.
func Week(now time.Time) Predicate {
	y, w := now.ISOWeek()
	return func(date time.Time) bool {
		dy, dw := date.ISOWeek()
		return dy == y && dw == w
	}
}

func Month(now time.Time) Predicate {
	y, m, _ := now.Date()
	return func(date time.Time) bool {
		dy, dm, _ := date.Date()
		return dy == y && dm == m
	}
}

func For(name Name, now time.Time) (Predicate, error) {
	switch name {
	case Daily, "":
		return Day(now), nil
	case Weekly:
		return Week(now), nil
	case Monthly:
		return Month(now), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknown, name)
}

// Bounds: первый и последний день окна, для подписей отчётов.
func Bounds(name Name, now time.Time) (from, to time.Time) {
	y, m, d := now.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	switch name {
	case Weekly:
		offset := (int(day.Weekday()) + 6) % 7
		from = day.AddDate(0, 0, -offset)
		return from, from.AddDate(0, 0, 6)
	case Monthly:
		from = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, -1)
	}
	return day, day
}
