package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidDayOfWeek возвращается при значении дня недели вне закрытого множества
var ErrInvalidDayOfWeek = errors.New("invalid day of week")

// DayOfWeek is a closed seven-value enumeration of weekdays.
// Values outside the set are rejected at the boundary, never stored.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// AllDaysOfWeek дни недели в ISO-порядке (понедельник первый)
var AllDaysOfWeek = []DayOfWeek{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// ParseDayOfWeek валидирует строку против закрытого множества дней недели.
// Регистр не учитывается: "Monday" и "monday" эквивалентны.
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	day := DayOfWeek(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range AllDaysOfWeek {
		if day == valid {
			return day, nil
		}
	}
	return "", ErrInvalidDayOfWeek
}

// DayOfWeekFromDate возвращает день недели для календарной даты
func DayOfWeekFromDate(date time.Time) DayOfWeek {
	switch date.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ISONumber returns the ISO-8601 weekday number (Monday = 1, Sunday = 7)
func (d DayOfWeek) ISONumber() int {
	for i, day := range AllDaysOfWeek {
		if day == d {
			return i + 1
		}
	}
	return 0
}

// String возвращает строковое представление дня недели
func (d DayOfWeek) String() string {
	return string(d)
}

// ScheduleEntry is a consultant's recurring weekly commitment to a slot:
// "this consultant works slot S every D". The (consultant, slot, day) triple
// is unique; entries carry no calendar dates.
type ScheduleEntry struct {
	ID           int64
	ConsultantID int64
	SlotID       int64
	DayOfWeek    DayOfWeek
	CreatedAt    time.Time
}
