package benefit

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidType         = errors.New("invalid benefit type")
	ErrInvalidDiscountType = errors.New("invalid discount type")
	ErrInvalidWeekday      = errors.New("invalid weekday")
)

type Type string

const (
	TypeDiscount    Type = "DISCOUNT"
	TypeFreeProduct Type = "FREE_PRODUCT"
)

func (t Type) String() string { return string(t) }

func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToUpper(strings.TrimSpace(s))); t {
	case TypeDiscount, TypeFreeProduct:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

type DiscountType string

const (
	DiscountPercentage  DiscountType = "PERCENTAGE"
	DiscountFixedAmount DiscountType = "FIXED_AMOUNT"
)

func (d DiscountType) String() string { return string(d) }

func ParseDiscountType(s string) (DiscountType, error) {
	switch d := DiscountType(strings.ToUpper(strings.TrimSpace(s))); d {
	case DiscountPercentage, DiscountFixedAmount:
		return d, nil
	default:
		return "", ErrInvalidDiscountType
	}
}

// EveryDay is accepted on input and expands to all seven weekdays.
const EveryDay = "EVERYDAY"

// weekOrder is the canonical MONDAY..SUNDAY order used for display and fingerprints.
var weekOrder = [...]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// DaySet is a set of weekdays stored as a bitmask indexed by time.Weekday.
type DaySet uint8

const allDays DaySet = 1<<7 - 1

func DaySetOf(days ...time.Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// ParseDays accepts MONDAY..SUNDAY (any case) and EVERYDAY. Duplicates collapse.
func ParseDays(names []string) (DaySet, error) {
	var s DaySet
	for _, n := range names {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n == EveryDay {
			s |= allDays
			continue
		}
		d, ok := weekdayByName[n]
		if !ok {
			return 0, ErrInvalidWeekday
		}
		s |= 1 << uint(d)
	}
	return s, nil
}

func (s DaySet) Contains(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

func (s DaySet) IsEmpty() bool {
	return s == 0
}

func (s DaySet) Names() []string {
	names := make([]string, 0, 7)
	for _, d := range weekOrder {
		if s.Contains(d) {
			names = append(names, WeekdayName(d))
		}
	}
	return names
}

func WeekdayName(d time.Weekday) string {
	return strings.ToUpper(d.String())
}

var weekdayByName = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}
