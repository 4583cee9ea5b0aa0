package models

// DayOfWeek is one of the six teaching days. Sunday has no classes and is
// deliberately absent from the enum.
type DayOfWeek string

const (
	DayMonday    DayOfWeek = "Пн"
	DayTuesday   DayOfWeek = "Вт"
	DayWednesday DayOfWeek = "Ср"
	DayThursday  DayOfWeek = "Чт"
	DayFriday    DayOfWeek = "Пт"
	DaySaturday  DayOfWeek = "Сб"
)

// Days lists the teaching days in calendar order, Monday first.
var Days = []DayOfWeek{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
}

// Shift identifies one of the two daily school sessions.
type Shift string

const (
	ShiftFirst  Shift = "1 смена"
	ShiftSecond Shift = "2 смена"
)

// Shifts lists the sessions in display order.
var Shifts = []Shift{ShiftFirst, ShiftSecond}

// Order returns the sort rank of the shift, first session before second.
func (s Shift) Order() int {
	if s == ShiftSecond {
		return 1
	}
	return 0
}

const (
	// MinPeriod and MaxPeriod bound the lesson slots within a shift.
	MinPeriod = 1
	MaxPeriod = 8
)

// ParseDay validates a raw day symbol.
func ParseDay(raw string) (DayOfWeek, bool) {
	for _, d := range Days {
		if string(d) == raw {
			return d, true
		}
	}
	return "", false
}

// ParseShift validates a raw shift symbol.
func ParseShift(raw string) (Shift, bool) {
	for _, s := range Shifts {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

// ValidPeriod reports whether the period number falls inside a shift.
func ValidPeriod(period int) bool {
	return period >= MinPeriod && period <= MaxPeriod
}
