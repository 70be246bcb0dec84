package bondsports

import "time"

// BondSports нумерует дни недели нестандартно: 2=Monday ... 8=Sunday,
// в старых ответах встречаются 0=Sunday и 1=Monday. Код платформы
// переводится в time.Weekday ровно один раз - на этой границе,
// дальше по сервису ходит только стандартный тип.

// WeekdayFromVendor переводит код дня недели платформы в time.Weekday
func WeekdayFromVendor(code int) (time.Weekday, bool) {
	switch code {
	case 0, 8:
		return time.Sunday, true
	case 1, 2:
		return time.Monday, true
	case 3:
		return time.Tuesday, true
	case 4:
		return time.Wednesday, true
	case 5:
		return time.Thursday, true
	case 6:
		return time.Friday, true
	case 7:
		return time.Saturday, true
	default:
		return time.Sunday, false
	}
}

// VendorDayFromWeekday переводит time.Weekday в код дня недели платформы
func VendorDayFromWeekday(w time.Weekday) int {
	if w == time.Sunday {
		return 8
	}
	return int(w) + 1
}
