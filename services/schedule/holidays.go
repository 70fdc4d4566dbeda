// File: services/schedule/holidays.go
package schedule

import (
	"time"

	"github.com/CorbanSy/PropDash-sub002/models"
	"github.com/CorbanSy/PropDash-sub002/utils"
)

// FederalHolidays returns the 11 US federal holidays for a year, in calendar
// rule order. Floating holidays use nth-weekday / last-weekday rules.
func FederalHolidays(year int) []models.Holiday {
	return []models.Holiday{
		fixed("New Year's Day", year, time.January, 1, models.HolidayFederal),
		floating("Martin Luther King Jr. Day", nthWeekdayOfMonth(year, time.January, time.Monday, 3), models.HolidayFederal),
		floating("Presidents' Day", nthWeekdayOfMonth(year, time.February, time.Monday, 3), models.HolidayFederal),
		floating("Memorial Day", lastWeekdayOfMonth(year, time.May, time.Monday), models.HolidayFederal),
		fixed("Juneteenth", year, time.June, 19, models.HolidayFederal),
		fixed("Independence Day", year, time.July, 4, models.HolidayFederal),
		floating("Labor Day", nthWeekdayOfMonth(year, time.September, time.Monday, 1), models.HolidayFederal),
		floating("Columbus Day", nthWeekdayOfMonth(year, time.October, time.Monday, 2), models.HolidayFederal),
		fixed("Veterans Day", year, time.November, 11, models.HolidayFederal),
		floating("Thanksgiving", nthWeekdayOfMonth(year, time.November, time.Thursday, 4), models.HolidayFederal),
		fixed("Christmas Day", year, time.December, 25, models.HolidayFederal),
	}
}

// PopularHolidays returns 9 widely observed non-federal dates, including the
// computed Easter Sunday and Black Friday (the day after Thanksgiving).
func PopularHolidays(year int) []models.Holiday {
	thanksgiving := nthWeekdayOfMonth(year, time.November, time.Thursday, 4)
	return []models.Holiday{
		fixed("Valentine's Day", year, time.February, 14, models.HolidayPopular),
		fixed("St. Patrick's Day", year, time.March, 17, models.HolidayPopular),
		floating("Easter Sunday", easterSunday(year), models.HolidayPopular),
		fixed("Cinco de Mayo", year, time.May, 5, models.HolidayPopular),
		floating("Mother's Day", nthWeekdayOfMonth(year, time.May, time.Sunday, 2), models.HolidayPopular),
		floating("Father's Day", nthWeekdayOfMonth(year, time.June, time.Sunday, 3), models.HolidayPopular),
		fixed("Halloween", year, time.October, 31, models.HolidayPopular),
		floating("Black Friday", thanksgiving.AddDate(0, 0, 1), models.HolidayPopular),
		fixed("New Year's Eve", year, time.December, 31, models.HolidayPopular),
	}
}

// AllHolidays returns the federal and popular sets merged, de-duplicated by
// date. The first entry for a date wins, so federal names take precedence.
func AllHolidays(year int) []models.Holiday {
	seen := make(map[string]bool)
	var all []models.Holiday
	for _, h := range append(FederalHolidays(year), PopularHolidays(year)...) {
		if seen[h.Date] {
			continue
		}
		seen[h.Date] = true
		all = append(all, h)
	}
	return all
}

// HolidaysByDate indexes a year's holidays by their date key.
func HolidaysByDate(year int) map[string]models.Holiday {
	byDate := make(map[string]models.Holiday)
	for _, h := range AllHolidays(year) {
		byDate[h.Date] = h
	}
	return byDate
}

func fixed(name string, year int, month time.Month, day int, typ models.HolidayType) models.Holiday {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return models.Holiday{Name: name, Date: utils.DateKey(date), Type: typ}
}

func floating(name string, date time.Time, typ models.HolidayType) models.Holiday {
	return models.Holiday{Name: name, Date: utils.DateKey(date), Type: typ}
}

// nthWeekdayOfMonth computes the nth occurrence of a weekday in a month.
// When the 1st already falls on the target weekday it counts as occurrence 1.
func nthWeekdayOfMonth(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}

// lastWeekdayOfMonth walks back from the final calendar day of the month.
func lastWeekdayOfMonth(year int, month time.Month, weekday time.Weekday) time.Time {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	back := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDate(0, 0, -back)
}

// easterSunday computes Gregorian Easter via the anonymous Computus
// algorithm, integer arithmetic only.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}
