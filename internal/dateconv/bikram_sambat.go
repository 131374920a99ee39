// Package dateconv converts dates between the Gregorian (AD) and Bikram
// Sambat (BS) calendars. BS months have no closed-form length, so the
// conversion walks a published month-length table covering BS 2040-2089.
package dateconv

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

// BSDate is a date in the Bikram Sambat calendar.
type BSDate struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (d BSDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// bsEpochYear's first day (1 Baishakh 2040) corresponds to bsEpochAD.
const bsEpochYear = 2040

var bsEpochAD = time.Date(1983, time.April, 14, 0, 0, 0, 0, time.UTC)

// ParseBS parses a YYYY-MM-DD Bikram Sambat date string. Inputs that do not
// match the pattern fail with ErrInvalidDatePattern so callers can withhold
// the derived field without blocking input.
func ParseBS(s string) (BSDate, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return BSDate{}, domain.ErrInvalidDatePattern
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	lengths, ok := bsMonthLengths[year]
	if !ok {
		return BSDate{}, domain.ErrDateOutOfRange
	}
	if month < 1 || month > 12 || day < 1 || day > lengths[month-1] {
		return BSDate{}, domain.ErrInvalidDatePattern
	}
	return BSDate{Year: year, Month: month, Day: day}, nil
}

// ToGregorian converts a BS date to the corresponding Gregorian day.
func ToGregorian(bs BSDate) (time.Time, error) {
	if _, ok := bsMonthLengths[bs.Year]; !ok {
		return time.Time{}, domain.ErrDateOutOfRange
	}

	days := 0
	for y := bsEpochYear; y < bs.Year; y++ {
		lengths, ok := bsMonthLengths[y]
		if !ok {
			return time.Time{}, domain.ErrDateOutOfRange
		}
		for _, l := range lengths {
			days += l
		}
	}
	lengths := bsMonthLengths[bs.Year]
	if bs.Month < 1 || bs.Month > 12 || bs.Day < 1 || bs.Day > lengths[bs.Month-1] {
		return time.Time{}, domain.ErrInvalidDatePattern
	}
	for m := 1; m < bs.Month; m++ {
		days += lengths[m-1]
	}
	days += bs.Day - 1

	return bsEpochAD.AddDate(0, 0, days), nil
}

// FromGregorian converts a Gregorian day to its BS date.
func FromGregorian(t time.Time) (BSDate, error) {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := int(t.Sub(bsEpochAD).Hours() / 24)
	if days < 0 {
		return BSDate{}, domain.ErrDateOutOfRange
	}

	year := bsEpochYear
	for {
		lengths, ok := bsMonthLengths[year]
		if !ok {
			return BSDate{}, domain.ErrDateOutOfRange
		}
		yearDays := 0
		for _, l := range lengths {
			yearDays += l
		}
		if days < yearDays {
			break
		}
		days -= yearDays
		year++
	}

	lengths := bsMonthLengths[year]
	month := 1
	for days >= lengths[month-1] {
		days -= lengths[month-1]
		month++
	}
	return BSDate{Year: year, Month: month, Day: days + 1}, nil
}

// ADToBS converts a YYYY-MM-DD Gregorian string to its BS equivalent.
func ADToBS(s string) (string, error) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return "", domain.ErrInvalidDatePattern
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", domain.ErrInvalidDatePattern
	}

	bs, err := FromGregorian(t)
	if err != nil {
		return "", err
	}
	return bs.String(), nil
}

// BSToAD converts a YYYY-MM-DD Bikram Sambat string to its Gregorian
// equivalent.
func BSToAD(s string) (string, error) {
	bs, err := ParseBS(s)
	if err != nil {
		return "", err
	}
	t, err := ToGregorian(bs)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01-02"), nil
}
