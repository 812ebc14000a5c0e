package astro

import (
	"time"

	"github.com/alexanderramin/astroplan/internal/domain"
)

// zodiacRange is one inclusive date-range rule. Ranges that span a year
// boundary (Capricorn) are expressed as two month/day windows.
type zodiacRange struct {
	sign       domain.ZodiacSign
	fromMonth  time.Month
	fromDay    int
	untilMonth time.Month
	untilDay   int
}

// zodiacRanges are evaluated in order; the first match wins. Pisces is
// deliberately absent and acts as the catch-all, which makes ResolveSign
// total over every valid calendar date.
var zodiacRanges = []zodiacRange{
	{domain.ZodiacSign{Name: "Aries", Symbol: "♈"}, time.March, 21, time.April, 19},
	{domain.ZodiacSign{Name: "Taurus", Symbol: "♉"}, time.April, 20, time.May, 20},
	{domain.ZodiacSign{Name: "Gemini", Symbol: "♊"}, time.May, 21, time.June, 20},
	{domain.ZodiacSign{Name: "Cancer", Symbol: "♋"}, time.June, 21, time.July, 22},
	{domain.ZodiacSign{Name: "Leo", Symbol: "♌"}, time.July, 23, time.August, 22},
	{domain.ZodiacSign{Name: "Virgo", Symbol: "♍"}, time.August, 23, time.September, 22},
	{domain.ZodiacSign{Name: "Libra", Symbol: "♎"}, time.September, 23, time.October, 22},
	{domain.ZodiacSign{Name: "Scorpio", Symbol: "♏"}, time.October, 23, time.November, 21},
	{domain.ZodiacSign{Name: "Sagittarius", Symbol: "♐"}, time.November, 22, time.December, 21},
	{domain.ZodiacSign{Name: "Capricorn", Symbol: "♑"}, time.December, 22, time.January, 19},
	{domain.ZodiacSign{Name: "Aquarius", Symbol: "♒"}, time.January, 20, time.February, 18},
}

var pisces = domain.ZodiacSign{Name: "Pisces", Symbol: "♓"}

// ResolveSign maps a birth date to its zodiac sign. It never fails: any
// date not covered by the first eleven ranges is Pisces.
func ResolveSign(birthDate time.Time) domain.ZodiacSign {
	month := birthDate.Month()
	day := birthDate.Day()

	for _, r := range zodiacRanges {
		if (month == r.fromMonth && day >= r.fromDay) || (month == r.untilMonth && day <= r.untilDay) {
			return r.sign
		}
	}
	return pisces
}
