package scheduling

import (
	"math"
	"time"

	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// StartOfDay возвращает локальную полночь дня t (в зоне t)
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDay возвращает локальную полночь следующего дня
func NextDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// compareDays сравнивает календарные дни a и b (обе даты уже в одной зоне)
func compareDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// leadThreshold округляет nowWithLead вверх до ближайшей границы сетки stepMinutes,
// отсчитанной от локальной полуночи
func leadThreshold(nowWithLead time.Time, stepMinutes int) time.Time {
	if stepMinutes <= 0 {
		stepMinutes = 1
	}
	secondsSinceMidnight := float64(nowWithLead.Hour()*3600+nowWithLead.Minute()*60+nowWithLead.Second()) +
		float64(nowWithLead.Nanosecond())/float64(time.Second)

	stepSeconds := float64(stepMinutes * 60)
	rounded := int(math.Ceil(secondsSinceMidnight/stepSeconds)) * stepMinutes

	return time.Date(nowWithLead.Year(), nowWithLead.Month(), nowWithLead.Day(), 0, rounded, 0, 0, nowWithLead.Location())
}

// allowedByLeadTime проверяет минимальное время до начала окна.
// Окно в тот же день, что и now+lead, должно начинаться не раньше now+lead, округленного до сетки;
// окно в более поздний день допустимо всегда, в более ранний никогда.
func allowedByLeadTime(windowStart, now time.Time, minLeadMinutes, stepMinutes int, loc *time.Location) bool {
	start := windowStart.In(loc)
	nowWithLead := now.Add(time.Duration(minLeadMinutes) * time.Minute).In(loc)

	switch compareDays(start, nowWithLead) {
	case 1:
		return true
	case -1:
		return false
	}

	return !start.Before(leadThreshold(nowWithLead, stepMinutes))
}

// allowedByClosingTime проверяет, что окно заканчивается не позже закрытия в день своего начала
func allowedByClosingTime(windowStart, windowEnd time.Time, closingTime types.TimeString, loc *time.Location) bool {
	cutoff := closingTime.On(windowStart, loc)
	return !windowEnd.After(cutoff)
}

// wallClockDiff разница между двумя моментами по локальным "настенным" часам зоны loc
func wallClockDiff(a, b time.Time, loc *time.Location) time.Duration {
	return asWallClock(b.In(loc)).Sub(asWallClock(a.In(loc)))
}

func asWallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
