package scheduling

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// instantLayouts форматы, в которых моменты времени приходят от клиентов и из хранилища
var instantLayouts = []string{
	time.RFC3339Nano,                      // 2026-01-27T11:00:00.000Z, 2026-01-27T08:00:00-03:00
	"2006-01-02T15:04:05.999999999Z0700",  // 2026-01-27T11:00:00+0000
	"2006-01-02 15:04:05.999999999Z07:00", // 2026-01-27 11:00:00+00:00
	"2006-01-02 15:04:05.999999999Z07",    // текстовый вывод timestamptz: 2026-01-27 11:00:00+00
	"2006-01-02T15:04:05.999999999",       // без зоны, считаем UTC
	"2006-01-02 15:04:05.999999999",       // без зоны, считаем UTC
}

// ParseInstant парсит момент времени в любом из поддерживаемых ISO-8601 форматов
func ParseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// InstantKey канонический ключ момента времени: UTC, точность до секунды
func InstantKey(t time.Time) string {
	return t.UTC().Format(domain.InstantFormat)
}

// NormalizeKey приводит строковое представление момента времени к каноническому ключу.
// Если строку не удалось распарсить, возвращает ее без изменений:
// поиск по такому ключу просто не найдет совпадения.
func NormalizeKey(s string) string {
	t, ok := ParseInstant(s)
	if !ok {
		return s
	}
	return InstantKey(t)
}
