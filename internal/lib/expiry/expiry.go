// Package expiry реализует работу с токеном окончания подписки:
// форматирование даты в короткий вид "02-jan" без года, вычисление новой
// даты окончания и классификацию срочности продления.
//
// Формат без года унаследован от исходных данных и сохраняется ради
// побайтовой совместимости экспорта; год подставляется только при чтении.
package expiry

import (
	"fmt"
	"strings"
	"time"
)

// Tier — уровень срочности продления подписки.
type Tier string

const (
	// TierCritical — осталось не более 2 дней.
	TierCritical Tier = "critical"
	// TierWarning — осталось не более 5 дней.
	TierWarning Tier = "warning"
	// TierOK — осталось больше 5 дней.
	TierOK Tier = "ok"
	// TierUnknown — токен не распознан.
	TierUnknown Tier = "unknown"
)

// tokenLayout задаёт короткий формат даты: день и сокращённый месяц.
const tokenLayout = "02-Jan"

// Token форматирует дату в короткий токен вида "05-jun".
func Token(t time.Time) string {
	return strings.ToLower(t.Format(tokenLayout))
}

// ExpirationDate возвращает дату окончания: from плюс months месяцев,
// где месяц всегда считается как 30 календарных дней. Календарная
// арифметика месяцев не используется намеренно — так считал исходный
// продукт, и выходные токены должны совпадать.
func ExpirationDate(from time.Time, months int) time.Time {
	return from.AddDate(0, 0, months*30)
}

// Parse восстанавливает полную дату из токена, подставляя год даты today.
// Токен очищается от пробелов и приводится к нижнему регистру.
func Parse(token string, today time.Time) (time.Time, error) {
	const op = "expiry.Parse"
	cleaned := strings.ToLower(strings.TrimSpace(token))
	t, err := time.Parse(tokenLayout+"-2006", fmt.Sprintf("%s-%d", cleaned, today.Year()))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// Classify относит токен к уровню срочности относительно даты today.
// Функция тотальна: любой вход, включая пустую строку и мусор, даёт
// один из четырёх уровней, нераспознанный токен — TierUnknown.
// Ошибка разбора никогда не прерывает вывод списка клиентов.
func Classify(token string, today time.Time) Tier {
	expiration, err := Parse(token, today)
	if err != nil {
		return TierUnknown
	}
	days := daysBetween(today, expiration)
	switch {
	case days <= 2:
		return TierCritical
	case days <= 5:
		return TierWarning
	default:
		return TierOK
	}
}

// daysBetween считает целые календарные дни между датами, игнорируя время суток.
func daysBetween(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}
