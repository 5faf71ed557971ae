package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "обычная дата",
			date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
			want: "05-jun",
		},
		{
			name: "конец года",
			date: time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC),
			want: "31-dec",
		},
		{
			name: "начало года",
			date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want: "01-jan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Token(tt.date))
		})
	}
}

func TestExpirationDate(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		months int
		want   time.Time
	}{
		{
			name:   "один месяц это ровно 30 дней",
			months: 1,
			want:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "два месяца это 60 дней",
			months: 2,
			want:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "двенадцать месяцев это 360 дней",
			months: 12,
			want:   time.Date(2026, 2, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpirationDate(from, tt.months))
		})
	}
}

func TestParse(t *testing.T) {
	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	got, err := Parse(" 05-Jun ", today)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = Parse("garbage", today)
	require.Error(t, err)
}

func TestClassify(t *testing.T) {
	today := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  Tier
	}{
		{name: "истекает сегодня", token: "01-jun", want: TierCritical},
		{name: "осталось два дня", token: "03-jun", want: TierCritical},
		{name: "уже истёк", token: "30-may", want: TierCritical},
		{name: "осталось три дня", token: "04-jun", want: TierWarning},
		{name: "осталось пять дней", token: "06-jun", want: TierWarning},
		{name: "осталось шесть дней", token: "07-jun", want: TierOK},
		{name: "далёкая дата", token: "31-dec", want: TierOK},
		{name: "пробелы и регистр не мешают", token: "  06-JUN ", want: TierWarning},
		{name: "пустой токен", token: "", want: TierUnknown},
		{name: "мусор", token: "не дата", want: TierUnknown},
		{name: "несуществующий день", token: "40-jun", want: TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.token, today))
		})
	}
}

// Токен, созданный Token, всегда распознаётся Classify.
func TestClassifyRoundTrip(t *testing.T) {
	today := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
	for months := 1; months <= 12; months++ {
		token := Token(ExpirationDate(today, months))
		assert.NotEqual(t, TierUnknown, Classify(token, today), "months=%d token=%q", months, token)
	}
}
