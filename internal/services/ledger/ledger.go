// Package ledger содержит чистые функции агрегации финансового журнала:
// баланс, итоги по видам записей, сортировку и CSV-экспорт.
package ledger

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/magabrotheeeer/iptv-console/internal/models"
)

// csvHeader задаёт порядок колонок экспорта. Порядок фиксирован ради
// совместимости с выгрузками исходного продукта.
var csvHeader = []string{"date", "kind", "description", "amount"}

// NetBalance возвращает чистый баланс: поступления минус расходы.
// Записи с неизвестным видом дают вклад 0, а не ошибку.
func NetBalance(entries []*models.LedgerEntry) float64 {
	income, expense := Totals(entries)
	return income - expense
}

// Totals возвращает сумму поступлений и сумму расходов.
func Totals(entries []*models.LedgerEntry) (income, expense float64) {
	for _, e := range entries {
		switch e.Kind {
		case models.KindIncome:
			income += e.Amount
		case models.KindExpense:
			expense += e.Amount
		}
	}
	return income, expense
}

// SortedByDateDesc возвращает записи, отсортированные по дате по убыванию.
// Сортировка стабильная; лексикографическое сравнение ISO-дат совпадает
// с хронологическим. Исходный срез не изменяется.
func SortedByDateDesc(entries []*models.LedgerEntry) []*models.LedgerEntry {
	result := make([]*models.LedgerEntry, len(entries))
	copy(result, entries)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// ExportCSV сериализует журнал в CSV с колонками date, kind, description,
// amount в кодировке UTF-8. Пустой журнал даёт файл из одного заголовка.
func ExportCSV(entries []*models.LedgerEntry) ([]byte, error) {
	const op = "ledger.ExportCSV"

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, e := range entries {
		record := []string{
			e.Date,
			e.Kind,
			e.Description,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}

// ParseCSV разбирает экспортированный журнал обратно в записи.
// Вместе с ExportCSV образует точный круговой обход: состав записей
// (дата, вид, описание, сумма) сохраняется.
func ParseCSV(r io.Reader) ([]*models.LedgerEntry, error) {
	const op = "ledger.ParseCSV"

	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var result []*models.LedgerEntry
	for i, record := range records[1:] {
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("%s: row %d has %d columns", op, i+1, len(record))
		}
		amount, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			// Нечисловая сумма трактуется как 0, не как отказ разбора.
			amount = 0
		}
		result = append(result, &models.LedgerEntry{
			Date:        record[0],
			Kind:        record[1],
			Description: record[2],
			Amount:      amount,
		})
	}
	return result, nil
}

// ExportFileName возвращает имя файла выгрузки вида report_2006-01-02.csv.
func ExportFileName(date string) string {
	return fmt.Sprintf("report_%s.csv", date)
}
