package models

// Виды записей финансового журнала.
const (
	// KindIncome — поступление (регистрация или продление клиента).
	KindIncome = "ingreso"
	// KindExpense — расход (закупка панелей, кредитов и т.п.).
	KindExpense = "egreso"
)

// LedgerEntry представляет собой запись финансового журнала.
// Журнал только пополняется: записи никогда не изменяются и не удаляются.
// Связь с клиентом только через текст Description — журнал независим
// от таблицы клиентов и переживает удаление клиента.
type LedgerEntry struct {
	ID          int     `json:"id"`          // Внутренний идентификатор строки
	Date        string  `json:"date"`        // Дата в формате ISO "2006-01-02"
	Kind        string  `json:"kind"`        // KindIncome или KindExpense
	Description string  `json:"description"` // Человеко-читаемое описание операции
	Amount      float64 `json:"amount"`      // Неотрицательная сумма
}
