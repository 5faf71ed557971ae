// Package models содержит доменные структуры консоли IPTV-реселлера:
// клиентов, записи финансового журнала и каталог тарифов,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Customer представляет собой клиента сервиса IPTV.
// Username уникален и неизменяем после создания.
// ExpirationToken хранит дату окончания в коротком формате "день-месяц"
// без года (например "05-jun") — формат унаследован от исходных данных
// и сохраняется ради совместимости экспорта.
type Customer struct {
	ID              int    `json:"id"`               // Внутренний идентификатор строки
	Username        string `json:"username"`         // Уникальное имя клиента
	ServicePlan     string `json:"service_plan"`     // Название тарифа из каталога
	ExpirationToken string `json:"expiration_token"` // Дата окончания в формате "02-jan", без года
	ContactNumber   string `json:"contact_number"`   // Номер WhatsApp, свободный формат, опционально
	Notes           string `json:"notes"`            // Произвольные заметки, опционально
}

// DummyRegisterEntry используется для приёма данных из JSON-запроса
// на регистрацию нового клиента.
type DummyRegisterEntry struct {
	Username      string  `json:"username" validate:"required"`       // Имя нового клиента
	ServicePlan   string  `json:"service_plan" validate:"required"`   // Тариф из каталога
	ContactNumber string  `json:"contact_number"`                     // Номер WhatsApp (опционально)
	Notes         string  `json:"notes"`                              // Заметки (опционально)
	CounterMonths int     `json:"counter_months" validate:"required"` // Срок в месяцах
	Price         float64 `json:"price" validate:"gte=0"`             // Сумма продажи (>= 0)
}

// DummyRenewEntry используется для приёма данных из JSON-запроса на продление.
type DummyRenewEntry struct {
	ServicePlan   string  `json:"service_plan" validate:"required"`   // Тариф из каталога
	CounterMonths int     `json:"counter_months" validate:"required"` // Срок в месяцах
	Price         float64 `json:"price" validate:"gte=0"`             // Сумма продления (>= 0)
}

// DummyContactUpdate используется для приёма данных на правку контакта и заметок.
type DummyContactUpdate struct {
	ContactNumber string `json:"contact_number"` // Новый номер WhatsApp
	Notes         string `json:"notes"`          // Новые заметки
}

// DummyExpenseEntry используется для приёма данных о новом расходе.
type DummyExpenseEntry struct {
	Description string  `json:"description" validate:"required"` // Назначение расхода
	Amount      float64 `json:"amount" validate:"required,gt=0"` // Сумма расхода (> 0)
}

// DummyLogin используется для приёма учётных данных администратора.
type DummyLogin struct {
	Username string `json:"username" validate:"required"` // Логин администратора
	Password string `json:"password" validate:"required"` // Пароль администратора
}
