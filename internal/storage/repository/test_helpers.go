package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/iptv-console/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateCustomer создает тестового клиента и возвращает его id
func (f *TestDataFactory) CreateCustomer(t *testing.T, username, servicePlan, expirationToken, contactNumber, notes string) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO customers
		(username, service_plan, expiration_token, contact_number, notes)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		username, servicePlan, expirationToken, contactNumber, notes).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateLedgerEntry создает тестовую запись журнала и возвращает её id
func (f *TestDataFactory) CreateLedgerEntry(t *testing.T, date, kind, description string, amount float64) int {
	var id int
	err := f.storage.DB.QueryRow(`INSERT INTO ledger
		(entry_date, kind, description, amount)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		date, kind, description, amount).Scan(&id)
	require.NoError(t, err)
	return id
}

// CountLedgerEntries возвращает число записей журнала
func (f *TestDataFactory) CountLedgerEntries(t *testing.T) int {
	var count int
	err := f.storage.DB.QueryRow(`SELECT COUNT(*) FROM ledger`).Scan(&count)
	require.NoError(t, err)
	return count
}

// GetTestCustomerData возвращает стандартные тестовые данные клиента
func GetTestCustomerData() models.Customer {
	return models.Customer{
		Username:        "carlos",
		ServicePlan:     models.PlanBasico,
		ExpirationToken: "31-jul",
		ContactNumber:   "+34 600 111 222",
		Notes:           "cliente nuevo",
	}
}
