package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/iptv-console/internal/models"
)

// isUniqueViolation сообщает, является ли ошибка нарушением уникальности.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// ListCustomers возвращает всех клиентов в порядке добавления.
// Текстовые поля приводятся к пустой строке вместо NULL, чтобы поиск
// и подстроковые операции ниже по стеку оставались тотальными.
func (s *Storage) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	const op = "storage.ListCustomers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, COALESCE(service_plan, ''), COALESCE(expiration_token, ''),
			      COALESCE(contact_number, ''), COALESCE(notes, '')
			  FROM customers
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Customer
	for rows.Next() {
		var item models.Customer
		if err := rows.Scan(&item.ID, &item.Username, &item.ServicePlan, &item.ExpirationToken,
			&item.ContactNumber, &item.Notes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetCustomerByUsername возвращает клиента по его имени.
func (s *Storage) GetCustomerByUsername(ctx context.Context, username string) (*models.Customer, error) {
	const op = "storage.GetCustomerByUsername"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, username, COALESCE(service_plan, ''), COALESCE(expiration_token, ''),
			      COALESCE(contact_number, ''), COALESCE(notes, '')
			  FROM customers
			  WHERE username = $1`
	var item models.Customer
	row := s.DB.QueryRowContext(ctx, query, username)
	if err := row.Scan(&item.ID, &item.Username, &item.ServicePlan, &item.ExpirationToken,
		&item.ContactNumber, &item.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &item, nil
}

// UpdateContact обновляет только контактный номер и заметки клиента,
// тариф и дата окончания не затрагиваются.
func (s *Storage) UpdateContact(ctx context.Context, username, contactNumber, notes string) error {
	const op = "storage.UpdateContact"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE customers
			  SET contact_number = $1, notes = $2
			  WHERE username = $3`
	result, err := s.DB.ExecContext(ctx, query, contactNumber, notes, username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// DeleteCustomer удаляет клиента по имени. Записи журнала, упоминающие
// клиента, не трогаются: журнал — независимая летопись операций.
// Удаление отсутствующего клиента возвращает ErrNotFound.
func (s *Storage) DeleteCustomer(ctx context.Context, username string) error {
	const op = "storage.DeleteCustomer"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM customers WHERE username = $1`
	result, err := s.DB.ExecContext(ctx, query, username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// RegisterCustomerTx вставляет нового клиента и, если entry не nil,
// запись журнала — в одной транзакции: либо обе строки фиксируются,
// либо ни одной. Нарушение уникальности username отображается
// в ErrCustomerExists.
func (s *Storage) RegisterCustomerTx(ctx context.Context, c models.Customer, entry *models.LedgerEntry) (int, error) {
	const op = "storage.RegisterCustomerTx"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `INSERT INTO customers (username, service_plan, expiration_token, contact_number, notes)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	var newID int
	err = tx.QueryRowContext(ctx, query,
		c.Username, c.ServicePlan, c.ExpirationToken, c.ContactNumber, c.Notes).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, ErrCustomerExists)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if entry != nil {
		query = `INSERT INTO ledger (entry_date, kind, description, amount)
				 VALUES ($1, $2, $3, $4)`
		if _, err = tx.ExecContext(ctx, query,
			entry.Date, entry.Kind, entry.Description, entry.Amount); err != nil {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// RenewCustomerTx обновляет тариф и дату окончания клиента и добавляет
// запись журнала — в одной транзакции. Отсутствие клиента откатывает
// транзакцию и возвращает ErrNotFound.
func (s *Storage) RenewCustomerTx(ctx context.Context, username, servicePlan, expirationToken string, entry models.LedgerEntry) error {
	const op = "storage.RenewCustomerTx"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `UPDATE customers
			  SET service_plan = $1, expiration_token = $2
			  WHERE username = $3`
	result, err := tx.ExecContext(ctx, query, servicePlan, expirationToken, username)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	query = `INSERT INTO ledger (entry_date, kind, description, amount)
			 VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, query,
		entry.Date, entry.Kind, entry.Description, entry.Amount); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
