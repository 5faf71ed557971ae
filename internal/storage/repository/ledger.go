package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/iptv-console/internal/models"
)

// ListLedger возвращает все записи журнала в порядке добавления.
func (s *Storage) ListLedger(ctx context.Context) ([]*models.LedgerEntry, error) {
	const op = "storage.ListLedger"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, COALESCE(entry_date, ''), COALESCE(kind, ''),
			      COALESCE(description, ''), COALESCE(amount, 0)
			  FROM ledger
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.LedgerEntry
	for rows.Next() {
		var item models.LedgerEntry
		if err := rows.Scan(&item.ID, &item.Date, &item.Kind,
			&item.Description, &item.Amount); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// AppendLedger вставляет новую запись журнала и возвращает её ID.
// Журнал только растёт: путей изменения или удаления записей нет.
func (s *Storage) AppendLedger(ctx context.Context, entry models.LedgerEntry) (int, error) {
	const op = "storage.AppendLedger"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO ledger (entry_date, kind, description, amount)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		entry.Date, entry.Kind, entry.Description, entry.Amount).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}
