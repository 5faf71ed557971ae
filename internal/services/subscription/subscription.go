// Package services содержит бизнес-логику жизненного цикла подписок:
// регистрацию, продление, правку контактов, удаление и поиск клиентов,
// а также запись расходов в финансовый журнал.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/iptv-console/internal/lib/expiry"
	"github.com/magabrotheeeer/iptv-console/internal/lib/sl"
	"github.com/magabrotheeeer/iptv-console/internal/models"
)

// ErrValidation — вход операции не прошёл проверку (пустое имя,
// неизвестный тариф, неположительная сумма и т.п.). Проверка выполняется
// до обращения к хранилищу.
var ErrValidation = errors.New("validation failed")

// cacheKeyCustomers — ключ кеша для полного списка клиентов.
const cacheKeyCustomers = "customers:all"

// dateLayout — формат дат журнала (ISO, лексикографическая сортировка
// совпадает с хронологической).
const dateLayout = "2006-01-02"

// Repository определяет методы для работы с клиентами и журналом в хранилище.
type Repository interface {
	// ListCustomers возвращает всех клиентов в порядке добавления.
	ListCustomers(ctx context.Context) ([]*models.Customer, error)
	// GetCustomerByUsername возвращает клиента по имени.
	GetCustomerByUsername(ctx context.Context, username string) (*models.Customer, error)
	// RegisterCustomerTx атомарно вставляет клиента и запись журнала.
	RegisterCustomerTx(ctx context.Context, c models.Customer, entry *models.LedgerEntry) (int, error)
	// RenewCustomerTx атомарно обновляет клиента и добавляет запись журнала.
	RenewCustomerTx(ctx context.Context, username, servicePlan, expirationToken string, entry models.LedgerEntry) error
	// UpdateContact обновляет контакт и заметки клиента.
	UpdateContact(ctx context.Context, username, contactNumber, notes string) error
	// DeleteCustomer удаляет клиента по имени.
	DeleteCustomer(ctx context.Context, username string) error
	// AppendLedger добавляет запись журнала.
	AppendLedger(ctx context.Context, entry models.LedgerEntry) (int, error)
	// ListLedger возвращает все записи журнала в порядке добавления.
	ListLedger(ctx context.Context) ([]*models.LedgerEntry, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// SubscriptionService реализует бизнес-логику работы с клиентами, включая кеширование.
type SubscriptionService struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
	now   func() time.Time
}

// NewSubscriptionService создает новый экземпляр SubscriptionService.
func NewSubscriptionService(repo Repository, cache Cache, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:  repo,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// Register регистрирует нового клиента. Дата окончания считается от
// сегодняшнего дня (месяц = 30 дней). Если сумма больше нуля, в журнал
// атомарно добавляется запись о поступлении; нулевая регистрация
// (тестовый аккаунт, бонус) журнал не трогает.
func (s *SubscriptionService) Register(ctx context.Context, req models.DummyRegisterEntry) (int, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return 0, fmt.Errorf("%w: username is empty", ErrValidation)
	}
	if !models.IsValidPlan(req.ServicePlan) {
		return 0, fmt.Errorf("%w: unknown service plan %q", ErrValidation, req.ServicePlan)
	}
	if req.CounterMonths < 1 {
		return 0, fmt.Errorf("%w: counter_months must be positive", ErrValidation)
	}
	if req.Price < 0 {
		return 0, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	today := s.now()
	customer := models.Customer{
		Username:        username,
		ServicePlan:     req.ServicePlan,
		ExpirationToken: expiry.Token(expiry.ExpirationDate(today, req.CounterMonths)),
		ContactNumber:   req.ContactNumber,
		Notes:           req.Notes,
	}

	var entry *models.LedgerEntry
	if req.Price > 0 {
		entry = &models.LedgerEntry{
			Date:        today.Format(dateLayout),
			Kind:        models.KindIncome,
			Description: fmt.Sprintf("alta %dm %s: %s", req.CounterMonths, req.ServicePlan, username),
			Amount:      req.Price,
		}
	}

	id, err := s.repo.RegisterCustomerTx(ctx, customer, entry)
	if err != nil {
		return 0, err
	}
	s.log.Info("registered new customer", slog.String("username", username), slog.Int("id", id))

	s.invalidateCustomers()
	return id, nil
}

// Renew продлевает подписку клиента. Новая дата окончания всегда
// считается от сегодняшнего дня, а не от прежнего токена — продления
// не суммируются. Запись о поступлении добавляется всегда, даже при
// нулевой сумме: журнал фиксирует сам факт продления.
func (s *SubscriptionService) Renew(ctx context.Context, username string, req models.DummyRenewEntry) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return fmt.Errorf("%w: username is empty", ErrValidation)
	}
	if !models.IsValidPlan(req.ServicePlan) {
		return fmt.Errorf("%w: unknown service plan %q", ErrValidation, req.ServicePlan)
	}
	if req.CounterMonths < 1 {
		return fmt.Errorf("%w: counter_months must be positive", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	today := s.now()
	token := expiry.Token(expiry.ExpirationDate(today, req.CounterMonths))
	entry := models.LedgerEntry{
		Date:        today.Format(dateLayout),
		Kind:        models.KindIncome,
		Description: fmt.Sprintf("renovacion %dm %s: %s", req.CounterMonths, req.ServicePlan, username),
		Amount:      req.Price,
	}

	if err := s.repo.RenewCustomerTx(ctx, username, req.ServicePlan, token, entry); err != nil {
		return err
	}
	s.log.Info("renewed customer subscription",
		slog.String("username", username),
		slog.String("service_plan", req.ServicePlan),
		slog.String("expiration_token", token))

	s.invalidateCustomers()
	return nil
}

// RecordExpense добавляет в журнал запись о расходе, датированную сегодняшним днём.
func (s *SubscriptionService) RecordExpense(ctx context.Context, req models.DummyExpenseEntry) (int, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return 0, fmt.Errorf("%w: description is empty", ErrValidation)
	}
	if req.Amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	entry := models.LedgerEntry{
		Date:        s.now().Format(dateLayout),
		Kind:        models.KindExpense,
		Description: description,
		Amount:      req.Amount,
	}
	id, err := s.repo.AppendLedger(ctx, entry)
	if err != nil {
		return 0, err
	}
	s.log.Info("recorded expense", slog.Int("id", id), slog.Float64("amount", req.Amount))
	return id, nil
}

// UpdateContactNotes обновляет только контакт и заметки клиента,
// тариф и дата окончания не затрагиваются.
func (s *SubscriptionService) UpdateContactNotes(ctx context.Context, username string, req models.DummyContactUpdate) error {
	if err := s.repo.UpdateContact(ctx, username, req.ContactNumber, req.Notes); err != nil {
		return err
	}
	s.log.Info("updated customer contact", slog.String("username", username))

	s.invalidateCustomers()
	return nil
}

// Delete удаляет клиента. Записи журнала, упоминающие клиента,
// сохраняются: журнал — неизменяемая летопись операций.
func (s *SubscriptionService) Delete(ctx context.Context, username string) error {
	if err := s.repo.DeleteCustomer(ctx, username); err != nil {
		return err
	}
	s.log.Info("deleted customer", slog.String("username", username))

	s.invalidateCustomers()
	return nil
}

// Search возвращает клиентов, чьё имя содержит query без учёта регистра,
// в порядке хранения. Пустой запрос возвращает всех; отсутствие
// совпадений — пустой список, не ошибку.
func (s *SubscriptionService) Search(ctx context.Context, query string) ([]*models.Customer, error) {
	customers, err := s.listCustomersCached(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return customers, nil
	}

	result := make([]*models.Customer, 0, len(customers))
	for _, c := range customers {
		if strings.Contains(strings.ToLower(c.Username), query) {
			result = append(result, c)
		}
	}
	return result, nil
}

// GetCustomer возвращает клиента по имени.
func (s *SubscriptionService) GetCustomer(ctx context.Context, username string) (*models.Customer, error) {
	return s.repo.GetCustomerByUsername(ctx, username)
}

// ListLedger возвращает все записи журнала в порядке добавления.
func (s *SubscriptionService) ListLedger(ctx context.Context) ([]*models.LedgerEntry, error) {
	return s.repo.ListLedger(ctx)
}

// listCustomersCached читает список клиентов из кеша, при промахе — из
// хранилища с записью в кеш. Отказ кеша лишь логируется.
func (s *SubscriptionService) listCustomersCached(ctx context.Context) ([]*models.Customer, error) {
	var cached []*models.Customer
	found, err := s.cache.Get(cacheKeyCustomers, &cached)
	if err != nil {
		s.log.Warn("failed to read customers from cache", sl.Err(err))
	}
	if found && err == nil {
		return cached, nil
	}

	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKeyCustomers, customers, time.Hour); err != nil {
		s.log.Warn("failed to cache customers", sl.Err(err))
	}
	return customers, nil
}

func (s *SubscriptionService) invalidateCustomers() {
	if err := s.cache.Invalidate(cacheKeyCustomers); err != nil {
		s.log.Warn("failed to invalidate customers cache", sl.Err(err))
	}
}
