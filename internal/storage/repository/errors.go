package repository

import "errors"

// Ошибки уровня хранилища. Сервисный слой сопоставляет их через errors.Is
// и выбирает HTTP-статус; все прочие ошибки считаются отказом хранилища
// и наружу уходят как есть, без автоматических повторов.
var (
	// ErrNotFound — операция адресует несуществующего клиента.
	ErrNotFound = errors.New("customer not found")
	// ErrCustomerExists — нарушение уникальности username при регистрации.
	ErrCustomerExists = errors.New("customer already exists")
)
