// Package session содержит логику административной сессии: проверку
// единственной пары учётных данных и выдачу токена сессии.
package session

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/magabrotheeeer/iptv-console/internal/lib/jwt"
)

// ErrInvalidCredentials — логин или пароль не совпали с учётными данными
// администратора.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service проверяет учётные данные и управляет токенами сессии.
// Сессия целиком живёт в подписанном токене: процессных флагов
// "залогинен" нет, выход — это забывание токена клиентом.
type Service struct {
	adminUser     string
	adminPassword string
	maker         jwt.Maker
}

// New создает новый Service с учётными данными администратора.
func New(adminUser, adminPassword string, maker jwt.Maker) *Service {
	return &Service{
		adminUser:     strings.TrimSpace(adminUser),
		adminPassword: strings.TrimSpace(adminPassword),
		maker:         maker,
	}
}

// Login сверяет пару логин/пароль (после обрезки пробелов, сравнение за
// постоянное время) и возвращает токен сессии.
func (s *Service) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare(
		[]byte(strings.TrimSpace(username)), []byte(s.adminUser)) == 1
	passOK := subtle.ConstantTimeCompare(
		[]byte(strings.TrimSpace(password)), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.maker.GenerateToken(s.adminUser)
}

// Validate проверяет токен сессии и возвращает имя администратора.
func (s *Service) Validate(token string) (string, error) {
	claims, err := s.maker.ParseToken(token)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}
