package bondsports

import (
	"context"
	"sync"
)

// StaticCredentialsSource выдает заранее заданные учетные данные
// Используется для SSO-аккаунтов, где токен сессии получен вне сервиса
type StaticCredentialsSource struct {
	creds *Credentials
}

// NewStaticCredentialsSource создает источник с готовым токеном сессии
func NewStaticCredentialsSource(token string) *StaticCredentialsSource {
	return &StaticCredentialsSource{creds: TokenCredentials(token)}
}

// Credentials возвращает заданные учетные данные
func (s *StaticCredentialsSource) Credentials(ctx context.Context) (*Credentials, error) {
	return s.creds, nil
}

// Invalidate для статического источника ничего не делает - перелогиниться нечем
func (s *StaticCredentialsSource) Invalidate() {}

// LoginCredentialsSource логинится на платформе при первом обращении
// и кеширует полученные учетные данные
type LoginCredentialsSource struct {
	client   *Client
	email    string
	password string

	mu     sync.Mutex
	cached *Credentials
}

// NewLoginCredentialsSource создает источник с логином по email/паролю
func NewLoginCredentialsSource(client *Client, email, password string) *LoginCredentialsSource {
	return &LoginCredentialsSource{
		client:   client,
		email:    email,
		password: password,
	}
}

// Credentials возвращает кешированные учетные данные, выполняя логин при необходимости
func (s *LoginCredentialsSource) Credentials(ctx context.Context) (*Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached, nil
	}

	creds, err := s.client.Login(ctx, s.email, s.password)
	if err != nil {
		return nil, err
	}

	s.cached = creds
	return creds, nil
}

// Invalidate сбрасывает кеш учетных данных
// Вызывается после ErrAuthFailed, чтобы следующий запрос перелогинился
func (s *LoginCredentialsSource) Invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
