package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsdevblog/groph-bank/internal/service/psswd"
	"golang.org/x/crypto/bcrypt"
)

const DefaultRole = "USER"

var ErrInvalidCredentials = errors.New("invalid username or password")

type User struct {
	Username string
	Role     string
	hash     string
}

// UserStore пользователи шлюза из конфигурации. Пароли хранятся только в виде bcrypt хэшей.
type UserStore struct {
	users  map[string]User
	hasher psswd.Hasher
	// dummy хэш, с которым сравнивается пароль при неизвестном логине.
	dummy string
}

// NewUserStore разбирает список вида "name:password[:role]".
func NewUserStore(entries []string) (*UserStore, error) {
	store := &UserStore{
		users:  make(map[string]User, len(entries)),
		hasher: psswd.NewHasher(bcrypt.DefaultCost),
	}
	dummy, dummyErr := store.hasher.Hash("dummy")
	if dummyErr != nil {
		return nil, dummyErr //nolint:wrapcheck
	}
	store.dummy = dummy

	for _, entry := range entries {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid user entry %q", entry)
		}
		role := DefaultRole
		if len(parts) == 3 && parts[2] != "" {
			role = parts[2]
		}
		hash, err := store.hasher.Hash(parts[1])
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", parts[0], err)
		}
		store.users[parts[0]] = User{Username: parts[0], Role: role, hash: hash}
	}
	return store, nil
}

// Authenticate возвращает ErrInvalidCredentials, если пользователь неизвестен или пароль не совпал.
func (s *UserStore) Authenticate(username, password string) (*User, error) {
	user, ok := s.users[username]
	if !ok {
		s.hasher.Compare(password, s.dummy)
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Compare(password, user.hash) {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
