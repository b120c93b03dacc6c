package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/internal/user"
)

type UserMemoryStorage struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID int
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:  make(map[string]*model.User),
		nextID: 1,
	}
}

func (s *UserMemoryStorage) CreateUser(ctx context.Context, name, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	s.nextID++

	u := &model.User{
		ID:    id,
		Name:  name,
		Email: email,
	}

	s.users[id] = u
	return u, nil
}

func (s *UserMemoryStorage) GetUserById(id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[id]
	if !exists {
		return nil, user.ErrNotFound
	}

	return u, nil
}

func (s *UserMemoryStorage) GetAllUsers() ([]*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sortByNumericID(users, func(u *model.User) string { return u.ID })

	return users, nil
}
