package user

import (
	"context"
	"errors"

	"github.com/dkosyrev/postline/graph/model"
)

// ErrNotFound is returned when no user with the requested id exists.
var ErrNotFound = errors.New("user not found")

type UserStorage interface {
	CreateUser(ctx context.Context, name, email string) (*model.User, error)
	GetUserById(id string) (*model.User, error)
	GetAllUsers() ([]*model.User, error)
}
