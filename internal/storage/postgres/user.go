package postgres

import (
	"context"
	"fmt"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/internal/user"
	"github.com/dkosyrev/postline/models"
	"github.com/jinzhu/gorm"
)

type UserPostgresStorage struct{}

func NewUserPostgresStorage() *UserPostgresStorage {
	return &UserPostgresStorage{}
}

func (s *UserPostgresStorage) CreateUser(ctx context.Context, name, email string) (*model.User, error) {
	u := &models.User{
		Name:  name,
		Email: email,
	}

	if err := DB.Create(u).Error; err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return toGraphUser(u), nil
}

func (s *UserPostgresStorage) GetUserById(id string) (*model.User, error) {
	idUint, err := parseID(id)
	if err != nil {
		return nil, user.ErrNotFound
	}

	var u models.User
	if err := DB.First(&u, idUint).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return toGraphUser(&u), nil
}

func (s *UserPostgresStorage) GetAllUsers() ([]*model.User, error) {
	var users []models.User
	if err := DB.Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("could not get users: %w", err)
	}

	results := make([]*model.User, 0, len(users))
	for i := range users {
		results = append(results, toGraphUser(&users[i]))
	}

	return results, nil
}

func toGraphUser(u *models.User) *model.User {
	return &model.User{
		ID:    fmt.Sprint(u.ID),
		Name:  u.Name,
		Email: u.Email,
	}
}

