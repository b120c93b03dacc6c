package post

import (
	"context"
	"errors"

	"github.com/dkosyrev/postline/graph/model"
)

// ErrNotFound is returned when no post with the requested id exists.
var ErrNotFound = errors.New("post not found")

type PostStorage interface {
	CreatePost(ctx context.Context, input model.NewPost) (*model.Post, error)
	GetPostById(id string) (*model.Post, error)
	GetAllPosts() ([]*model.Post, error)
}
