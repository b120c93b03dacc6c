package postgres

import (
	"context"
	"fmt"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/internal/post"
	"github.com/dkosyrev/postline/models"
	"github.com/jinzhu/gorm"
)

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

func (s *PostPostgresStorage) CreatePost(ctx context.Context, input model.NewPost) (*model.Post, error) {
	authorID, err := parseID(input.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}

	p := &models.Post{
		Title:    input.Title,
		Text:     input.Text,
		AuthorID: authorID,
	}
	if input.Image != nil {
		p.Image = *input.Image
	}

	if err := DB.Create(p).Error; err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return toGraphPost(p), nil
}

func (s *PostPostgresStorage) GetPostById(id string) (*model.Post, error) {
	idUint, err := parseID(id)
	if err != nil {
		return nil, post.ErrNotFound
	}

	var p models.Post
	if err := DB.First(&p, idUint).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, post.ErrNotFound
		}
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	return toGraphPost(&p), nil
}

func (s *PostPostgresStorage) GetAllPosts() ([]*model.Post, error) {
	var posts []models.Post
	if err := DB.Order("id asc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("could not get posts: %w", err)
	}

	results := make([]*model.Post, 0, len(posts))
	for i := range posts {
		results = append(results, toGraphPost(&posts[i]))
	}

	return results, nil
}

func toGraphPost(p *models.Post) *model.Post {
	result := &model.Post{
		ID:        fmt.Sprint(p.ID),
		Title:     p.Title,
		Text:      p.Text,
		AuthorID:  fmt.Sprint(p.AuthorID),
		CreatedAt: p.CreatedAt,
	}
	if p.Image != "" {
		image := p.Image
		result.Image = &image
	}
	return result
}
