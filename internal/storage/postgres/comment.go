package postgres

import (
	"context"
	"fmt"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/models"
)

type CommentPostgresStorage struct{}

func NewCommentPostgresStorage() *CommentPostgresStorage {
	return &CommentPostgresStorage{}
}

func (s *CommentPostgresStorage) CreateComment(ctx context.Context, input model.NewComment) (*model.Comment, error) {
	authorID, err := parseID(input.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("invalid author id: %w", err)
	}
	postID, err := parseID(input.PostID)
	if err != nil {
		return nil, fmt.Errorf("invalid post id: %w", err)
	}

	c := &models.Comment{
		Text:     input.Text,
		AuthorID: authorID,
		PostID:   postID,
	}

	if err := DB.Create(c).Error; err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return toGraphComment(c), nil
}

func (s *CommentPostgresStorage) GetComments(postID string) ([]*model.Comment, error) {
	postIDUint, err := parseID(postID)
	if err != nil {
		return []*model.Comment{}, nil
	}

	var comments []models.Comment
	err = DB.Where("post_id = ?", postIDUint).Order("id asc").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	results := make([]*model.Comment, 0, len(comments))
	for i := range comments {
		results = append(results, toGraphComment(&comments[i]))
	}

	return results, nil
}

func toGraphComment(c *models.Comment) *model.Comment {
	return &model.Comment{
		ID:        fmt.Sprint(c.ID),
		Text:      c.Text,
		AuthorID:  fmt.Sprint(c.AuthorID),
		PostID:    fmt.Sprint(c.PostID),
		CreatedAt: c.CreatedAt,
	}
}
