package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dkosyrev/postline/graph/model"
)

type CommentMemoryStorage struct {
	mu       sync.Mutex
	comments map[string]*model.Comment
	nextID   int
}

func NewCommentMemoryStorage() *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments: make(map[string]*model.Comment),
		nextID:   1,
	}
}

// CreateComment appends the comment without checking that the referenced
// post or author exist. A dangling postId simply resolves to null later.
func (s *CommentMemoryStorage) CreateComment(ctx context.Context, input model.NewComment) (*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	s.nextID++

	c := &model.Comment{
		ID:        id,
		Text:      input.Text,
		AuthorID:  input.AuthorID,
		PostID:    input.PostID,
		CreatedAt: time.Now().UTC(),
	}

	s.comments[id] = c
	return c, nil
}

func (s *CommentMemoryStorage) GetComments(postID string) ([]*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comments := make([]*model.Comment, 0)
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	sortByNumericID(comments, func(c *model.Comment) string { return c.ID })

	return comments, nil
}
