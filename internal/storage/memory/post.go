package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/internal/post"
)

type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[string]*model.Post
	nextID int // monotonic, not derived from len(posts)
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[string]*model.Post),
		nextID: 1,
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, input model.NewPost) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextID)
	s.nextID++

	p := &model.Post{
		ID:        id,
		Title:     input.Title,
		Text:      input.Text,
		AuthorID:  input.AuthorID,
		Image:     input.Image,
		CreatedAt: time.Now().UTC(),
	}

	s.posts[id] = p
	return p, nil
}

func (s *PostMemoryStorage) GetPostById(id string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, post.ErrNotFound
	}

	return p, nil
}

func (s *PostMemoryStorage) GetAllPosts() ([]*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]*model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sortByNumericID(posts, func(p *model.Post) string { return p.ID })

	return posts, nil
}
