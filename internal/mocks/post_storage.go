package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/internal/post"
)

// MockPostStorage is an in-memory PostStorage whose methods can be forced
// to fail via Err, for exercising resolver error paths.
type MockPostStorage struct {
	mu     sync.Mutex
	posts  map[string]*model.Post
	nextID int

	// Err, when set, is returned by every method.
	Err error
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{
		posts:  make(map[string]*model.Post),
		nextID: 1,
	}
}

func (m *MockPostStorage) CreatePost(ctx context.Context, input model.NewPost) (*model.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := strconv.Itoa(m.nextID)
	m.nextID++

	p := &model.Post{
		ID:        id,
		Title:     input.Title,
		Text:      input.Text,
		AuthorID:  input.AuthorID,
		Image:     input.Image,
		CreatedAt: time.Now().UTC(),
	}
	m.posts[id] = p
	return p, nil
}

func (m *MockPostStorage) GetPostById(id string) (*model.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.posts[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	return p, nil
}

func (m *MockPostStorage) GetAllPosts() ([]*model.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	posts := make([]*model.Post, 0, len(m.posts))
	for _, p := range m.posts {
		posts = append(posts, p)
	}
	return posts, nil
}
