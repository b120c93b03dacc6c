package mocks

import (
	"sync"

	"github.com/dkosyrev/postline/graph/model"
)

// MockBroadcaster records broadcast posts so tests can assert on them.
type MockBroadcaster struct {
	mu    sync.Mutex
	posts []*model.Post
}

func NewMockBroadcaster() *MockBroadcaster {
	return &MockBroadcaster{}
}

func (m *MockBroadcaster) BroadcastNewPost(p *model.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, p)
}

// BroadcastedPosts returns every post broadcast so far, in order.
func (m *MockBroadcaster) BroadcastedPosts() []*model.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.Post(nil), m.posts...)
}
