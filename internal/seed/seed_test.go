package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkosyrev/postline/internal/storage/memory"
)

func TestRun(t *testing.T) {
	users := memory.NewUserMemoryStorage()
	posts := memory.NewPostMemoryStorage()
	comments := memory.NewCommentMemoryStorage()

	err := Run(context.Background(), users, posts, comments)
	require.NoError(t, err)

	allUsers, err := users.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, allUsers, 3)

	allPosts, err := posts.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, allPosts, 4)

	t.Run("every post references a seeded user", func(t *testing.T) {
		for _, p := range allPosts {
			_, err := users.GetUserById(p.AuthorID)
			assert.NoError(t, err, "post %s has dangling author %s", p.ID, p.AuthorID)
		}
	})

	t.Run("every post has a comment", func(t *testing.T) {
		for _, p := range allPosts {
			postComments, err := comments.GetComments(p.ID)
			require.NoError(t, err)
			assert.NotEmpty(t, postComments)
		}
	})
}
