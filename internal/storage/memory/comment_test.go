package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkosyrev/postline/graph/model"
)

func TestCommentMemoryStorage_CreateComment(t *testing.T) {
	storage := NewCommentMemoryStorage()
	ctx := context.Background()

	t.Run("assigns sequential ids and a creation time", func(t *testing.T) {
		first, err := storage.CreateComment(ctx, model.NewComment{Text: "one", AuthorID: "1", PostID: "1"})
		require.NoError(t, err)
		assert.Equal(t, "1", first.ID)
		assert.Equal(t, "one", first.Text)
		assert.Equal(t, "1", first.AuthorID)
		assert.Equal(t, "1", first.PostID)
		assert.False(t, first.CreatedAt.IsZero())

		second, err := storage.CreateComment(ctx, model.NewComment{Text: "two", AuthorID: "1", PostID: "1"})
		require.NoError(t, err)
		assert.Equal(t, "2", second.ID)
	})

	t.Run("does not require the referenced post to exist", func(t *testing.T) {
		c, err := storage.CreateComment(ctx, model.NewComment{Text: "dangling", AuthorID: "1", PostID: "404"})
		require.NoError(t, err)
		assert.Equal(t, "404", c.PostID)
	})
}

func TestCommentMemoryStorage_GetComments(t *testing.T) {
	storage := NewCommentMemoryStorage()
	ctx := context.Background()

	_, err := storage.CreateComment(ctx, model.NewComment{Text: "on 1", AuthorID: "1", PostID: "1"})
	require.NoError(t, err)
	_, err = storage.CreateComment(ctx, model.NewComment{Text: "on 2", AuthorID: "2", PostID: "2"})
	require.NoError(t, err)
	_, err = storage.CreateComment(ctx, model.NewComment{Text: "also on 1", AuthorID: "2", PostID: "1"})
	require.NoError(t, err)

	t.Run("returns only comments of the requested post in order", func(t *testing.T) {
		comments, err := storage.GetComments("1")
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, "on 1", comments[0].Text)
		assert.Equal(t, "also on 1", comments[1].Text)
	})

	t.Run("post without comments yields an empty list", func(t *testing.T) {
		comments, err := storage.GetComments("777")
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}
