package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkosyrev/postline/graph/model"
)

func TestCommentPostgresStorage_CreateComment(t *testing.T) {
	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	storage := NewCommentPostgresStorage()
	ctx := context.Background()

	t.Run("creates a comment", func(t *testing.T) {
		created, err := storage.CreateComment(ctx, model.NewComment{Text: "hi", AuthorID: "1", PostID: "1"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "hi", created.Text)
		assert.Equal(t, "1", created.AuthorID)
		assert.Equal(t, "1", created.PostID)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("rejects a non-numeric post id", func(t *testing.T) {
		_, err := storage.CreateComment(ctx, model.NewComment{Text: "hi", AuthorID: "1", PostID: "abc"})
		assert.Error(t, err)
	})
}

func TestCommentPostgresStorage_GetComments(t *testing.T) {
	oldDB := setupTestDB(t)
	defer teardownTestDB(oldDB)

	storage := NewCommentPostgresStorage()
	ctx := context.Background()

	_, err := storage.CreateComment(ctx, model.NewComment{Text: "on 1", AuthorID: "1", PostID: "1"})
	require.NoError(t, err)
	_, err = storage.CreateComment(ctx, model.NewComment{Text: "on 2", AuthorID: "1", PostID: "2"})
	require.NoError(t, err)
	_, err = storage.CreateComment(ctx, model.NewComment{Text: "also on 1", AuthorID: "2", PostID: "1"})
	require.NoError(t, err)

	t.Run("returns only comments of the requested post", func(t *testing.T) {
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
