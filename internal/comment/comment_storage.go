package comment

import (
	"context"

	"github.com/dkosyrev/postline/graph/model"
)

type CommentStorage interface {
	CreateComment(ctx context.Context, input model.NewComment) (*model.Comment, error)
	GetComments(postID string) ([]*model.Comment, error)
}
