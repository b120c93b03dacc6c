// Package seed fills an empty store with the sample data the API serves.
package seed

import (
	"context"
	"fmt"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/internal/comment"
	"github.com/dkosyrev/postline/internal/post"
	"github.com/dkosyrev/postline/internal/user"
)

// Run seeds through the storage interfaces so every backend ends up with
// identical sample data and id sequences.
func Run(ctx context.Context, users user.UserStorage, posts post.PostStorage, comments comment.CommentStorage) error {
	anna, err := users.CreateUser(ctx, "Anna Weber", "anna@example.com")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	marc, err := users.CreateUser(ctx, "Marc Dubois", "marc@example.com")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	lena, err := users.CreateUser(ctx, "Lena Fischer", "lena@example.com")
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	catImage := "https://placekitten.com/600/400"
	newPosts := []model.NewPost{
		{Title: "Hello world", Text: "First post on the board.", AuthorID: anna.ID},
		{Title: "Cat pictures", Text: "Obligatory cat content.", AuthorID: marc.ID, Image: &catImage},
		{Title: "Go routines", Text: "Notes from the concurrency talk.", AuthorID: anna.ID},
		{Title: "Weekend plans", Text: "Anyone up for a hike?", AuthorID: lena.ID},
	}

	createdPosts := make([]*model.Post, 0, len(newPosts))
	for _, np := range newPosts {
		p, err := posts.CreatePost(ctx, np)
		if err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		createdPosts = append(createdPosts, p)
	}

	newComments := []model.NewComment{
		{Text: "Welcome!", AuthorID: marc.ID, PostID: createdPosts[0].ID},
		{Text: "More cats please.", AuthorID: anna.ID, PostID: createdPosts[1].ID},
		{Text: "Great talk indeed.", AuthorID: lena.ID, PostID: createdPosts[2].ID},
		{Text: "Count me in.", AuthorID: marc.ID, PostID: createdPosts[3].ID},
	}
	for _, nc := range newComments {
		if _, err := comments.CreateComment(ctx, nc); err != nil {
			return fmt.Errorf("seed comments: %w", err)
		}
	}

	return nil
}
