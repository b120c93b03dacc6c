package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dkosyrev/postline/graph/model"
	"github.com/dkosyrev/postline/internal/comment"
	"github.com/dkosyrev/postline/internal/post"
	"github.com/dkosyrev/postline/internal/user"
)

// Version is returned by the version query so clients can probe the API.
const Version = "1.1.0"

// defaultPostImage is used when a post was created without an image.
const defaultPostImage = "https://picsum.photos/seed/postline/600/400"

// avatarURLFormat encodes the requested pixel size into the synthesized URL.
const avatarURLFormat = "https://api.adorable.io/avatars/%d/%s.png"

// Broadcaster pushes a newly created post to all connected realtime clients.
type Broadcaster interface {
	BroadcastNewPost(p *model.Post)
}

// Resolver is the root for all field resolvers. Storage backends and the
// websocket broadcaster are injected here.
type Resolver struct {
	UserStore    user.UserStorage
	PostStore    post.PostStorage
	CommentStore comment.CommentStorage
	Broadcaster  Broadcaster
}

func (r *Resolver) resolveUser(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	u, err := r.UserStore.GetUserById(id)
	if errors.Is(err, user.ErrNotFound) {
		// an unknown id resolves to null, not to an error
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Resolver) resolveUsers(p graphql.ResolveParams) (interface{}, error) {
	return r.UserStore.GetAllUsers()
}

func (r *Resolver) resolvePost(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	pst, err := r.PostStore.GetPostById(id)
	if errors.Is(err, post.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return pst, nil
}

func (r *Resolver) resolvePosts(p graphql.ResolveParams) (interface{}, error) {
	return r.PostStore.GetAllPosts()
}

func (r *Resolver) resolveComments(p graphql.ResolveParams) (interface{}, error) {
	postID, _ := p.Args["postId"].(string)
	return r.CommentStore.GetComments(postID)
}

func (r *Resolver) resolveVersion(p graphql.ResolveParams) (interface{}, error) {
	return Version, nil
}

// avatar synthesizes an image URL for the requested size. Size membership
// is enforced by the AvatarSize enum before this resolver runs.
func (r *Resolver) resolveUserAvatar(p graphql.ResolveParams) (interface{}, error) {
	u, ok := p.Source.(*model.User)
	if !ok {
		return nil, fmt.Errorf("avatar: unexpected source type %T", p.Source)
	}
	size, ok := p.Args["size"].(int)
	if !ok {
		size = defaultAvatarSize
	}
	return fmt.Sprintf(avatarURLFormat, size, u.Email), nil
}

// image falls back to the default URL only when the post has none stored,
// the same policy for single-post and list-posts resolution.
func (r *Resolver) resolvePostImage(p graphql.ResolveParams) (interface{}, error) {
	pst, ok := p.Source.(*model.Post)
	if !ok {
		return nil, fmt.Errorf("image: unexpected source type %T", p.Source)
	}
	if pst.Image != nil && *pst.Image != "" {
		return *pst.Image, nil
	}
	return defaultPostImage, nil
}

func (r *Resolver) resolvePostAuthor(p graphql.ResolveParams) (interface{}, error) {
	pst, ok := p.Source.(*model.Post)
	if !ok {
		return nil, fmt.Errorf("author: unexpected source type %T", p.Source)
	}
	u, err := r.UserStore.GetUserById(pst.AuthorID)
	if errors.Is(err, user.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Resolver) resolvePostComments(p graphql.ResolveParams) (interface{}, error) {
	pst, ok := p.Source.(*model.Post)
	if !ok {
		return nil, fmt.Errorf("comments: unexpected source type %T", p.Source)
	}
	return r.CommentStore.GetComments(pst.ID)
}

// author resolves from the comment's own authorId, not the parent post's.
func (r *Resolver) resolveCommentAuthor(p graphql.ResolveParams) (interface{}, error) {
	c, ok := p.Source.(*model.Comment)
	if !ok {
		return nil, fmt.Errorf("author: unexpected source type %T", p.Source)
	}
	u, err := r.UserStore.GetUserById(c.AuthorID)
	if errors.Is(err, user.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Resolver) resolveCommentPost(p graphql.ResolveParams) (interface{}, error) {
	c, ok := p.Source.(*model.Comment)
	if !ok {
		return nil, fmt.Errorf("post: unexpected source type %T", p.Source)
	}
	pst, err := r.PostStore.GetPostById(c.PostID)
	if errors.Is(err, post.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return pst, nil
}

func (r *Resolver) resolveAddPost(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.New("addPost: missing input")
	}

	newPost := model.NewPost{
		Title:    stringArg(input, "title"),
		Text:     stringArg(input, "text"),
		AuthorID: stringArg(input, "authorId"),
	}
	if image, ok := input["image"].(string); ok && image != "" {
		newPost.Image = &image
	}

	created, err := r.PostStore.CreatePost(p.Context, newPost)
	if err != nil {
		return nil, fmt.Errorf("could not add post: %w", err)
	}

	if r.Broadcaster != nil {
		r.Broadcaster.BroadcastNewPost(created)
	}

	return created, nil
}

func (r *Resolver) resolveAddComment(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.New("addComment: missing input")
	}

	newComment := model.NewComment{
		Text:     stringArg(input, "text"),
		AuthorID: stringArg(input, "authorId"),
		PostID:   stringArg(input, "postId"),
	}

	created, err := r.CommentStore.CreateComment(p.Context, newComment)
	if err != nil {
		return nil, fmt.Errorf("could not add comment: %w", err)
	}

	return created, nil
}

func stringArg(input map[string]interface{}, key string) string {
	s, _ := input[key].(string)
	return s
}
