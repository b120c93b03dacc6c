package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// defaultAvatarSize matches the declared schema default (S_128).
const defaultAvatarSize = 128

// dateType carries timestamps as RFC3339 strings over the wire.
var dateType = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "Date",
	Description: "An RFC3339 encoded date-time string.",
	Serialize: func(value interface{}) interface{} {
		switch v := value.(type) {
		case time.Time:
			return v.UTC().Format(time.RFC3339)
		case *time.Time:
			if v == nil {
				return nil
			}
			return v.UTC().Format(time.RFC3339)
		case string:
			return v
		default:
			return nil
		}
	},
	ParseValue: func(value interface{}) interface{} {
		switch v := value.(type) {
		case string:
			return parseRFC3339(v)
		case time.Time:
			return v
		default:
			return nil
		}
	},
	ParseLiteral: func(valueAST ast.Value) interface{} {
		if sv, ok := valueAST.(*ast.StringValue); ok {
			return parseRFC3339(sv.Value)
		}
		return nil
	},
})

func parseRFC3339(s string) interface{} {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// nil makes the engine report a coercion error for this literal
		return nil
	}
	return t
}

var avatarSizeType = graphql.NewEnum(graphql.EnumConfig{
	Name:        "AvatarSize",
	Description: "Pixel size of a synthesized avatar image.",
	Values: graphql.EnumValueConfigMap{
		"S_64":  &graphql.EnumValueConfig{Value: 64},
		"S_128": &graphql.EnumValueConfig{Value: 128},
		"S_256": &graphql.EnumValueConfig{Value: 256},
		"S_512": &graphql.EnumValueConfig{Value: 512},
	},
})

// NewSchema declares the type system and binds every field to its resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.String},
			"email": &graphql.Field{Type: graphql.String},
			"avatar": &graphql.Field{
				Type: graphql.String,
				Args: graphql.FieldConfigArgument{
					"size": &graphql.ArgumentConfig{
						Type:         avatarSizeType,
						DefaultValue: defaultAvatarSize,
					},
				},
				Resolve: r.resolveUserAvatar,
			},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":    &graphql.Field{Type: graphql.String},
			"text":     &graphql.Field{Type: graphql.String},
			"authorId": &graphql.Field{Type: graphql.ID},
			"image": &graphql.Field{
				Type:    graphql.String,
				Resolve: r.resolvePostImage,
			},
			"createdAt": &graphql.Field{Type: dateType},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"text":      &graphql.Field{Type: graphql.String},
			"authorId":  &graphql.Field{Type: graphql.ID},
			"postId":    &graphql.Field{Type: graphql.ID},
			"createdAt": &graphql.Field{Type: dateType},
		},
	})

	// relationship fields are attached afterwards because Post and Comment
	// reference each other
	postType.AddFieldConfig("author", &graphql.Field{
		Type:    userType,
		Resolve: r.resolvePostAuthor,
	})
	postType.AddFieldConfig("comments", &graphql.Field{
		Type:    graphql.NewList(commentType),
		Resolve: r.resolvePostComments,
	})
	commentType.AddFieldConfig("author", &graphql.Field{
		Type:    userType,
		Resolve: r.resolveCommentAuthor,
	})
	commentType.AddFieldConfig("post", &graphql.Field{
		Type:    postType,
		Resolve: r.resolveCommentPost,
	})

	newPostInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "NewPost",
		Fields: graphql.InputObjectConfigFieldMap{
			"title":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"text":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"image":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	newCommentInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "NewComment",
		Fields: graphql.InputObjectConfigFieldMap{
			"text":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"authorId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"postId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"user": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveUser,
			},
			"users": &graphql.Field{
				Type:    graphql.NewList(userType),
				Resolve: r.resolveUsers,
			},
			"post": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolvePost,
			},
			"posts": &graphql.Field{
				Type:    graphql.NewList(postType),
				Resolve: r.resolvePosts,
			},
			"comments": &graphql.Field{
				Type: graphql.NewList(commentType),
				Args: graphql.FieldConfigArgument{
					"postId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.resolveComments,
			},
			"version": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: r.resolveVersion,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(newPostInput)},
				},
				Resolve: r.resolveAddPost,
			},
			"addComment": &graphql.Field{
				Type: commentType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(newCommentInput)},
				},
				Resolve: r.resolveAddComment,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
