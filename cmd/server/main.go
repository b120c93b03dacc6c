package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/graphql-go/handler"

	"github.com/dkosyrev/postline/graph"
	"github.com/dkosyrev/postline/internal/comment"
	"github.com/dkosyrev/postline/internal/config"
	"github.com/dkosyrev/postline/internal/post"
	"github.com/dkosyrev/postline/internal/seed"
	"github.com/dkosyrev/postline/internal/storage/memory"
	"github.com/dkosyrev/postline/internal/storage/postgres"
	"github.com/dkosyrev/postline/internal/user"
	"github.com/dkosyrev/postline/internal/ws"
	"github.com/dkosyrev/postline/models"
)

func main() {
	storageType := flag.String("storage", "memory", "storage backend: memory or postgres")
	flag.Parse()

	config.LoadEnv()

	var postStore post.PostStorage
	var commentStore comment.CommentStorage
	var userStore user.UserStorage

	switch *storageType {
	case "postgres":
		if err := postgres.InitDB(); err != nil {
			log.Fatalf("failed to init database: %v", err)
		}
		err := postgres.DB.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}).Error
		if err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("using postgres storage")
		postStore = postgres.NewPostPostgresStorage()
		commentStore = postgres.NewCommentPostgresStorage()
		userStore = postgres.NewUserPostgresStorage()

	case "memory":
		log.Println("using in-memory storage")
		postStore = memory.NewPostMemoryStorage()
		commentStore = memory.NewCommentMemoryStorage()
		userStore = memory.NewUserMemoryStorage()

		if err := seed.Run(context.Background(), userStore, postStore, commentStore); err != nil {
			log.Fatalf("failed to seed sample data: %v", err)
		}

	default:
		log.Fatalf("unknown storage type: %s", *storageType)
	}

	hub := ws.NewHub(postStore)

	resolver := &graph.Resolver{
		PostStore:    postStore,
		CommentStore: commentStore,
		UserStore:    userStore,
		Broadcaster:  hub,
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatalf("failed to build schema: %v", err)
	}

	// POST serves queries and mutations, GET serves the Playground UI
	gqlHandler := handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		Playground: true,
	})

	http.Handle("/graphql", gqlHandler)
	http.Handle("/ws", hub)

	port := config.GetEnvDefault("PORT", "4000")
	server := &http.Server{
		Addr: ":" + port,
	}

	go func() {
		log.Printf("server listening on http://localhost:%s/graphql", port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	if *storageType == "postgres" {
		if err := postgres.CloseDB(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}

	if err := server.Shutdown(context.Background()); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}

	log.Println("server stopped")
}
