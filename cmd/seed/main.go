// Command seed provisions a development database: schema migration, one
// user per role, a couple of posts with tags, and a comment thread.
package main

import (
	"context"
	"log/slog"
	"os"

	"blog/config"
	"blog/internal/domain/entity"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/infra/auth"
	logs "blog/internal/infra/log"
	"blog/internal/infra/persistence/model"
	"blog/internal/infra/persistence/postgres"
	"blog/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewPostRepository,
			postgres.NewCommentRepository,
			postgres.NewTagRepository,
			auth.NewBcryptHasher,
		),
		fx.Invoke(runSeed),
	).Run()
}

type seedParams struct {
	fx.In

	DB          *gorm.DB
	UserRepo    repository.UserRepository
	PostRepo    repository.PostRepository
	CommentRepo repository.CommentRepository
	TagRepo     repository.TagRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
	Shutdowner  fx.Shutdowner
}

func runSeed(params seedParams) {
	ctx := context.Background()

	if err := seed(ctx, params); err != nil {
		params.Logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	params.Logger.Info("Seeding completed")
	_ = params.Shutdowner.Shutdown()
}

func seed(ctx context.Context, params seedParams) error {
	if err := params.DB.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.PostModel{},
		&model.CommentModel{},
		&model.TagModel{},
		&model.PostToTagModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	users := []struct {
		username string
		email    string
		password string
		role     entity.Role
	}{
		{username: "admin", email: "admin@example.com", password: "admin12345", role: entity.RoleAdmin},
		{username: "blogger", email: "blogger@example.com", password: "blogger12345", role: entity.RoleBlogger},
		{username: "reader", email: "reader@example.com", password: "reader12345", role: entity.RoleReader},
	}

	seeded := make(map[entity.Role]*entity.User, len(users))
	for _, u := range users {
		existing, err := params.UserRepo.FindByEmail(ctx, u.email)
		if err == nil {
			seeded[u.role] = existing

			continue
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check existing user")
		}

		hash, err := params.Hasher.Hash(u.password)
		if err != nil {
			return errors.Wrap(err, "failed to hash seed password")
		}

		user := &entity.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
			IsActive:     true,
		}
		if err := params.UserRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create seed user")
		}

		params.Logger.Info("Seeded user", slog.String("username", u.username), slog.String("role", u.role.String()))
		seeded[u.role] = user
	}

	return seedContent(ctx, params, seeded[entity.RoleBlogger], seeded[entity.RoleReader])
}

func seedContent(ctx context.Context, params seedParams, author, commenter *entity.User) error {
	posts := []struct {
		title   string
		content string
		tags    []string
	}{
		{
			title:   "Welcome to the Blog",
			content: "This is the first post, seeded for development.",
			tags:    []string{"meta", "welcome"},
		},
		{
			title:   "Writing Posts with Tags",
			content: "Posts can carry any number of tags.",
			tags:    []string{"howto"},
		},
	}

	for _, p := range posts {
		slug := impl.Slugify(p.title)
		if _, err := params.PostRepo.FindBySlug(ctx, slug); err == nil {
			continue
		} else if !errors.Is(err, repository.ErrPostNotFound) {
			return errors.Wrap(err, "failed to check existing post")
		}

		post := &entity.Post{
			Title:     p.title,
			Slug:      slug,
			Content:   p.content,
			AuthorID:  author.ID,
			Published: true,
		}
		if err := params.PostRepo.Create(ctx, post); err != nil {
			return errors.Wrap(err, "failed to create seed post")
		}

		for _, name := range p.tags {
			tag := &entity.Tag{Name: name}
			if err := params.TagRepo.Upsert(ctx, tag); err != nil {
				return errors.Wrap(err, "failed to upsert seed tag")
			}
			if err := params.TagRepo.AttachToPost(ctx, post.ID, tag.ID); err != nil {
				return errors.Wrap(err, "failed to attach seed tag")
			}
		}

		comment := &entity.Comment{
			Content: "First!",
			PostID:  post.ID,
			UserID:  commenter.ID,
		}
		if err := params.CommentRepo.Create(ctx, comment); err != nil {
			return errors.Wrap(err, "failed to create seed comment")
		}

		params.Logger.Info("Seeded post", slog.String("slug", slug))
	}

	return nil
}
