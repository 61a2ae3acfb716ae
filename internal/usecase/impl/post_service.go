package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	PostRepo  repository.PostRepository
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		postRepo:  params.PostRepo,
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create publishes a new post and attaches its tags in one transaction.
// The slug is derived from the title; a colliding slug gets a short random
// suffix rather than failing the request.
func (srv *postService) Create(ctx context.Context, authorID uuid.UUID, input *usecase.CreatePostInput) (*usecase.PostOutput, error) {
	var createdPost *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		postRepo := repoFactory.NewPostRepository()
		tagRepo := repoFactory.NewTagRepository()

		createdPost = &entity.Post{
			Title:     input.Title,
			Slug:      Slugify(input.Title),
			Content:   input.Content,
			AuthorID:  authorID,
			Published: input.Published,
		}

		if err := postRepo.Create(ctx, createdPost); err != nil {
			if !errors.Is(err, domainerrors.ErrConflict) {
				return err
			}

			// Slug collision: retry once with a random suffix.
			createdPost.Slug = createdPost.Slug + "-" + uuid.New().String()[:8]
			if err := postRepo.Create(ctx, createdPost); err != nil {
				return err
			}
		}

		for _, name := range input.Tags {
			tag := &entity.Tag{Name: name}
			if err := tagRepo.Upsert(ctx, tag); err != nil {
				return err
			}
			if err := tagRepo.AttachToPost(ctx, createdPost.ID, tag.ID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to create post", slog.Any("authorID", authorID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Post created", slog.Any("postID", createdPost.ID), slog.String("slug", createdPost.Slug))

	return usecase.NewPostOutput(createdPost), nil
}

const (
	defaultPostPageSize = 20
	maxPostPageSize     = 100
)

// List returns posts newest first, paginated.
func (srv *postService) List(ctx context.Context, input *usecase.ListPostsInput) ([]*usecase.PostOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPostPageSize
	}
	if limit > maxPostPageSize {
		limit = maxPostPageSize
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	posts, err := srv.postRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	outputs := make([]*usecase.PostOutput, 0, len(posts))
	for _, post := range posts {
		outputs = append(outputs, usecase.NewPostOutput(post))
	}

	return outputs, nil
}

// GetByID returns a single post.
func (srv *postService) GetByID(ctx context.Context, id uuid.UUID) (*usecase.PostOutput, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("post not found")
		}

		return nil, errors.Wrap(err, "failed to load post")
	}

	return usecase.NewPostOutput(post), nil
}

// GetBySlug returns a single post by its URL slug.
func (srv *postService) GetBySlug(ctx context.Context, slug string) (*usecase.PostOutput, error) {
	post, err := srv.postRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("post not found")
		}

		return nil, errors.Wrap(err, "failed to load post by slug")
	}

	return usecase.NewPostOutput(post), nil
}

// Update applies an edit to an existing post. The slug never changes on
// edit so existing links keep working.
func (srv *postService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdatePostInput) (*usecase.PostOutput, error) {
	post, err := srv.postRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("post not found")
		}

		return nil, errors.Wrap(err, "failed to load post for update")
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := srv.postRepo.Update(ctx, post); err != nil {
		return nil, errors.Wrap(err, "failed to persist post update")
	}

	srv.log(ctx).Info("Post updated", slog.Any("postID", post.ID))

	return usecase.NewPostOutput(post), nil
}

// Delete removes a post.
func (srv *postService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return domainerrors.ErrResourceNotFound.WrapMessage("post not found")
		}

		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).Info("Post deleted", slog.Any("postID", id))

	return nil
}

// Slugify turns a title into a URL-safe slug: lowercase, alphanumeric runs
// joined by single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
