package impl

import (
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	PostRepo    repository.PostRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		postRepo:    params.PostRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create attaches a new comment to a post. The post is verified to exist so
// the caller gets a 404 instead of a bare constraint failure.
func (srv *commentService) Create(ctx context.Context, postID, userID uuid.UUID, input *usecase.CreateCommentInput) (*usecase.CommentOutput, error) {
	if _, err := srv.postRepo.FindByID(ctx, postID); err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("post not found")
		}

		return nil, errors.Wrap(err, "failed to verify post before commenting")
	}

	comment := &entity.Comment{
		Content: input.Content,
		PostID:  postID,
		UserID:  userID,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Info("Comment created", slog.Any("commentID", comment.ID), slog.Any("postID", postID))

	return usecase.NewCommentOutput(comment), nil
}

// ListByPost returns a post's comments newest first.
func (srv *commentService) ListByPost(ctx context.Context, postID uuid.UUID) ([]*usecase.CommentOutput, error) {
	comments, err := srv.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	outputs := make([]*usecase.CommentOutput, 0, len(comments))
	for _, comment := range comments {
		outputs = append(outputs, usecase.NewCommentOutput(comment))
	}

	return outputs, nil
}

// Update applies an edit to an existing comment.
func (srv *commentService) Update(ctx context.Context, id uuid.UUID, input *usecase.UpdateCommentInput) (*usecase.CommentOutput, error) {
	comment, err := srv.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, domainerrors.ErrResourceNotFound.WrapMessage("comment not found")
		}

		return nil, errors.Wrap(err, "failed to load comment for update")
	}

	comment.Content = input.Content

	if err := srv.commentRepo.Update(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to persist comment update")
	}

	return usecase.NewCommentOutput(comment), nil
}

// Delete removes a comment.
func (srv *commentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.commentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return domainerrors.ErrResourceNotFound.WrapMessage("comment not found")
		}

		return errors.Wrap(err, "failed to delete comment")
	}

	srv.log(ctx).Info("Comment deleted", slog.Any("commentID", id))

	return nil
}
