package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentServiceFixtures struct {
	service usecase.CommentUsecase
	factory *fixedFactory
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	factory := newFixedFactory(t)
	svc := NewCommentService(CommentServiceParams{
		CommentRepo: factory.commentRepo,
		PostRepo:    factory.postRepo,
		Logger:      newDiscardLogger(),
	})

	return commentServiceFixtures{service: svc, factory: factory}
}

func TestCommentService_Create_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	postID := uuid.New()
	userID := uuid.New()
	commentID := uuid.New()

	fx.factory.postRepo.On("FindByID", ctx, postID).Return(&entity.Post{ID: postID}, nil)
	fx.factory.commentRepo.On("Create", ctx, mock.MatchedBy(func(c *entity.Comment) bool {
		return c.PostID == postID && c.UserID == userID && c.Content == "nice post"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Comment).ID = commentID
	}).Return(nil)

	output, err := fx.service.Create(ctx, postID, userID, &usecase.CreateCommentInput{Content: "nice post"})

	require.NoError(t, err)
	assert.Equal(t, commentID, output.ID)
}

func TestCommentService_Create_PostMissing(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	missingPostID := uuid.New()
	fx.factory.postRepo.On("FindByID", ctx, missingPostID).Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.Create(ctx, missingPostID, uuid.New(), &usecase.CreateCommentInput{Content: "orphan"})

	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}

func TestCommentService_ListByPost(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	postID := uuid.New()
	comments := []*entity.Comment{
		{ID: uuid.New(), PostID: postID, Content: "newest", AuthorName: "alice"},
		{ID: uuid.New(), PostID: postID, Content: "older", AuthorName: "bob"},
	}
	fx.factory.commentRepo.On("FindByPostID", ctx, postID).Return(comments, nil)

	outputs, err := fx.service.ListByPost(ctx, postID)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "alice", outputs[0].AuthorName)
}

func TestCommentService_Update_NotFound(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	missingID := uuid.New()
	fx.factory.commentRepo.On("FindByID", ctx, missingID).Return(nil, repository.ErrCommentNotFound)

	_, err := fx.service.Update(ctx, missingID, &usecase.UpdateCommentInput{Content: "edited"})

	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}

func TestCommentService_Delete_Success(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()

	commentID := uuid.New()
	fx.factory.commentRepo.On("Delete", ctx, commentID).Return(nil)

	assert.NoError(t, fx.service.Delete(ctx, commentID))
}
