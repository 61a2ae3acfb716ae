package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTagService(t *testing.T) (usecase.TagUsecase, *fixedFactory) {
	factory := newFixedFactory(t)
	svc := NewTagService(TagServiceParams{
		TagRepo: factory.tagRepo,
		Logger:  newDiscardLogger(),
	})

	return svc, factory
}

func TestTagService_Upsert_NormalizesName(t *testing.T) {
	svc, factory := createTestTagService(t)
	ctx := context.Background()

	tagID := uuid.New()
	factory.tagRepo.On("Upsert", ctx, mock.MatchedBy(func(tag *entity.Tag) bool {
		return tag.Name == "golang"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Tag).ID = tagID
	}).Return(nil)

	output, err := svc.Upsert(ctx, "  GoLang ")

	require.NoError(t, err)
	assert.Equal(t, "golang", output.Name)
	assert.Equal(t, tagID, output.ID)
}

func TestTagService_Upsert_EmptyName(t *testing.T) {
	svc, _ := createTestTagService(t)

	_, err := svc.Upsert(context.Background(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTagService_AttachToPost(t *testing.T) {
	svc, factory := createTestTagService(t)
	ctx := context.Background()

	postID := uuid.New()
	tagID := uuid.New()

	factory.tagRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.Tag")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Tag).ID = tagID
		}).Return(nil)
	factory.tagRepo.On("AttachToPost", ctx, postID, tagID).Return(nil)

	output, err := svc.AttachToPost(ctx, postID, "news")

	require.NoError(t, err)
	assert.Equal(t, tagID, output.ID)
}

func TestTagService_TagsForPost(t *testing.T) {
	svc, factory := createTestTagService(t)
	ctx := context.Background()

	postID := uuid.New()
	tags := []*entity.Tag{
		{ID: uuid.New(), Name: "go"},
		{ID: uuid.New(), Name: "web"},
	}
	factory.tagRepo.On("FindByPostID", ctx, postID).Return(tags, nil)

	outputs, err := svc.TagsForPost(ctx, postID)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "go", outputs[0].Name)
}
