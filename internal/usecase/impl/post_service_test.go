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

type postServiceFixtures struct {
	service usecase.PostUsecase
	factory *fixedFactory
}

func createTestPostService(t *testing.T) postServiceFixtures {
	factory := newFixedFactory(t)
	svc := NewPostService(PostServiceParams{
		TxManager: &passthroughTxManager{factory: factory},
		PostRepo:  factory.postRepo,
		Logger:    newDiscardLogger(),
	})

	return postServiceFixtures{service: svc, factory: factory}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Hello, World!", want: "hello-world"},
		{title: "  Leading and trailing  ", want: "leading-and-trailing"},
		{title: "Go 1.22 Released", want: "go-1-22-released"},
		{title: "---", want: ""},
		{title: "already-slugged", want: "already-slugged"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestPostService_Create_WithTags(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	authorID := uuid.New()
	postID := uuid.New()
	tagID := uuid.New()

	fx.factory.postRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Post) bool {
		return p.Slug == "my-first-post" && p.AuthorID == authorID
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Post).ID = postID
	}).Return(nil)

	fx.factory.tagRepo.On("Upsert", ctx, mock.MatchedBy(func(tag *entity.Tag) bool {
		return tag.Name == "golang"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Tag).ID = tagID
	}).Return(nil)
	fx.factory.tagRepo.On("AttachToPost", ctx, postID, tagID).Return(nil)

	output, err := fx.service.Create(ctx, authorID, &usecase.CreatePostInput{
		Title:     "My First Post",
		Content:   "hello",
		Published: true,
		Tags:      []string{"golang"},
	})

	require.NoError(t, err)
	assert.Equal(t, postID, output.ID)
	assert.Equal(t, "my-first-post", output.Slug)
}

func TestPostService_Create_SlugCollisionRetries(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	authorID := uuid.New()

	fx.factory.postRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Post) bool {
		return p.Slug == "duplicate-title"
	})).Return(domainerrors.ErrConflict.WrapMessage("a post with this slug already exists")).Once()

	fx.factory.postRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Post) bool {
		return len(p.Slug) > len("duplicate-title") && p.Slug[:len("duplicate-title")] == "duplicate-title"
	})).Return(nil).Once()

	output, err := fx.service.Create(ctx, authorID, &usecase.CreatePostInput{
		Title:   "Duplicate Title",
		Content: "hello",
	})

	require.NoError(t, err)
	assert.NotEqual(t, "duplicate-title", output.Slug)
	assert.Contains(t, output.Slug, "duplicate-title-")
}

func TestPostService_List_DefaultsPagination(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.factory.postRepo.On("List", ctx, defaultPostPageSize, 0).Return([]*entity.Post{}, nil)

	outputs, err := fx.service.List(ctx, &usecase.ListPostsInput{Limit: 0, Offset: -5})

	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestPostService_List_CapsPageSize(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.factory.postRepo.On("List", ctx, maxPostPageSize, 10).Return([]*entity.Post{}, nil)

	_, err := fx.service.List(ctx, &usecase.ListPostsInput{Limit: 9999, Offset: 10})

	require.NoError(t, err)
}

func TestPostService_GetByID_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	missingID := uuid.New()
	fx.factory.postRepo.On("FindByID", ctx, missingID).Return(nil, repository.ErrPostNotFound)

	_, err := fx.service.GetByID(ctx, missingID)

	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}

func TestPostService_Update_PartialFields(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	postID := uuid.New()
	existing := &entity.Post{ID: postID, Title: "Old Title", Slug: "old-title", Content: "old content"}

	fx.factory.postRepo.On("FindByID", ctx, postID).Return(existing, nil)
	fx.factory.postRepo.On("Update", ctx, mock.MatchedBy(func(p *entity.Post) bool {
		return p.Title == "New Title" && p.Content == "old content" && p.Slug == "old-title"
	})).Return(nil)

	newTitle := "New Title"
	output, err := fx.service.Update(ctx, postID, &usecase.UpdatePostInput{Title: &newTitle})

	require.NoError(t, err)
	assert.Equal(t, "New Title", output.Title)
	assert.Equal(t, "old-title", output.Slug)
}

func TestPostService_Delete_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	missingID := uuid.New()
	fx.factory.postRepo.On("Delete", ctx, missingID).Return(repository.ErrPostNotFound)

	err := fx.service.Delete(ctx, missingID)

	assert.ErrorIs(t, err, domainerrors.ErrResourceNotFound)
}
