package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainrepo "blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthroughTxManager executes the transactional closure directly against
// a fixed factory, standing in for a real database transaction in tests.
type passthroughTxManager struct {
	factory domainrepo.RepositoryFactory
}

func (tm *passthroughTxManager) Execute(_ context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	return fn(tm.factory)
}

// fixedFactory hands out the same mock repositories for every call.
type fixedFactory struct {
	userRepo    *mockRepo.MockUserRepository
	postRepo    *mockRepo.MockPostRepository
	commentRepo *mockRepo.MockCommentRepository
	tagRepo     *mockRepo.MockTagRepository
}

func newFixedFactory(t *testing.T) *fixedFactory {
	return &fixedFactory{
		userRepo:    mockRepo.NewMockUserRepository(t),
		postRepo:    mockRepo.NewMockPostRepository(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
		tagRepo:     mockRepo.NewMockTagRepository(t),
	}
}

func (f *fixedFactory) NewUserRepository() domainrepo.UserRepository {
	return f.userRepo
}

func (f *fixedFactory) NewPostRepository() domainrepo.PostRepository {
	return f.postRepo
}

func (f *fixedFactory) NewCommentRepository() domainrepo.CommentRepository {
	return f.commentRepo
}

func (f *fixedFactory) NewTagRepository() domainrepo.TagRepository {
	return f.tagRepo
}
