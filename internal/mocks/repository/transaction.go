package repository

import (
	"context"
	"testing"

	domainrepo "blog/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a testify mock for repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock whose expectations are asserted on cleanup.
func NewMockTransactionManager(t *testing.T) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// MockRepositoryFactory is a testify mock for repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock whose expectations are asserted on cleanup.
func NewMockRepositoryFactory(t *testing.T) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) NewUserRepository() domainrepo.UserRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.UserRepository)
}

func (m *MockRepositoryFactory) NewPostRepository() domainrepo.PostRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.PostRepository)
}

func (m *MockRepositoryFactory) NewCommentRepository() domainrepo.CommentRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.CommentRepository)
}

func (m *MockRepositoryFactory) NewTagRepository() domainrepo.TagRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.TagRepository)
}
