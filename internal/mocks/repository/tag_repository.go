package repository

import (
	"context"
	"testing"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTagRepository is a testify mock for repository.TagRepository.
type MockTagRepository struct {
	mock.Mock
}

// NewMockTagRepository creates a mock whose expectations are asserted on cleanup.
func NewMockTagRepository(t *testing.T) *MockTagRepository {
	m := &MockTagRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTagRepository) Upsert(ctx context.Context, tag *entity.Tag) error {
	args := m.Called(ctx, tag)

	return args.Error(0)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	args := m.Called(ctx, name)
	if tag, ok := args.Get(0).(*entity.Tag); ok {
		return tag, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockTagRepository) AttachToPost(ctx context.Context, postID, tagID uuid.UUID) error {
	args := m.Called(ctx, postID, tagID)

	return args.Error(0)
}

func (m *MockTagRepository) FindByPostID(ctx context.Context, postID uuid.UUID) ([]*entity.Tag, error) {
	args := m.Called(ctx, postID)
	if tags, ok := args.Get(0).([]*entity.Tag); ok {
		return tags, args.Error(1)
	}

	return nil, args.Error(1)
}
