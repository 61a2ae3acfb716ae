package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tagService implements the TagUsecase interface.
type tagService struct {
	tagRepo repository.TagRepository
	logger  *slog.Logger
}

// TagServiceParams holds dependencies for tagService, injected by Fx.
type TagServiceParams struct {
	fx.In

	TagRepo repository.TagRepository
	Logger  *slog.Logger
}

// NewTagService is the constructor for tagService.
func NewTagService(params TagServiceParams) usecase.TagUsecase {
	return &tagService{
		tagRepo: params.TagRepo,
		logger:  params.Logger,
	}
}

func (srv *tagService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeTagName lowercases and trims a tag name so "Go" and "go " share a row.
func normalizeTagName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("tag name must not be empty")
	}

	return name, nil
}

// Upsert creates a tag by name, or returns the existing one.
func (srv *tagService) Upsert(ctx context.Context, name string) (*usecase.TagOutput, error) {
	normalized, err := normalizeTagName(name)
	if err != nil {
		return nil, err
	}

	tag := &entity.Tag{Name: normalized}
	if err := srv.tagRepo.Upsert(ctx, tag); err != nil {
		return nil, errors.Wrap(err, "failed to upsert tag")
	}

	return usecase.NewTagOutput(tag), nil
}

// AttachToPost links a tag to a post, creating the tag first if needed.
func (srv *tagService) AttachToPost(ctx context.Context, postID uuid.UUID, name string) (*usecase.TagOutput, error) {
	normalized, err := normalizeTagName(name)
	if err != nil {
		return nil, err
	}

	tag := &entity.Tag{Name: normalized}
	if err := srv.tagRepo.Upsert(ctx, tag); err != nil {
		return nil, errors.Wrap(err, "failed to upsert tag before attach")
	}

	if err := srv.tagRepo.AttachToPost(ctx, postID, tag.ID); err != nil {
		return nil, errors.Wrap(err, "failed to attach tag to post")
	}

	srv.log(ctx).Debug("Tag attached", slog.Any("postID", postID), slog.String("tag", normalized))

	return usecase.NewTagOutput(tag), nil
}

// TagsForPost returns all tags attached to a post.
func (srv *tagService) TagsForPost(ctx context.Context, postID uuid.UUID) ([]*usecase.TagOutput, error) {
	tags, err := srv.tagRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags for post")
	}

	outputs := make([]*usecase.TagOutput, 0, len(tags))
	for _, tag := range tags {
		outputs = append(outputs, usecase.NewTagOutput(tag))
	}

	return outputs, nil
}
