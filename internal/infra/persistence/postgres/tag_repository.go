package postgres

import (
	"context"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tagRepository implements the repository.TagRepository interface using GORM.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// Upsert inserts a tag by name, leaving an existing row untouched.
// The returned entity always carries the persisted row's ID.
func (repo *tagRepository) Upsert(ctx context.Context, tag *entity.Tag) error {
	tagM := &model.TagModel{Name: tag.Name}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(tagM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert tag")
	}

	// ON CONFLICT DO NOTHING returns no row for an existing tag, so re-read
	// to learn its ID either way.
	existing, err := repo.FindByName(ctx, tag.Name)
	if err != nil {
		return err
	}

	tag.ID = existing.ID
	tag.CreatedAt = existing.CreatedAt

	return nil
}

// FindByName retrieves a tag by its unique name.
func (repo *tagRepository) FindByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tagM model.TagModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&tagM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by name")
	}

	return toTagDomain(&tagM), nil
}

// AttachToPost links a tag to a post, ignoring an already existing link.
func (repo *tagRepository) AttachToPost(ctx context.Context, postID, tagID uuid.UUID) error {
	link := &model.PostToTagModel{PostID: postID, TagID: tagID}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("post or tag does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to attach tag to post")
	}

	return nil
}

// FindByPostID returns all tags attached to a post.
func (repo *tagRepository) FindByPostID(ctx context.Context, postID uuid.UUID) ([]*entity.Tag, error) {
	var tagModels []*model.TagModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN post_to_tag ON post_to_tag.tag_id = tags.id").
		Where("post_to_tag.post_id = ?", postID).
		Order("tags.name ASC").
		Find(&tagModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags by post")
	}

	tags := make([]*entity.Tag, 0, len(tagModels))
	for _, tagM := range tagModels {
		tags = append(tags, toTagDomain(tagM))
	}

	return tags, nil
}

// toTagDomain converts a GORM TagModel to a domain Tag entity.
func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
