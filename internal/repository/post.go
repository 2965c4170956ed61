package repository

import (
	"context"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/pkg/xcontext"
)

// feedOrder is the ordering of every feed: newest first, ties on the
// timestamp broken by ascending id (insertion order).
const feedOrder = "posts.created_at DESC, posts.id ASC"

type PostRepository interface {
	Create(ctx context.Context, data *entity.Post) error
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	DeleteByID(ctx context.Context, id int64) error
	GetListByAuthorID(ctx context.Context, authorID int64, offset, limit int) ([]entity.Post, error)
	GetFollowedList(ctx context.Context, viewerID int64, offset, limit int) ([]entity.Post, error)
	GetGlobalList(ctx context.Context, offset, limit int) ([]entity.Post, error)
	Count(ctx context.Context) (int64, error)
	CountByAuthorID(ctx context.Context, authorID int64) (int64, error)
}

type postRepository struct{}

func NewPostRepository() *postRepository {
	return &postRepository{}
}

func (r *postRepository) Create(ctx context.Context, data *entity.Post) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (*entity.Post, error) {
	var record entity.Post
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *postRepository) DeleteByID(ctx context.Context, id int64) error {
	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.Post{}).Error
}

func (r *postRepository) GetListByAuthorID(
	ctx context.Context, authorID int64, offset, limit int,
) ([]entity.Post, error) {
	var result []entity.Post
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Where("author_id=?", authorID).
		Order(feedOrder).
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetFollowedList returns a bounded window of the posts visible to the
// viewer: their own posts plus posts of every account they follow. The
// feed is never materialized in full; callers page through it with
// offset/limit.
func (r *postRepository) GetFollowedList(
	ctx context.Context, viewerID int64, offset, limit int,
) ([]entity.Post, error) {
	followed := xcontext.DB(ctx).
		Model(&entity.Follower{}).
		Select("followed_id").
		Where("follower_id=?", viewerID)

	var result []entity.Post
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Where("author_id=? OR author_id IN (?)", viewerID, followed).
		Order(feedOrder).
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) GetGlobalList(
	ctx context.Context, offset, limit int,
) ([]entity.Post, error) {
	var result []entity.Post
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Order(feedOrder).
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.Post{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *postRepository) CountByAuthorID(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Post{}).
		Where("author_id=?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
