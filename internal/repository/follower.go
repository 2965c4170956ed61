package repository

import (
	"context"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/pkg/xcontext"
)

type FollowerRepository interface {
	Create(ctx context.Context, data *entity.Follower) error
	Delete(ctx context.Context, followerID, followedID int64) error
	Get(ctx context.Context, followerID, followedID int64) (*entity.Follower, error)
	GetFollowingList(ctx context.Context, followerID int64, offset, limit int) ([]entity.User, error)
	GetFollowerList(ctx context.Context, followedID int64, offset, limit int) ([]entity.User, error)
	CountFollowing(ctx context.Context, followerID int64) (int64, error)
	CountFollowers(ctx context.Context, followedID int64) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type followerRepository struct{}

func NewFollowerRepository() *followerRepository {
	return &followerRepository{}
}

// Create inserts the edge. Inserting an existing edge violates the
// composite primary key and returns the database's duplicate-key error;
// callers treat that as "already following".
func (r *followerRepository) Create(ctx context.Context, data *entity.Follower) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *followerRepository) Delete(ctx context.Context, followerID, followedID int64) error {
	return xcontext.DB(ctx).
		Where("follower_id=? AND followed_id=?", followerID, followedID).
		Delete(&entity.Follower{}).Error
}

func (r *followerRepository) Get(
	ctx context.Context, followerID, followedID int64,
) (*entity.Follower, error) {
	var result entity.Follower
	err := xcontext.DB(ctx).
		Where("follower_id=? AND followed_id=?", followerID, followedID).
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *followerRepository) GetFollowingList(
	ctx context.Context, followerID int64, offset, limit int,
) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).Model(&entity.User{}).
		Joins("JOIN followers ON followers.followed_id=users.id").
		Where("followers.follower_id=?", followerID).
		Order("users.username ASC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followerRepository) GetFollowerList(
	ctx context.Context, followedID int64, offset, limit int,
) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).Model(&entity.User{}).
		Joins("JOIN followers ON followers.follower_id=users.id").
		Where("followers.followed_id=?", followedID).
		Order("users.username ASC").
		Offset(offset).Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *followerRepository) CountFollowing(ctx context.Context, followerID int64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follower{}).
		Where("follower_id=?", followerID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *followerRepository) CountFollowers(ctx context.Context, followedID int64) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).Model(&entity.Follower{}).
		Where("followed_id=?", followedID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *followerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.Follower{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
