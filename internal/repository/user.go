package repository

import (
	"context"
	"time"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateByID(ctx context.Context, id int64, data *entity.User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateLastSeen(ctx context.Context, id int64, seenAt time.Time) error
	DeleteByID(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("username=?", username).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("email=?", email).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) UpdateByID(ctx context.Context, id int64, data *entity.User) error {
	updateMap := map[string]any{}
	if data.Username != "" {
		updateMap["username"] = data.Username
	}

	updateMap["about_me"] = data.AboutMe

	return xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=?", id).
		Update("password_hash", passwordHash).Error
}

func (r *userRepository) UpdateLastSeen(ctx context.Context, id int64, seenAt time.Time) error {
	return xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=?", id).
		Update("last_seen", seenAt).Error
}

// DeleteByID removes the user together with their posts and every follow
// edge the user appears in. The caller is expected to run it inside a
// transaction.
func (r *userRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := xcontext.DB(ctx).Where("author_id=?", id).Delete(&entity.Post{}).Error; err != nil {
		return err
	}

	err := xcontext.DB(ctx).
		Where("follower_id=? OR followed_id=?", id, id).
		Delete(&entity.Follower{}).Error
	if err != nil {
		return err
	}

	return xcontext.DB(ctx).Where("id=?", id).Delete(&entity.User{}).Error
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
