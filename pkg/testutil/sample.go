package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/internal/repository"
)

// SampleUser creates a user with randomized unique fields. Non-zero
// fields of init overwrite the sample before it is stored.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	name := uuid.NewString()
	sample := &entity.User{
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "x",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}

	return *sample, nil
}

// SamplePost creates a post with a randomized body. Non-zero fields of
// init overwrite the sample before it is stored.
func SamplePost(ctx context.Context, init *entity.Post) (entity.Post, error) {
	postRepo := repository.NewPostRepository()

	sample := &entity.Post{
		AuthorID: User1.ID,
		Body:     uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := postRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}

	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if overwriteField.Interface() != reflect.Zero(overwriteField.Type()).Interface() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
