package testutil

import (
	"context"
	"time"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/internal/repository"
)

// FixtureTime is the timestamp of the oldest fixture post. Every later
// post is one second younger.
var FixtureTime = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

var (
	User1 entity.User // jason
	User2 entity.User // jun
	User3 entity.User // jack
	User4 entity.User // john

	Post1 entity.Post // by jason, oldest
	Post2 entity.Post // by jun
	Post3 entity.Post // by jack
	Post4 entity.Post // by john, newest
)

// CreateFixtureDb seeds four users each with one post, at strictly
// increasing timestamps, and the follow edges jason->jun, jason->john,
// jun->jack, jack->john.
func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertPosts(ctx)
	insertFollowers(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	User1 = entity.User{
		Base:         entity.Base{ID: 1},
		Username:     "jason",
		Email:        "jason@example.com",
		PasswordHash: "x",
	}
	User2 = entity.User{
		Base:         entity.Base{ID: 2},
		Username:     "jun",
		Email:        "jun@example.com",
		PasswordHash: "x",
	}
	User3 = entity.User{
		Base:         entity.Base{ID: 3},
		Username:     "jack",
		Email:        "jack@example.com",
		PasswordHash: "x",
	}
	User4 = entity.User{
		Base:         entity.Base{ID: 4},
		Username:     "john",
		Email:        "john@example.com",
		PasswordHash: "x",
	}

	for _, user := range []*entity.User{&User1, &User2, &User3, &User4} {
		if err := userRepo.Create(ctx, user); err != nil {
			panic(err)
		}
	}
}

func insertPosts(ctx context.Context) {
	postRepo := repository.NewPostRepository()

	Post1 = entity.Post{
		Base:     entity.Base{ID: 1, CreatedAt: FixtureTime},
		AuthorID: User1.ID,
		Body:     "post from jason",
	}
	Post2 = entity.Post{
		Base:     entity.Base{ID: 2, CreatedAt: FixtureTime.Add(1 * time.Second)},
		AuthorID: User2.ID,
		Body:     "post from jun",
	}
	Post3 = entity.Post{
		Base:     entity.Base{ID: 3, CreatedAt: FixtureTime.Add(2 * time.Second)},
		AuthorID: User3.ID,
		Body:     "post from jack",
	}
	Post4 = entity.Post{
		Base:     entity.Base{ID: 4, CreatedAt: FixtureTime.Add(3 * time.Second)},
		AuthorID: User4.ID,
		Body:     "post from john",
	}

	for _, post := range []*entity.Post{&Post1, &Post2, &Post3, &Post4} {
		if err := postRepo.Create(ctx, post); err != nil {
			panic(err)
		}
	}
}

func insertFollowers(ctx context.Context) {
	followerRepo := repository.NewFollowerRepository()

	edges := []entity.Follower{
		{FollowerID: User1.ID, FollowedID: User2.ID},
		{FollowerID: User1.ID, FollowedID: User4.ID},
		{FollowerID: User2.ID, FollowedID: User3.ID},
		{FollowerID: User3.ID, FollowedID: User4.ID},
	}

	for i := range edges {
		if err := followerRepo.Create(ctx, &edges[i]); err != nil {
			panic(err)
		}
	}
}
