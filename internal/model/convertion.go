package model

import (
	"time"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/pkg/crypto"
)

const DefaultTimeLayout string = time.RFC3339Nano

// DefaultAvatarSize is the pixel size of avatar URLs embedded in
// responses.
const DefaultAvatarSize = 128

func ConvertUser(user *entity.User, includeSensitive bool) User {
	if user == nil {
		return User{}
	}

	result := User{
		ID:        user.ID,
		Username:  user.Username,
		AboutMe:   user.AboutMe,
		AvatarURL: crypto.GravatarURL(user.Email, DefaultAvatarSize),
	}

	if user.LastSeen.Valid {
		result.LastSeen = user.LastSeen.Time.Format(DefaultTimeLayout)
	}

	if includeSensitive {
		result.Email = user.Email
	}

	return result
}

func ConvertPost(post *entity.Post) Post {
	if post == nil {
		return Post{}
	}

	return Post{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Body:      post.Body,
		Language:  post.Language,
		CreatedAt: post.CreatedAt.Format(DefaultTimeLayout),
	}
}

func ConvertPosts(posts []entity.Post) []Post {
	result := []Post{}
	for i := range posts {
		result = append(result, ConvertPost(&posts[i]))
	}

	return result
}

func ConvertUsers(users []entity.User) []User {
	result := []User{}
	for i := range users {
		result = append(result, ConvertUser(&users[i], false))
	}

	return result
}
