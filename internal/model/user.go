package model

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email,omitempty"`
	AboutMe        string `json:"about_me"`
	LastSeen       string `json:"last_seen,omitempty"`
	AvatarURL      string `json:"avatar_url"`
	FollowerCount  int64  `json:"follower_count"`
	FollowingCount int64  `json:"following_count"`
	PostCount      int64  `json:"post_count"`
	IsFollowing    bool   `json:"is_following"`
}

type GetMeRequest struct{}

type GetMeResponse User

type GetUserRequest struct {
	Username string `json:"username"`
}

type GetUserResponse User

type UpdateUserRequest struct {
	Username string `json:"username"`
	AboutMe  string `json:"about_me"`
}

type UpdateUserResponse struct{}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordResponse struct{}

type DeleteUserRequest struct{}

type DeleteUserResponse struct{}
