package model

type FollowRequest struct {
	Username string `json:"username"`
}

type FollowResponse struct{}

type UnfollowRequest struct {
	Username string `json:"username"`
}

type UnfollowResponse struct{}

type GetFollowersRequest struct {
	Username string `json:"username"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

type GetFollowersResponse struct {
	Users   []User `json:"users"`
	HasNext bool   `json:"has_next"`
	HasPrev bool   `json:"has_prev"`
}

type GetFollowingRequest struct {
	Username string `json:"username"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

type GetFollowingResponse struct {
	Users   []User `json:"users"`
	HasNext bool   `json:"has_next"`
	HasPrev bool   `json:"has_prev"`
}
