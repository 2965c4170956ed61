package model

type FollowedTimelineRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type FollowedTimelineResponse struct {
	Posts   []Post `json:"posts"`
	HasNext bool   `json:"has_next"`
	HasPrev bool   `json:"has_prev"`
}

type GlobalTimelineRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type GlobalTimelineResponse struct {
	Posts   []Post `json:"posts"`
	HasNext bool   `json:"has_next"`
	HasPrev bool   `json:"has_prev"`
}

type UserPostsRequest struct {
	Username string `json:"username"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

type UserPostsResponse struct {
	Posts   []Post `json:"posts"`
	HasNext bool   `json:"has_next"`
	HasPrev bool   `json:"has_prev"`
}
