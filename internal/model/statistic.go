package model

type GetOverviewRequest struct{}

type GetOverviewResponse struct {
	TotalUsers   int64 `json:"total_users"`
	TotalPosts   int64 `json:"total_posts"`
	TotalFollows int64 `json:"total_follows"`
}
