package model

type Post struct {
	ID        int64  `json:"id"`
	AuthorID  int64  `json:"author_id"`
	Body      string `json:"body"`
	Language  string `json:"language,omitempty"`
	CreatedAt string `json:"created_at"`
}

type CreatePostRequest struct {
	Body string `json:"body"`

	// Language is the code produced by the caller's language detector.
	// Values longer than 5 characters or the sentinel "UNKNOWN" are
	// stored as empty.
	Language string `json:"language"`
}

type CreatePostResponse Post

type GetPostRequest struct {
	ID int64 `json:"id"`
}

type GetPostResponse Post

type DeletePostRequest struct {
	ID int64 `json:"id"`
}

type DeletePostResponse struct{}
