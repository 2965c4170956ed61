package domain

import (
	"context"
	"errors"
	"strings"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/internal/model"
	"github.com/microblog-lab/backend/internal/repository"
	"github.com/microblog-lab/backend/pkg/errorx"
	"github.com/microblog-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// unknownLanguage is the sentinel a language detector reports when it
// cannot decide.
const unknownLanguage = "UNKNOWN"

type PostDomain interface {
	Create(context.Context, *model.CreatePostRequest) (*model.CreatePostResponse, error)
	Get(context.Context, *model.GetPostRequest) (*model.GetPostResponse, error)
	Delete(context.Context, *model.DeletePostRequest) (*model.DeletePostResponse, error)
}

type postDomain struct {
	postRepo repository.PostRepository
	clock    Clock
}

func NewPostDomain(postRepo repository.PostRepository, clock Clock) *postDomain {
	return &postDomain{postRepo: postRepo, clock: clock}
}

func (d *postDomain) Create(
	ctx context.Context, req *model.CreatePostRequest,
) (*model.CreatePostResponse, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty post")
	}

	language := req.Language
	if language == unknownLanguage || len(language) > 5 {
		language = ""
	}

	post := &entity.Post{
		Base:     entity.Base{CreatedAt: d.clock.Now()},
		AuthorID: xcontext.RequestUserID(ctx),
		Body:     req.Body,
		Language: language,
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create post: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.CreatePostResponse(model.ConvertPost(post))
	return &resp, nil
}

func (d *postDomain) Get(
	ctx context.Context, req *model.GetPostRequest,
) (*model.GetPostResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetPostResponse(model.ConvertPost(post))
	return &resp, nil
}

func (d *postDomain) Delete(
	ctx context.Context, req *model.DeletePostRequest,
) (*model.DeletePostResponse, error) {
	post, err := d.postRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get post: %v", err)
		return nil, errorx.Unknown
	}

	if post.AuthorID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete a post")
	}

	if err := d.postRepo.DeleteByID(ctx, post.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeletePostResponse{}, nil
}
