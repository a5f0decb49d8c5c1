package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

type PostQuery struct {
	Probe  string
	Author string
	Take   int
	Offset int
}

// ListPosts fetches the feed, newest first, with authors joined in. The zero
// query fetches everything, which is what the reference client does on every
// mount and after every mutation.
func (v *Client) ListPosts(ctx context.Context, query PostQuery) ([]models.Post, error) {
	params := url.Values{}
	if len(query.Probe) > 0 {
		params.Set("probe", query.Probe)
	}
	if len(query.Author) > 0 {
		params.Set("author", query.Author)
	}
	if query.Take > 0 {
		params.Set("take", strconv.Itoa(query.Take))
	}
	if query.Offset > 0 {
		params.Set("offset", strconv.Itoa(query.Offset))
	}

	path := "/api/posts/"
	if encoded := params.Encode(); len(encoded) > 0 {
		path += "?" + encoded
	}

	var result struct {
		Count int64         `json:"count"`
		Data  []models.Post `json:"data"`
	}
	if err := v.request(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

func (v *Client) CreatePost(ctx context.Context, content string, imageURL *string) (models.Post, error) {
	var post models.Post
	err := v.request(ctx, http.MethodPost, "/api/posts/", map[string]any{
		"content":   content,
		"image_url": imageURL,
	}, &post)
	return post, err
}
