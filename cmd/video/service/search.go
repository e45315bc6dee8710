package service

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/search"
	"VideoHub.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
)

type SearchRequest struct {
	Query    string
	Category string
	Page     int
	Limit    int
}

type SearchPagination struct {
	Page         int   `json:"page"`
	Limit        int   `json:"limit"`
	TotalResults int64 `json:"totalResults"`
	TotalPages   int   `json:"totalPages"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

type SearchQuery struct {
	Q        string  `json:"q"`
	Category *string `json:"category"`
}

type SearchResult struct {
	Results    []*model.Video   `json:"results"`
	Pagination SearchPagination `json:"pagination"`
	Query      SearchQuery      `json:"query"`
}

// ParseSearchRequest validates the raw query parameters. Page defaults to 1,
// limit to 20 and is clamped to 1..50.
func ParseSearchRequest(q, category, page, limit string) (*SearchRequest, error) {
	req := &SearchRequest{
		Query:    strings.TrimSpace(q),
		Category: strings.TrimSpace(category),
		Page:     1,
		Limit:    constants.SearchDefaultLimit,
	}
	if req.Query == "" {
		return nil, errno.SearchQueryEmptyErr
	}
	if utf8.RuneCountInString(req.Query) > constants.MaxSearchQueryLen {
		return nil, errno.SearchQueryLongErr
	}
	var err error
	if page != "" {
		if req.Page, err = strconv.Atoi(strings.TrimSpace(page)); err != nil {
			return nil, errno.PaginationErr
		}
		req.Page = max(1, req.Page)
	}
	if limit != "" {
		if req.Limit, err = strconv.Atoi(strings.TrimSpace(limit)); err != nil {
			return nil, errno.PaginationErr
		}
		req.Limit = min(constants.SearchMaxLimit, max(1, req.Limit))
	}
	return req, nil
}

type SearchService struct {
	ctx context.Context
}

func NewSearchService(ctx context.Context) *SearchService {
	return &SearchService{ctx: ctx}
}

// Search matches titles case-insensitively, most viewed first. When
// Elasticsearch is enabled it narrows the candidates and SQL orders and pages
// them; on failure the plain SQL match is used.
func (s *SearchService) Search(req *SearchRequest) (*SearchResult, error) {
	offset := (req.Page - 1) * req.Limit
	filter := db.VideoFilter{PublishedOnly: true, CategorySlug: req.Category}
	ids, err := s.matchIndex(req)
	switch {
	case err != nil:
		hlog.CtxWarnf(s.ctx, "elastic search failed, fallback to sql: %v", err)
		filter.Title = strings.ToLower(req.Query)
	case ids != nil:
		filter.IDs = ids
	default:
		filter.Title = strings.ToLower(req.Query)
	}
	videos, total, err := db.SearchVideos(s.ctx, filter, offset, req.Limit)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.SearchVideos failed")
	}
	if videos == nil {
		videos = []*model.Video{}
	}

	totalPages := utils.TotalPages(total, req.Limit)
	result := &SearchResult{
		Results: videos,
		Pagination: SearchPagination{
			Page:         req.Page,
			Limit:        req.Limit,
			TotalResults: total,
			TotalPages:   totalPages,
			HasNextPage:  req.Page < totalPages,
			HasPrevPage:  req.Page > 1,
		},
		Query: SearchQuery{Q: req.Query},
	}
	if req.Category != "" {
		category := req.Category
		result.Query.Category = &category
	}
	return result, nil
}

// matchIndex returns nil ids when the index is disabled, and a non-nil empty
// slice when nothing matched.
func (s *SearchService) matchIndex(req *SearchRequest) ([]string, error) {
	engine := search.Default()
	if engine == nil {
		return nil, nil
	}
	ids, err := engine.Search(s.ctx, search.Query{
		Text:         req.Query,
		CategorySlug: req.Category,
		Limit:        constants.SearchIndexMaxHits,
	})
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// IndexVideo writes the search document of video. No-op without Elasticsearch.
func IndexVideo(ctx context.Context, video *model.Video) error {
	engine := search.Default()
	if engine == nil {
		return nil
	}
	doc := &search.Document{
		ID:        video.ID,
		Title:     video.Title,
		Published: video.IsPublished,
		CreatedAt: video.CreatedAt,
	}
	switch {
	case video.Category != nil:
		doc.CategorySlug = video.Category.Slug
	case video.CategoryID != nil:
		category, err := db.GetCategory(ctx, *video.CategoryID)
		if err != nil {
			return err
		}
		if category != nil {
			doc.CategorySlug = category.Slug
		}
	}
	return engine.Index(ctx, doc)
}
