package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/mq"
	"VideoHub.com/pkg/oss"
	"VideoHub.com/pkg/search"
	"VideoHub.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryIndex matches like the elastic query: lower-cased substring of
// published titles, optional category term.
type memoryIndex struct {
	mu   sync.Mutex
	docs map[string]search.Document
	err  error
}

func useMemoryIndex(t *testing.T) *memoryIndex {
	idx := &memoryIndex{docs: map[string]search.Document{}}
	prev := search.SetDefault(idx)
	t.Cleanup(func() { search.SetDefault(prev) })
	return idx
}

func (m *memoryIndex) Index(_ context.Context, doc *search.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID] = *doc
	return nil
}

func (m *memoryIndex) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, id)
	return nil
}

func (m *memoryIndex) Search(_ context.Context, q search.Query) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var ids []string
	for id, doc := range m.docs {
		if !doc.Published || !strings.Contains(strings.ToLower(doc.Title), strings.ToLower(q.Text)) {
			continue
		}
		if q.CategorySlug != "" && doc.CategorySlug != q.CategorySlug {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *memoryIndex) has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.docs[id]
	return ok
}

func uploadClip(t *testing.T, u *model.User, c *model.Category, title string) *model.Video {
	t.Helper()
	video, err := NewUploadVideoService(context.Background()).UploadVideo(u, &UploadVideoRequest{
		Title:       title,
		CategoryID:  c.ID,
		UserID:      u.ID,
		IsPublished: true,
		Video:       fileHeader(t, "video", "clip.mp4", "bytes"),
	})
	require.NoError(t, err)
	return video
}

func TestSearchIndexOrdersByLiveViews(t *testing.T) {
	gdb, u, c := seed(t)
	useLocalStorage(t)
	usePublisher(t)
	idx := useMemoryIndex(t)

	first := uploadClip(t, u, c, "Cat clip one")
	second := uploadClip(t, u, c, "Cat clip two")
	require.True(t, idx.has(first.ID))
	require.True(t, idx.has(second.ID))
	assert.Equal(t, "gaming", idx.docs[first.ID].CategorySlug)

	// matches by title but was never indexed
	testutil.CreateVideo(t, gdb, u, c, model.Video{Title: "cat clip unindexed", IsPublished: true})

	info := NewVideoInfoService(context.Background())
	for i := 0; i < 5; i++ {
		_, err := info.AddView(second.ID)
		require.NoError(t, err)
	}

	s := NewSearchService(context.Background())
	res, err := s.Search(&SearchRequest{Query: "CAT CLIP", Page: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, second.ID, res.Results[0].ID)
	assert.Equal(t, int64(5), res.Results[0].Views)
	assert.Equal(t, SearchPagination{Page: 1, Limit: 1, TotalResults: 2, TotalPages: 2, HasNextPage: true}, res.Pagination)

	res, err = s.Search(&SearchRequest{Query: "CAT CLIP", Page: 2, Limit: 1})
	require.NoError(t, err)
	require.Len(t, res.Results, 1)
	assert.Equal(t, first.ID, res.Results[0].ID)

	res, err = s.Search(&SearchRequest{Query: "dog", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, res.Results)
	assert.Equal(t, int64(0), res.Pagination.TotalResults)
}

func TestSearchIndexFailureFallsBackToSQL(t *testing.T) {
	gdb, u, c := seed(t)
	idx := useMemoryIndex(t)
	idx.err = errors.New("cluster unavailable")
	testutil.CreateVideo(t, gdb, u, c, model.Video{Title: "Cat clip", IsPublished: true})

	res, err := NewSearchService(context.Background()).Search(&SearchRequest{Query: "cat", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, res.Results, 1)
}

func TestProcessorIndexesVideo(t *testing.T) {
	gdb, u, c := seed(t)
	useLocalStorage(t)
	idx := useMemoryIndex(t)
	videoURL, err := oss.Default().Put(context.Background(), "videos/late.mp4", strings.NewReader("garbage"), 7, "video/mp4")
	require.NoError(t, err)
	v := testutil.CreateVideo(t, gdb, u, c, model.Video{Title: "late", VideoURL: videoURL, IsPublished: true})
	require.False(t, idx.has(v.ID))

	require.NoError(t, NewVideoProcessor().HandleVideoEvent(context.Background(), &mq.VideoEvent{Type: mq.VideoUploaded, VideoID: v.ID}))
	assert.True(t, idx.has(v.ID))

	require.NoError(t, NewVideoProcessor().HandleVideoEvent(context.Background(), &mq.VideoEvent{Type: mq.VideoDeleted, VideoID: v.ID}))
	assert.False(t, idx.has(v.ID))
}
