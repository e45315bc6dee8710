package search

import (
	"context"
	"strings"
	"time"

	"VideoHub.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
)

// Document is the indexed projection of a video.
type Document struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	TitleLower   string    `json:"title_lower"`
	CategorySlug string    `json:"category_slug"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
}

type Query struct {
	Text         string
	CategorySlug string
	Limit        int
}

// Engine is the title index. It only answers which videos match; ordering
// and paging stay in SQL where the live view counts are.
type Engine interface {
	Index(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, q Query) ([]string, error)
}

const mapping = `{
  "mappings": {
    "properties": {
      "id":            {"type": "keyword"},
      "title":         {"type": "text"},
      "title_lower":   {"type": "keyword"},
      "category_slug": {"type": "keyword"},
      "published":     {"type": "boolean"},
      "created_at":    {"type": "date"}
    }
  }
}`

type Elastic struct {
	client *elastic.Client
	index  string
}

var engine Engine

// Init connects to Elasticsearch when configured. Without it search stays on SQL.
func Init() error {
	if config.ConfigInfo.Elastic.Addr == "" {
		return nil
	}
	e, err := NewElastic(config.ConfigInfo.Elastic.Addr, config.ConfigInfo.Elastic.Index)
	if err != nil {
		return err
	}
	engine = e
	hlog.Info("Connect Elasticsearch Success")
	return nil
}

// Default returns nil when Elasticsearch is not configured.
func Default() Engine {
	return engine
}

// SetDefault swaps the engine and returns the previous one.
func SetDefault(e Engine) Engine {
	prev := engine
	engine = e
	return prev
}

func NewElastic(addr, index string) (*Elastic, error) {
	client, err := elastic.NewClient(elastic.SetURL(addr), elastic.SetSniff(false))
	if err != nil {
		return nil, errors.Wrap(err, "elastic.NewClient failed")
	}
	ctx := context.Background()
	exists, err := client.IndexExists(index).Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "check index %s", index)
	}
	if !exists {
		if _, err = client.CreateIndex(index).BodyString(mapping).Do(ctx); err != nil {
			return nil, errors.Wrapf(err, "create index %s", index)
		}
	}
	return &Elastic{client: client, index: index}, nil
}

func (e *Elastic) Index(ctx context.Context, doc *Document) error {
	doc.TitleLower = strings.ToLower(doc.Title)
	_, err := e.client.Index().Index(e.index).Id(doc.ID).BodyJson(doc).Do(ctx)
	return errors.Wrapf(err, "index video %s", doc.ID)
}

func (e *Elastic) Delete(ctx context.Context, id string) error {
	_, err := e.client.Delete().Index(e.index).Id(id).Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return errors.Wrapf(err, "delete video %s", id)
}

// Search returns the ids of matching videos, at most q.Limit of them.
func (e *Elastic) Search(ctx context.Context, q Query) ([]string, error) {
	res, err := e.client.Search().Index(e.index).
		Query(BuildQuery(q)).
		FetchSource(false).
		Sort("created_at", false).
		Size(q.Limit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "elastic search failed")
	}
	ids := make([]string, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		ids = append(ids, hit.Id)
	}
	return ids, nil
}

// BuildQuery matches the lower-cased title as a substring of published videos.
func BuildQuery(q Query) elastic.Query {
	bq := elastic.NewBoolQuery().
		Filter(elastic.NewTermQuery("published", true)).
		Must(elastic.NewWildcardQuery("title_lower", "*"+escapeWildcard(strings.ToLower(q.Text))+"*"))
	if q.CategorySlug != "" {
		bq = bq.Filter(elastic.NewTermQuery("category_slug", q.CategorySlug))
	}
	return bq
}

func escapeWildcard(s string) string {
	return strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`).Replace(s)
}
