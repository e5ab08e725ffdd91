package search

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"

	"github.com/jonwraymond/matchsort"
)

// Doc is a flattened candidate: a stable ID plus named text fields.
type Doc struct {
	ID     string
	Fields map[string]string
}

// Docs flattens a slice of items into indexable documents using the
// facade's selectors. With no selectors, each item is coerced to text
// under a single "text" field. Selector names become field names;
// unnamed selectors get positional names. Document IDs are the items'
// input positions.
func Docs[T any](items []T, keys ...matchsort.Selector[T]) []Doc {
	docs := make([]Doc, len(items))
	for i, item := range items {
		fields := make(map[string]string)
		if len(keys) == 0 {
			fields["text"] = textOf(item)
		} else {
			for j, sel := range keys {
				name := sel.Name
				if name == "" {
					name = fmt.Sprintf("field%d", j)
				}
				if sel.Get != nil {
					fields[name] = sel.Get(item)
				}
			}
		}
		docs[i] = Doc{ID: strconv.Itoa(i), Fields: fields}
	}
	return docs
}

func textOf(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// Config customizes a BM25Sorter.
type Config struct {
	// Boosts maps field names to query boosts. Fields without an entry
	// get weight 1. Use higher boosts on higher-priority fields, e.g.
	// the fields a matchsort caller would list first.
	Boosts map[string]float64

	// MaxDocs limits how many documents are indexed (0 = unlimited).
	MaxDocs int

	// MaxFieldLen truncates long field values before indexing
	// (0 = unlimited).
	MaxFieldLen int
}

// BM25Sorter orders candidate documents by BM25 relevance using an
// in-memory bleve index. The index is cached by a fingerprint of the
// document set and only rebuilt when the documents change.
type BM25Sorter struct {
	cfg Config

	mu          sync.RWMutex
	fingerprint string
	index       bleve.Index
	fields      []string
}

// NewBM25Sorter creates a sorter with the given config.
func NewBM25Sorter(cfg Config) *BM25Sorter {
	return &BM25Sorter{cfg: cfg}
}

// Sort returns up to limit documents ordered by relevance to query,
// score descending with ties broken by ID ascending. An empty or
// whitespace query returns the first limit documents in input order.
// Documents that do not match the query are omitted.
func (s *BM25Sorter) Sort(query string, limit int, docs []Doc) ([]Doc, error) {
	if limit <= 0 {
		return []Doc{}, nil
	}

	docs = s.applyLimits(docs)

	if strings.TrimSpace(query) == "" {
		if len(docs) > limit {
			docs = docs[:limit]
		}
		return slices.Clone(docs), nil
	}

	fp := computeFingerprint(docs)

	s.mu.RLock()
	if s.index != nil && s.fingerprint == fp {
		defer s.mu.RUnlock()
		return s.search(query, limit, docs)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil || s.fingerprint != fp {
		if err := s.rebuild(docs, fp); err != nil {
			return nil, err
		}
	}
	return s.search(query, limit, docs)
}

// Close releases the cached index. The sorter remains usable; the next
// Sort call rebuilds.
func (s *BM25Sorter) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		return nil
	}
	err := s.index.Close()
	s.index = nil
	s.fingerprint = ""
	s.fields = nil
	return err
}

// applyLimits enforces MaxDocs and MaxFieldLen without mutating the
// caller's documents.
func (s *BM25Sorter) applyLimits(docs []Doc) []Doc {
	if s.cfg.MaxDocs > 0 && len(docs) > s.cfg.MaxDocs {
		docs = docs[:s.cfg.MaxDocs]
	}
	if s.cfg.MaxFieldLen <= 0 {
		return docs
	}

	limited := make([]Doc, len(docs))
	for i, doc := range docs {
		fields := make(map[string]string, len(doc.Fields))
		for k, v := range doc.Fields {
			if len(v) > s.cfg.MaxFieldLen {
				v = v[:s.cfg.MaxFieldLen]
			}
			fields[k] = v
		}
		limited[i] = Doc{ID: doc.ID, Fields: fields}
	}
	return limited
}

// rebuild replaces the cached index with a fresh mem-only index over
// docs. Caller holds the write lock.
func (s *BM25Sorter) rebuild(docs []Doc, fp string) error {
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	fieldSet := make(map[string]struct{})
	batch := idx.NewBatch()
	for _, doc := range docs {
		for name := range doc.Fields {
			fieldSet[name] = struct{}{}
		}
		if err := batch.Index(doc.ID, doc.Fields); err != nil {
			_ = idx.Close()
			return fmt.Errorf("index document %s: %w", doc.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return fmt.Errorf("apply batch: %w", err)
	}

	if s.index != nil {
		_ = s.index.Close()
	}
	s.index = idx
	s.fingerprint = fp
	s.fields = slices.Sorted(maps.Keys(fieldSet))
	return nil
}

// search runs the boosted per-field disjunction query. Caller holds at
// least the read lock.
func (s *BM25Sorter) search(query string, limit int, docs []Doc) ([]Doc, error) {
	if len(s.fields) == 0 {
		return []Doc{}, nil
	}

	dq := bleve.NewDisjunctionQuery()
	for _, field := range s.fields {
		mq := bleve.NewMatchQuery(query)
		mq.SetField(field)
		if boost, ok := s.cfg.Boosts[field]; ok && boost > 0 {
			mq.SetBoost(boost)
		}
		dq.AddQuery(mq)
	}

	req := bleve.NewSearchRequest(dq)
	req.Size = limit
	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	type hit struct {
		id    string
		score float64
	}
	hits := make([]hit, len(res.Hits))
	for i, h := range res.Hits {
		hits[i] = hit{id: h.ID, score: h.Score}
	}
	// Score descending, ID ascending for determinism.
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].id < hits[j].id
	})

	byID := make(map[string]Doc, len(docs))
	for _, doc := range docs {
		byID[doc.ID] = doc
	}

	out := make([]Doc, 0, len(hits))
	for _, h := range hits {
		if doc, ok := byID[h.id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}
