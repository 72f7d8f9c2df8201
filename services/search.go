package services

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"

	"portfolio/content"
	"portfolio/models"

	"github.com/philippgille/chromem-go"
	"go.uber.org/zap"
)

// EmbeddingDimensions is the size of the local hashing embedding.
const EmbeddingDimensions = 256

const (
	searchCollection = "pages"
	chunkSize        = 500
	defaultLimit     = 5
)

// ErrSearchNotReady is returned before Index has completed.
var ErrSearchNotReady = errors.New("search index not built")

// HashEmbedding maps text onto a fixed-size bag of hashed words. It is
// deterministic and needs no network. The result is L2 normalized.
func HashEmbedding(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, EmbeddingDimensions)
	for _, word := range tokenize(text) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(word))
		vec[h.Sum32()%EmbeddingDimensions]++
	}
	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum == 0 {
		vec[0] = 1
		return vec, nil
	}
	norm := float32(math.Sqrt(sum))
	for i := range vec {
		vec[i] /= norm
	}
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// SearchService ranks blog pages against a free-text query using an
// in-memory chromem collection.
type SearchService struct {
	mu         sync.RWMutex
	db         *chromem.DB
	collection *chromem.Collection
	pages      map[string]content.Page
	chunks     int
	logger     *zap.Logger
}

// NewSearchService creates an empty, unindexed search service.
func NewSearchService(logger *zap.Logger) *SearchService {
	return &SearchService{
		pages:  map[string]content.Page{},
		logger: logger.Named("search"),
	}
}

// Index builds the collection from the given pages, replacing any prior
// index.
func (s *SearchService) Index(ctx context.Context, pages []content.Page) error {
	db := chromem.NewDB()
	collection, err := db.CreateCollection(searchCollection, nil, HashEmbedding)
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	var docs []chromem.Document
	byslug := make(map[string]content.Page, len(pages))
	for _, p := range pages {
		byslug[p.Slug] = p
		for i, chunk := range chunkText(p.Text(), chunkSize) {
			docs = append(docs, chromem.Document{
				ID:      p.Slug + "#" + strconv.Itoa(i),
				Content: chunk,
				Metadata: map[string]string{
					"slug":        p.Slug,
					"chunk_index": strconv.Itoa(i),
				},
			})
		}
	}
	if len(docs) > 0 {
		if err := collection.AddDocuments(ctx, docs, 4); err != nil {
			return fmt.Errorf("failed to add documents: %w", err)
		}
	}

	s.mu.Lock()
	s.db = db
	s.collection = collection
	s.pages = byslug
	s.chunks = len(docs)
	s.mu.Unlock()

	s.logger.Info("indexed pages", zap.Int("pages", len(pages)), zap.Int("chunks", len(docs)))
	return nil
}

// Query returns the pages best matching q. limit is clamped to
// [1, number of pages]; zero means the default.
func (s *SearchService) Query(ctx context.Context, q string, limit int) (*models.SearchResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, &ValidationError{Message: "Please enter a search term."}
	}

	s.mu.RLock()
	collection, pages, chunks := s.collection, s.pages, s.chunks
	s.mu.RUnlock()
	if collection == nil {
		return nil, ErrSearchNotReady
	}

	start := time.Now()
	if limit == 0 {
		limit = defaultLimit
	}
	limit = clamp(limit, 1, len(pages))

	resp := &models.SearchResponse{
		BaseResponse: models.NewSuccess(),
		Query:        q,
		Results:      []models.SearchResult{},
	}
	if chunks > 0 {
		found, err := collection.Query(ctx, q, chunks, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to query collection: %w", err)
		}
		resp.Results = rankPages(found, pages, limit)
	}
	resp.Count = len(resp.Results)
	resp.Duration = time.Since(start).String()

	s.logger.Debug("search", zap.String("query", q), zap.Int("results", resp.Count))
	return resp, nil
}

// rankPages keeps the best scoring chunk of every page.
func rankPages(found []chromem.Result, pages map[string]content.Page, limit int) []models.SearchResult {
	best := map[string]float64{}
	for _, r := range found {
		slug := r.Metadata["slug"]
		score := float64(r.Similarity)
		if cur, ok := best[slug]; !ok || score > cur {
			best[slug] = score
		}
	}

	out := make([]models.SearchResult, 0, len(best))
	for slug, score := range best {
		p, ok := pages[slug]
		if !ok {
			continue
		}
		out = append(out, models.SearchResult{
			Slug:    p.Slug,
			Title:   p.Title,
			Summary: p.Summary,
			URL:     p.URL(),
			Score:   score,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Slug < out[j].Slug
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+\s+`)

// chunkText splits text into sentence-aligned chunks of about maxChunkSize
// bytes.
func chunkText(text string, maxChunkSize int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= maxChunkSize {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder
	for _, sentence := range sentenceBoundary.Split(text, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if current.Len()+len(sentence) > maxChunkSize && current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(sentence)
		current.WriteString(". ")
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}
	return chunks
}

// GetStatus reports the index size.
func (s *SearchService) GetStatus() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := map[string]interface{}{
		"collection": searchCollection,
		"pages":      len(s.pages),
		"chunks":     s.chunks,
		"embedding":  fmt.Sprintf("hash-%d", EmbeddingDimensions),
	}
	if s.collection != nil {
		status["status"] = "active"
	} else {
		status["status"] = "inactive"
	}
	return status
}
