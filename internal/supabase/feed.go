package supabase

import (
	"fmt"
	"strings"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"photo-market-backend/internal/models"
)

const maxSearchLength = 64

// FeedClient reads the public photo feed through PostgREST.
type FeedClient struct {
	client *supabase.Client
}

func NewFeedClient(client *supabase.Client) *FeedClient {
	return &FeedClient{client: client}
}

// ListPublicPhotos returns one page of approved public photos, newest first.
// Pages start at zero. One extra row is requested so callers can tell whether
// another page exists.
func (f *FeedClient) ListPublicPhotos(page, pageSize int, search string) ([]models.PhotoSummary, error) {
	from := page * pageSize
	query := f.client.From("photos").
		Select("id,user_id,title,preview_path,price,created_at", "", false).
		Eq("status", string(models.PhotoApproved)).
		Eq("visibility", string(models.VisibilityPublic))

	if term := SanitizeSearch(search); term != "" {
		query = query.Or(fmt.Sprintf("title.ilike.*%s*,tags.cs.{%s}", term, term), "")
	}

	var photos []models.PhotoSummary
	_, err := query.
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Range(from, from+pageSize, "").
		ExecuteTo(&photos)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

// SanitizeSearch drops characters that carry meaning in PostgREST filter
// syntax and caps the term length.
func SanitizeSearch(search string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '(', ')', '*', '{', '}', '"', '\\', '.', ':', '%':
			return -1
		}
		return r
	}, search)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if runes := []rune(cleaned); len(runes) > maxSearchLength {
		cleaned = strings.TrimSpace(string(runes[:maxSearchLength]))
	}
	return cleaned
}
