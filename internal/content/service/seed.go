package service

import (
	"context"

	"github.com/flamesdigital/flames-api/internal/content"
	"github.com/flamesdigital/flames-api/pkg/logger"
)

// EnsureDefaults seeds every empty content collection with the default
// catalog. Best effort: a count or insert failure is logged and skipped, never
// fatal. A collection with documents is left untouched, so running it again
// inserts nothing. No-op when the store is absent.
func EnsureDefaults(ctx context.Context, st Store) {
	if !st.Available() {
		return
	}
	seed(ctx, st, content.CollectionService, asDocs(content.DefaultServices))
	seed(ctx, st, content.CollectionTestimonial, asDocs(content.DefaultTestimonials))
	seed(ctx, st, content.CollectionProject, asDocs(content.DefaultProjects))
	seed(ctx, st, content.CollectionBlogpost, asDocs(content.DefaultBlogposts))
	seed(ctx, st, content.CollectionOpening, asDocs(content.DefaultOpenings))
}

func seed(ctx context.Context, st Store, col string, docs []interface{}) {
	n, err := st.Count(ctx, col)
	if err != nil {
		logger.Warnf("seed %s: count failed: %v", col, err)
		return
	}
	if n > 0 {
		return
	}
	if err := st.InsertMany(ctx, col, docs); err != nil {
		logger.Warnf("seed %s: insert failed: %v", col, err)
		return
	}
	logger.Infof("seeded %s with %d default records", col, len(docs))
}

func asDocs[T any](in []T) []interface{} {
	out := make([]interface{}, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}
