package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flamesdigital/flames-api/internal/content"
	"github.com/flamesdigital/flames-api/internal/database"
)

func TestEnsureDefaultsSeedsEmptyCollections(t *testing.T) {
	st := newFakeStore()
	EnsureDefaults(context.Background(), st)

	require.Len(t, st.inserted[content.CollectionService], len(content.DefaultServices))
	require.Len(t, st.inserted[content.CollectionTestimonial], len(content.DefaultTestimonials))
	require.Len(t, st.inserted[content.CollectionProject], len(content.DefaultProjects))
	require.Len(t, st.inserted[content.CollectionBlogpost], len(content.DefaultBlogposts))
	require.Len(t, st.inserted[content.CollectionOpening], len(content.DefaultOpenings))
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	st := newFakeStore()
	EnsureDefaults(context.Background(), st)
	EnsureDefaults(context.Background(), st)

	// second run sees non-zero counts and inserts nothing
	require.Len(t, st.inserted[content.CollectionService], len(content.DefaultServices))
	require.Len(t, st.inserted[content.CollectionOpening], len(content.DefaultOpenings))
}

func TestEnsureDefaultsSkipsNonEmptyCollections(t *testing.T) {
	st := newFakeStore()
	st.add(t, content.CollectionService, content.Service{Name: "X", Slug: "x", Summary: "s"})
	EnsureDefaults(context.Background(), st)

	require.Empty(t, st.inserted[content.CollectionService])
	require.Len(t, st.inserted[content.CollectionBlogpost], len(content.DefaultBlogposts))
}

func TestEnsureDefaultsNoStore(t *testing.T) {
	// must not panic or block in demo mode
	EnsureDefaults(context.Background(), database.None())
}
