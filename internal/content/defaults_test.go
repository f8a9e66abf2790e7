package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogValid(t *testing.T) {
	for i := range DefaultServices {
		v := DefaultServices[i]
		require.NoError(t, Normalize(&v), "service %q", v.Slug)
	}
	for i := range DefaultProjects {
		v := DefaultProjects[i]
		require.NoError(t, Normalize(&v), "project %q", v.Slug)
	}
	for i := range DefaultTestimonials {
		v := DefaultTestimonials[i]
		require.NoError(t, Normalize(&v), "testimonial %q", v.Author)
	}
	for i := range DefaultBlogposts {
		v := DefaultBlogposts[i]
		require.NoError(t, Normalize(&v), "blogpost %q", v.Slug)
	}
	for i := range DefaultOpenings {
		v := DefaultOpenings[i]
		require.NoError(t, Normalize(&v), "opening %q", v.Title)
	}
}

func TestDefaultCatalogSlugsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range DefaultServices {
		require.False(t, seen[s.Slug], "duplicate service slug %q", s.Slug)
		seen[s.Slug] = true
	}
	seen = map[string]bool{}
	for _, p := range DefaultProjects {
		require.False(t, seen[p.Slug], "duplicate project slug %q", p.Slug)
		seen[p.Slug] = true
	}
	seen = map[string]bool{}
	for _, b := range DefaultBlogposts {
		require.False(t, seen[b.Slug], "duplicate blogpost slug %q", b.Slug)
		seen[b.Slug] = true
	}
}

func TestNormalizeAppliesDefaults(t *testing.T) {
	tm := Testimonial{Author: "A", Quote: "fine work"}
	require.NoError(t, Normalize(&tm))
	require.Equal(t, 5, tm.Rating)

	op := Opening{Title: "Backend Engineer", Department: "Engineering"}
	require.NoError(t, Normalize(&op))
	require.Equal(t, "Remote", op.Location)
	require.Equal(t, "Full-time", op.Type)

	bp := Blogpost{Title: "T", Slug: "t", Content: "body"}
	require.NoError(t, Normalize(&bp))
	require.Equal(t, "Team", bp.Author)
}

func TestNormalizeRejectsOutOfRangeRating(t *testing.T) {
	tm := Testimonial{Author: "A", Quote: "q", Rating: 9}
	require.Error(t, Normalize(&tm))
}
