package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/flamesdigital/flames-api/internal/content"
)

var (
	// ErrNotFound signals a slug lookup miss, in the store or the default catalog.
	ErrNotFound = errors.New("not found")
	// ErrCorruptRecord signals a stored document that no longer conforms to its
	// schema. Reads fail hard on it rather than masking corruption.
	ErrCorruptRecord = errors.New("corrupt record")
)

// Store is the subset of the store adapter the content service reads through.
type Store interface {
	Available() bool
	Count(ctx context.Context, col string) (int64, error)
	FindOne(ctx context.Context, col, field string, value interface{}) (bson.Raw, error)
	FindAll(ctx context.Context, col string) ([]bson.Raw, error)
	InsertMany(ctx context.Context, col string, docs []interface{}) error
}

// Service resolves content reads against the store when available and the
// default catalog otherwise. Stored documents are decoded and validated on
// every read; surrogate _id fields never surface because the models carry no
// identifier field.
type Service struct {
	store Store
}

func NewService(st Store) *Service {
	return &Service{store: st}
}

func (s *Service) Services(ctx context.Context) ([]content.Service, error) {
	return list(ctx, s.store, content.CollectionService, content.DefaultServices)
}

func (s *Service) ServiceBySlug(ctx context.Context, slug string) (*content.Service, error) {
	return bySlug(ctx, s.store, content.CollectionService, slug, content.DefaultServices,
		func(v *content.Service) string { return v.Slug })
}

func (s *Service) Projects(ctx context.Context) ([]content.Project, error) {
	return list(ctx, s.store, content.CollectionProject, content.DefaultProjects)
}

func (s *Service) Testimonials(ctx context.Context) ([]content.Testimonial, error) {
	return list(ctx, s.store, content.CollectionTestimonial, content.DefaultTestimonials)
}

func (s *Service) Blogposts(ctx context.Context) ([]content.Blogpost, error) {
	return list(ctx, s.store, content.CollectionBlogpost, content.DefaultBlogposts)
}

func (s *Service) BlogpostBySlug(ctx context.Context, slug string) (*content.Blogpost, error) {
	return bySlug(ctx, s.store, content.CollectionBlogpost, slug, content.DefaultBlogposts,
		func(v *content.Blogpost) string { return v.Slug })
}

func (s *Service) Openings(ctx context.Context) ([]content.Opening, error) {
	return list(ctx, s.store, content.CollectionOpening, content.DefaultOpenings)
}

// list returns every record of a collection: store order when the store is
// available, catalog order otherwise. Both paths run the same
// normalize-and-validate pipeline.
func list[T any](ctx context.Context, st Store, col string, catalog []T) ([]T, error) {
	if !st.Available() {
		out := make([]T, 0, len(catalog))
		for i := range catalog {
			v := catalog[i]
			if err := content.Normalize(&v); err != nil {
				return nil, fmt.Errorf("%s: %w: %v", col, ErrCorruptRecord, err)
			}
			out = append(out, v)
		}
		return out, nil
	}

	raws, err := st.FindAll(ctx, col)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", col, err)
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := decode[T](col, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func bySlug[T any](ctx context.Context, st Store, col, slug string, catalog []T, slugOf func(*T) string) (*T, error) {
	if !st.Available() {
		for i := range catalog {
			v := catalog[i]
			if slugOf(&v) != slug {
				continue
			}
			if err := content.Normalize(&v); err != nil {
				return nil, fmt.Errorf("%s: %w: %v", col, ErrCorruptRecord, err)
			}
			return &v, nil
		}
		return nil, ErrNotFound
	}

	raw, err := st.FindOne(ctx, col, "slug", slug)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s %q: %w", col, slug, err)
	}
	return decode[T](col, raw)
}

func decode[T any](col string, raw bson.Raw) (*T, error) {
	var v T
	if err := bson.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", col, ErrCorruptRecord, err)
	}
	if err := content.Normalize(&v); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", col, ErrCorruptRecord, err)
	}
	return &v, nil
}
