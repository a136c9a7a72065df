package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"movie-info-gateway/internal/models"
	"movie-info-gateway/internal/normalize"
	"movie-info-gateway/internal/upstream"
)

// PersonService serves person pages.
type PersonService struct {
	api   *upstream.Client
	cache *Cache
}

// NewPersonService creates a new PersonService.
func NewPersonService(api *upstream.Client, cache *Cache) *PersonService {
	return &PersonService{api: api, cache: cache}
}

// PersonDetail returns a person and the movies they appeared in. When the
// credits call fails the person's known_for list is used instead and nothing
// is cached.
func (s *PersonService) PersonDetail(ctx context.Context, id string) (*models.PersonDetail, error) {
	key := "person:detail:" + id
	var detail models.PersonDetail
	if s.cache.get(ctx, key, &detail) {
		return &detail, nil
	}

	var personBody, creditsBody any
	var creditsErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		personBody, err = s.api.PersonDetail(gctx, id)
		return err
	})
	g.Go(func() error {
		creditsBody, creditsErr = s.api.PersonCredits(gctx, id)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, wrap(err, "person %s", id)
	}

	// TMDB-style person bodies carry no person markers, so the dispatcher
	// hands them back untouched.
	person := normalize.Person(models.Object(personBody))
	if person == nil {
		return nil, fmt.Errorf("person %s: unexpected response shape", id)
	}

	var credits []normalize.Object
	if creditsErr != nil {
		slog.Warn("person credits unavailable", "id", id, "error", creditsErr)
		credits = models.Objects(person["known_for"])
	} else {
		credits = lo.Map(models.Objects(models.Object(creditsBody)["cast"]), func(m normalize.Object, _ int) normalize.Object {
			return normalize.Movie(m)
		})
	}

	detail = models.PersonDetail{Person: person, Credits: credits}
	if creditsErr == nil {
		s.cache.set(ctx, key, detail)
	}
	return &detail, nil
}
