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

// CatalogService serves movie lists and movie details.
type CatalogService struct {
	api   *upstream.Client
	cache *Cache
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(api *upstream.Client, cache *Cache) *CatalogService {
	return &CatalogService{api: api, cache: cache}
}

// Popular returns a page of popular movies.
func (s *CatalogService) Popular(ctx context.Context, page int) (*models.MovieList, error) {
	return s.list(ctx, fmt.Sprintf("movies:popular:%d", page), func() (any, error) {
		return s.api.PopularMovies(ctx, page)
	})
}

// TopRated returns a page of top rated movies.
func (s *CatalogService) TopRated(ctx context.Context, page int) (*models.MovieList, error) {
	return s.list(ctx, fmt.Sprintf("movies:top-rated:%d", page), func() (any, error) {
		return s.api.TopRatedMovies(ctx, page)
	})
}

// Search returns a page of movies matching query.
func (s *CatalogService) Search(ctx context.Context, query string, page int) (*models.MovieList, error) {
	return s.list(ctx, fmt.Sprintf("movies:search:%s:%d", query, page), func() (any, error) {
		return s.api.SearchMovies(ctx, query, page)
	})
}

func (s *CatalogService) list(ctx context.Context, key string, fetch func() (any, error)) (*models.MovieList, error) {
	var result models.MovieList
	if s.cache.get(ctx, key, &result) {
		return &result, nil
	}

	body, err := fetch()
	if err != nil {
		return nil, wrap(err, "failed to fetch %s", key)
	}
	result = models.MovieListFrom(body)

	s.cache.set(ctx, key, result)
	return &result, nil
}

// HomeFeed collects the first pages of the popular and top rated lists. Pages
// that fail are skipped and the partial feed is not cached. The feed only
// fails when no page could be fetched.
func (s *CatalogService) HomeFeed(ctx context.Context) (*models.HomeFeed, error) {
	const key = "movies:home"
	var feed models.HomeFeed
	if s.cache.get(ctx, key, &feed) {
		return &feed, nil
	}

	popular := make([][]normalize.Object, models.HomeFeedPages)
	topRated := make([][]normalize.Object, models.HomeFeedPages)
	errs := make([]error, 2*models.HomeFeedPages)

	var g errgroup.Group
	for i := range models.HomeFeedPages {
		page := i + 1
		g.Go(func() error {
			body, err := s.api.PopularMovies(ctx, page)
			if err != nil {
				slog.Warn("skipping popular page", "page", page, "error", err)
				errs[i] = err
				return nil
			}
			popular[i] = models.MovieListFrom(body).Results
			return nil
		})
		g.Go(func() error {
			body, err := s.api.TopRatedMovies(ctx, page)
			if err != nil {
				slog.Warn("skipping top rated page", "page", page, "error", err)
				errs[models.HomeFeedPages+i] = err
				return nil
			}
			topRated[i] = models.MovieListFrom(body).Results
			return nil
		})
	}
	_ = g.Wait()

	if lo.EveryBy(errs, func(err error) bool { return err != nil }) {
		return nil, wrap(errs[0], "failed to fetch home feed")
	}

	feed.Popular = head(lo.Flatten(popular), models.HomeFeedListSize)
	feed.TopRated = head(lo.Flatten(topRated), models.HomeFeedListSize)
	feed.Featured = head(feed.Popular, models.FeaturedSize)

	if lo.ContainsBy(errs, func(err error) bool { return err != nil }) {
		return &feed, nil
	}

	s.cache.set(ctx, key, feed)
	return &feed, nil
}

// MovieDetail returns a movie with its credits and reviews. Credits and reviews
// are best effort: when they cannot be fetched the movie's own credits and an
// empty review list are used, and the result is not cached.
func (s *CatalogService) MovieDetail(ctx context.Context, id string) (*models.MovieDetail, error) {
	key := "movie:detail:" + id
	var detail models.MovieDetail
	if s.cache.get(ctx, key, &detail) {
		return &detail, nil
	}

	var movieBody, creditsBody, reviewsBody any
	var creditsErr, reviewsErr error
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		movieBody, err = s.api.MovieDetail(gctx, id)
		return err
	})
	g.Go(func() error {
		if creditsBody, creditsErr = s.api.MovieCredits(gctx, id); creditsErr != nil {
			slog.Warn("movie credits unavailable", "id", id, "error", creditsErr)
		}
		return nil
	})
	g.Go(func() error {
		if reviewsBody, reviewsErr = s.api.MovieReviews(gctx, id); reviewsErr != nil {
			slog.Warn("movie reviews unavailable", "id", id, "error", reviewsErr)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, wrap(err, "movie %s", id)
	}

	movie := normalize.Movie(models.Object(movieBody))
	if movie == nil {
		return nil, fmt.Errorf("movie %s: unexpected response shape", id)
	}

	credits := models.CreditsFrom(normalize.Credits(models.Object(creditsBody)))
	if len(credits.Cast) == 0 {
		credits = models.CreditsFrom(movie["credits"])
	}

	detail = models.MovieDetail{
		Movie:   movie,
		Credits: credits,
		Reviews: reviewsFrom(reviewsBody),
	}

	// degraded answers are served but not cached
	if creditsErr == nil && reviewsErr == nil {
		s.cache.set(ctx, key, detail)
	}
	return &detail, nil
}

// reviewsFrom accepts a normalized list body or a bare list.
func reviewsFrom(body any) []normalize.Object {
	if list, ok := body.([]any); ok {
		return models.Objects(normalize.List(list))
	}
	return models.Objects(models.Object(body)["results"])
}

func head[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
