package service_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-info-gateway/internal/service"
)

func TestPopularIsNormalizedAndCached(t *testing.T) {
	api := newFakeAPI()
	api.handle("GET /movies/popular", http.StatusOK,
		`{"page":1,"total_pages":3,"total_results":60,"data":[{"id":1,"title":"X","image":"string","poster_path":"/x.jpg","rate":7.5}]}`)
	cache, mr := newCache(t)
	svc := service.NewCatalogService(api.client(t), cache)

	list, err := svc.Popular(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, list.TotalPages)
	require.Len(t, list.Results, 1)
	assert.Equal(t, "/x.jpg", list.Results[0]["poster_path"])
	assert.Equal(t, 7.5, list.Results[0]["vote_average"])
	assert.True(t, mr.Exists("movies:popular:1"))

	again, err := svc.Popular(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "/x.jpg", again.Results[0]["poster_path"])
	assert.EqualValues(t, 1, api.hits.Load())
}

func TestSearchWithoutCache(t *testing.T) {
	api := newFakeAPI()
	api.handle("GET /movies/search", http.StatusOK, `{"results":[{"title":"Heat","genres":["Crime"]}]}`)
	svc := service.NewCatalogService(api.client(t), service.NewCache(nil, 0))

	for range 2 {
		list, err := svc.Search(context.Background(), "heat", 1)
		require.NoError(t, err)
		require.Len(t, list.Results, 1)
		assert.Equal(t, []any{map[string]any{"id": 0, "name": "Crime"}}, list.Results[0]["genres"])
	}
	assert.EqualValues(t, 2, api.hits.Load())
}

func TestListUpstreamFailure(t *testing.T) {
	api := newFakeAPI()
	api.handle("GET /movies/top-rated", http.StatusInternalServerError, `{"message":"boom"}`)
	svc := service.NewCatalogService(api.client(t), nil)

	_, err := svc.TopRated(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func moviePage(prefix string, n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"id":"%s%d","title":"%s %d"}`, prefix, i, prefix, i)
	}
	return `{"results":[` + strings.Join(items, ",") + `]}`
}

func TestHomeFeed(t *testing.T) {
	api := newFakeAPI()
	api.mux.HandleFunc("GET /movies/popular", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(moviePage("p"+r.URL.Query().Get("page")+"-", 12)))
	})
	api.mux.HandleFunc("GET /movies/top-rated", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(moviePage("t"+r.URL.Query().Get("page")+"-", 12)))
	})
	svc := service.NewCatalogService(api.client(t), nil)

	feed, err := svc.HomeFeed(context.Background())
	require.NoError(t, err)

	require.Len(t, feed.Popular, 30)
	assert.Equal(t, "p1-0", feed.Popular[0]["id"])
	assert.Equal(t, "p2-0", feed.Popular[12]["id"])
	assert.Equal(t, "p3-5", feed.Popular[29]["id"])

	require.Len(t, feed.TopRated, 24)
	assert.Equal(t, "t3-0", feed.TopRated[12]["id"])

	require.Len(t, feed.Featured, 5)
	assert.Equal(t, feed.Popular[:5], feed.Featured)
}

func TestHomeFeedAllPagesFail(t *testing.T) {
	api := newFakeAPI()
	svc := service.NewCatalogService(api.client(t), nil)

	_, err := svc.HomeFeed(context.Background())
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestMovieDetail(t *testing.T) {
	api := newFakeAPI()
	api.handle("GET /movies/42", http.StatusOK, `{
		"id": 42, "title": "X", "image": "/x.jpg", "year": 1999, "runtime": "136 mins",
		"actors": [{"id": 1, "name": "Embedded", "role": "Neo"}]
	}`)
	api.handle("GET /movies/42/credits", http.StatusOK, `{"id":42,"cast":[{"id":2,"name":"Fetched","character":"Trinity","profile_path":"string"}],"crew":[]}`)
	api.handle("GET /movies/42/reviews", http.StatusOK, `{"data":[{"username":"bob","rate":8,"date":"2024-01-01","content":"nice movie"}]}`)
	cache, mr := newCache(t)
	svc := service.NewCatalogService(api.client(t), cache)

	detail, err := svc.MovieDetail(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, "/x.jpg", detail.Movie["poster_path"])
	assert.Equal(t, "1999-01-01", detail.Movie["release_date"])
	assert.Equal(t, 136, detail.Movie["runtime"])

	require.Len(t, detail.Credits.Cast, 1)
	assert.Equal(t, "Fetched", detail.Credits.Cast[0]["name"])
	assert.Nil(t, detail.Credits.Cast[0]["profile_path"])
	assert.Empty(t, detail.Credits.Crew)

	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "bob", detail.Reviews[0]["author"])
	assert.NotEmpty(t, detail.Reviews[0]["id"])

	assert.True(t, mr.Exists("movie:detail:42"))
}

func TestMovieDetailDegradesWithoutCreditsAndReviews(t *testing.T) {
	api := newFakeAPI()
	api.handle("GET /movies/7", http.StatusOK, `{"id":7,"title":"Y","actors":[{"id":1,"name":"Embedded","role":"Lead"}]}`)
	api.handle("GET /movies/7/credits", http.StatusInternalServerError, `{}`)
	api.handle("GET /movies/7/reviews", http.StatusInternalServerError, `{}`)
	svc := service.NewCatalogService(api.client(t), nil)

	detail, err := svc.MovieDetail(context.Background(), "7")
	require.NoError(t, err)

	require.Len(t, detail.Credits.Cast, 1)
	assert.Equal(t, "Embedded", detail.Credits.Cast[0]["name"])
	assert.Equal(t, "Lead", detail.Credits.Cast[0]["character"])
	assert.NotNil(t, detail.Reviews)
	assert.Empty(t, detail.Reviews)
}

func TestMovieDetailBareReviewList(t *testing.T) {
	api := newFakeAPI()
	api.handle("GET /movies/8", http.StatusOK, `{"id":8,"title":"Z"}`)
	api.handle("GET /movies/8/reviews", http.StatusOK, `[{"author":"ann","content":"good","id":"r1"}]`)
	svc := service.NewCatalogService(api.client(t), nil)

	detail, err := svc.MovieDetail(context.Background(), "8")
	require.NoError(t, err)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, "r1", detail.Reviews[0]["id"])
}

func TestMovieDetailNotFound(t *testing.T) {
	api := newFakeAPI()
	svc := service.NewCatalogService(api.client(t), nil)

	_, err := svc.MovieDetail(context.Background(), "404")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCacheInvalidate(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, mr.Set("movies:popular:1", "{}"))
	require.NoError(t, mr.Set("movie:detail:1", "{}"))
	require.NoError(t, mr.Set("person:detail:1", "{}"))
	require.NoError(t, mr.Set("ratelimit:1.2.3.4", "3"))

	n, err := cache.Invalidate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.True(t, mr.Exists("ratelimit:1.2.3.4"))
}

func TestMovieDetailDegradedIsNotCached(t *testing.T) {
	api := newFakeAPI()
	api.handle("GET /movies/9", http.StatusOK, `{"id":9,"title":"W"}`)
	api.handleFlaky("GET /movies/9/credits", 1, `{"cast":[{"id":3,"name":"Fetched","character":"Lead"}],"crew":[]}`)
	api.handle("GET /movies/9/reviews", http.StatusOK, `{"results":[]}`)
	cache, mr := newCache(t)
	svc := service.NewCatalogService(api.client(t), cache)

	first, err := svc.MovieDetail(context.Background(), "9")
	require.NoError(t, err)
	assert.Empty(t, first.Credits.Cast)
	assert.False(t, mr.Exists("movie:detail:9"))

	second, err := svc.MovieDetail(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, second.Credits.Cast, 1)
	assert.Equal(t, "Fetched", second.Credits.Cast[0]["name"])
	assert.True(t, mr.Exists("movie:detail:9"))
}

func TestHomeFeedPartialIsNotCached(t *testing.T) {
	api := newFakeAPI()
	api.handle("GET /movies/popular", http.StatusOK, moviePage("p", 3))
	api.handleFlaky("GET /movies/top-rated", 1, moviePage("t", 3))
	cache, mr := newCache(t)
	svc := service.NewCatalogService(api.client(t), cache)

	_, err := svc.HomeFeed(context.Background())
	require.NoError(t, err)
	assert.False(t, mr.Exists("movies:home"))

	feed, err := svc.HomeFeed(context.Background())
	require.NoError(t, err)
	assert.Len(t, feed.TopRated, 9)
	assert.True(t, mr.Exists("movies:home"))
}
