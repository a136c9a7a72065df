package models

import "movie-info-gateway/internal/normalize"

// MovieList is a page of normalized movies.
type MovieList struct {
	Page         int                `json:"page"`
	TotalPages   int                `json:"total_pages"`
	TotalResults int                `json:"total_results"`
	Results      []normalize.Object `json:"results"`
}

// HomeFeed groups the lists shown on the landing page.
type HomeFeed struct {
	Popular  []normalize.Object `json:"popular"`
	TopRated []normalize.Object `json:"top_rated"`
	Featured []normalize.Object `json:"featured"`
}

// Credits is the cast and crew of a movie.
type Credits struct {
	Cast []normalize.Object `json:"cast"`
	Crew []normalize.Object `json:"crew"`
}

// MovieDetail is a movie together with its credits and reviews.
type MovieDetail struct {
	Movie   normalize.Object   `json:"movie"`
	Credits Credits            `json:"credits"`
	Reviews []normalize.Object `json:"reviews"`
}

// PersonDetail is a person together with the movies they appeared in.
type PersonDetail struct {
	Person  normalize.Object   `json:"person"`
	Credits []normalize.Object `json:"credits"`
}

// Pagination limits for list endpoints.
const (
	DefaultPage = 1
	MaxPage     = 500
)

// HomeFeed sizes.
const (
	HomeFeedPages    = 3
	HomeFeedListSize = 30
	FeaturedSize     = 5
)
