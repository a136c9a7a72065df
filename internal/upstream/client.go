package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-info-gateway/internal/config"
	"movie-info-gateway/internal/normalize"
)

// AppTokenHeader identifies this application to the movie API.
const AppTokenHeader = "x-app-token"

// Client is the movie API client. Every successful body it returns has been
// passed through normalize.Response.
type Client struct {
	baseURL  string
	appToken string
	http     *http.Client
}

// NewClient creates a new movie API client.
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		appToken: cfg.AppToken,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type tokenKey struct{}

// WithToken returns a context whose calls carry the user's bearer token.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey{}).(string)
	return t
}

// ---- Movies ----

// PopularMovies fetches a page of popular movies.
func (c *Client) PopularMovies(ctx context.Context, page int) (any, error) {
	return c.Get(ctx, "/movies/popular", pageQuery(page))
}

// TopRatedMovies fetches a page of top rated movies.
func (c *Client) TopRatedMovies(ctx context.Context, page int) (any, error) {
	return c.Get(ctx, "/movies/top-rated", pageQuery(page))
}

// SearchMovies fetches a page of movies matching query.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (any, error) {
	q := pageQuery(page)
	q.Set("query", query)
	return c.Get(ctx, "/movies/search", q)
}

// MovieDetail fetches a single movie.
func (c *Client) MovieDetail(ctx context.Context, id string) (any, error) {
	return c.Get(ctx, "/movies/"+url.PathEscape(id), nil)
}

// MovieCredits fetches the cast and crew of a movie.
func (c *Client) MovieCredits(ctx context.Context, id string) (any, error) {
	return c.Get(ctx, "/movies/"+url.PathEscape(id)+"/credits", nil)
}

// MovieReviews fetches the reviews of a movie.
func (c *Client) MovieReviews(ctx context.Context, id string) (any, error) {
	return c.Get(ctx, "/movies/"+url.PathEscape(id)+"/reviews", nil)
}

// ---- Persons ----

// PersonDetail fetches a single person.
func (c *Client) PersonDetail(ctx context.Context, id string) (any, error) {
	return c.Get(ctx, "/persons/"+url.PathEscape(id), nil)
}

// PersonCredits fetches the movies a person appeared in.
func (c *Client) PersonCredits(ctx context.Context, id string) (any, error) {
	return c.Get(ctx, "/persons/"+url.PathEscape(id)+"/credits", nil)
}

// ---- Users ----

// Login exchanges credentials for a token. The raw body is returned because
// the token field name varies.
func (c *Client) Login(ctx context.Context, username, password string) ([]byte, error) {
	return c.Do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{
		"username": username,
		"password": password,
	})
}

// Register creates an account.
func (c *Client) Register(ctx context.Context, username, password, email, name string) (any, error) {
	return c.Post(ctx, "/auth/register", map[string]string{
		"username": username,
		"password": password,
		"email":    email,
		"name":     name,
	})
}

// Profile fetches the user the context token belongs to.
func (c *Client) Profile(ctx context.Context) (any, error) {
	return c.Get(ctx, "/users/profile", nil)
}

// ---- Transport ----

// Get performs a GET and returns the normalized body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	raw, err := c.Do(ctx, http.MethodGet, path, query, nil)
	return c.decode(path, raw, err)
}

// Post performs a POST with a JSON payload and returns the normalized body.
func (c *Client) Post(ctx context.Context, path string, payload any) (any, error) {
	raw, err := c.Do(ctx, http.MethodPost, path, nil, payload)
	return c.decode(path, raw, err)
}

// Do performs a request and returns the raw body of a 2xx response. Any other
// outcome is a *RequestError.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(AppTokenHeader, c.appToken)
	if token := tokenFrom(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, Message: DefaultErrorMessage, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	slog.Debug("upstream request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	if err != nil {
		return nil, &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: DefaultErrorMessage, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}
	return raw, nil
}

func (c *Client) decode(path string, raw []byte, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return normalize.Object{}, nil
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if obj, ok := body.(normalize.Object); ok {
		slog.Debug("upstream body",
			"path", path,
			"kind", normalize.Classify(obj).String(),
			"dialect", normalize.DetectDialect(obj).String(),
		)
	}
	return normalize.Response(body), nil
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": []string{strconv.Itoa(page)}}
}
