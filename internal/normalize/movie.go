package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/samber/lo"
)

var runtimeDigits = regexp.MustCompile(`\d+`)

// Movie maps a movie payload of either dialect onto the canonical movie shape.
// Fields it does not know are copied as is. A nil raw is returned unchanged.
func Movie(raw Object) Object {
	if raw == nil {
		return raw
	}
	out := clone(raw)
	dialect, fields := fieldsFor(raw)

	out["poster_path"] = imageOf(raw, fields.poster...)
	out["vote_average"] = firstDefined(raw, fields.rating...)
	out["overview"] = firstNonEmpty(raw, fields.overview...)
	out["release_date"] = raw["release_date"]
	if dialect == DialectLegacy {
		if year, ok := lookup(raw, "year"); ok && scalarString(year) != "" {
			out["release_date"] = scalarString(year) + "-01-01"
		}
	}
	out["runtime"] = runtime(raw["runtime"])
	if genres, ok := genreList(raw["genres"]); ok {
		out["genres"] = genres
	}
	out["credits"] = movieCredits(raw)

	if similar, ok := asList(raw["similar_movies"]); ok {
		out["similar"] = Object{"results": lo.Map(similar, func(item any, _ int) any {
			if o, ok := asObject(item); ok {
				return Movie(o)
			}
			return item
		})}
	}
	if reviews, ok := asList(raw["reviews"]); ok {
		out["reviews"] = Object{"results": lo.Map(reviews, func(item any, _ int) any {
			if o, ok := asObject(item); ok {
				return Review(o)
			}
			return item
		})}
	}

	for _, k := range []string{"id", "title"} {
		if _, ok := out[k]; !ok {
			out[k] = nil
		}
	}
	return out
}

// runtime turns "68 mins" into 68 and keeps numbers. Anything else is nil.
func runtime(v any) any {
	switch r := v.(type) {
	case string:
		m := runtimeDigits.FindString(r)
		if m == "" {
			return nil
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil
		}
		return n
	case float64, float32, int, int32, int64, json.Number:
		return r
	default:
		return nil
	}
}

// genreList turns a list of genre names into {id, name} pairs numbered by
// position. It reports false when v is not a list of names.
func genreList(v any) ([]any, bool) {
	list, ok := asList(v)
	if !ok || len(list) == 0 {
		return nil, false
	}
	if _, isName := list[0].(string); !isName {
		return nil, false
	}
	return lo.Map(list, func(g any, i int) any {
		return Object{"id": i, "name": g}
	}), true
}

// scalarString renders a year-like value without a fractional part.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
