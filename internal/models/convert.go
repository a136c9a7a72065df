package models

import (
	"movie-info-gateway/internal/normalize"
)

// Objects returns the object elements of a decoded JSON list. Anything that is
// not a list yields an empty, non-nil slice.
func Objects(v any) []normalize.Object {
	out := []normalize.Object{}
	list, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range list {
		if o, ok := item.(normalize.Object); ok && o != nil {
			out = append(out, o)
		}
	}
	return out
}

// Object returns v as an object, or nil.
func Object(v any) normalize.Object {
	o, _ := v.(normalize.Object)
	return o
}

// MovieListFrom reads a normalized list body. Page fields default to zero when
// the upstream leaves them out.
func MovieListFrom(body any) MovieList {
	o := Object(body)
	return MovieList{
		Page:         intField(o, "page"),
		TotalPages:   intField(o, "total_pages"),
		TotalResults: intField(o, "total_results"),
		Results:      Objects(o["results"]),
	}
}

// CreditsFrom reads a credits object, normalized or raw.
func CreditsFrom(v any) Credits {
	o := Object(v)
	return Credits{
		Cast: Objects(o["cast"]),
		Crew: Objects(o["crew"]),
	}
}

func intField(o normalize.Object, key string) int {
	switch n := o[key].(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return 0
	}
}
