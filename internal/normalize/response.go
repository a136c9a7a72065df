package normalize

import "github.com/samber/lo"

// Response normalizes a decoded response body.
//
// A body with a "data" list gets a normalized copy of it under "results", and
// "data" is kept. A body with a "results" list gets it replaced by its
// normalized form. Any other object is normalized as a person or a movie when it
// looks like one. Everything else, tokens and empty objects included, is
// returned unchanged.
func Response(body any) any {
	obj, ok := asObject(body)
	if !ok {
		return body
	}
	for _, key := range []string{"data", "results"} {
		if list, ok := asList(obj[key]); ok {
			out := clone(obj)
			out["results"] = List(list)
			return out
		}
	}
	if _, ok := obj["data"]; ok {
		return body
	}
	if _, ok := obj["results"]; ok {
		return body
	}

	switch Classify(obj) {
	case KindPerson:
		return Person(obj)
	case KindMovie:
		return Movie(obj)
	default:
		return body
	}
}

// List normalizes a collection as reviews or movies depending on its first
// element. Elements that are not objects are kept as they are.
func List(items []any) []any {
	kind := ClassifyList(items)
	return lo.Map(items, func(item any, _ int) any {
		o, ok := asObject(item)
		if !ok {
			return item
		}
		if kind == KindReview {
			return Review(o)
		}
		return Movie(o)
	})
}
