package normalize

import "github.com/samber/lo"

// Credits normalizes a credits payload. Legacy payloads list "actors" and
// "directors"; TMDB-like ones list "cast" and "crew". Either way the result has
// both "cast" and "crew" lists and every member's profile_path obeys the image
// rule. A nil raw yields empty lists.
func Credits(raw Object) Object {
	actors, hasActors := asList(raw["actors"])
	directors, hasDirectors := asList(raw["directors"])
	if hasActors || hasDirectors {
		return legacyCredits(actors, directors)
	}

	out := Object{}
	if raw != nil {
		out = clone(raw)
	}
	out["cast"] = members(raw["cast"])
	out["crew"] = members(raw["crew"])
	return out
}

// movieCredits prefers the legacy lists on the movie itself over an embedded
// credits object.
func movieCredits(raw Object) Object {
	actors, hasActors := asList(raw["actors"])
	directors, hasDirectors := asList(raw["directors"])
	if hasActors || hasDirectors {
		return legacyCredits(actors, directors)
	}
	existing, _ := asObject(raw["credits"])
	return Credits(existing)
}

func legacyCredits(actors, directors []any) Object {
	return Object{
		"cast": lo.Map(objects(actors), func(a Object, _ int) any {
			return Object{
				"id":           a["id"],
				"name":         a["name"],
				"character":    firstDefined(a, "character", "role"),
				"profile_path": imageOf(a, "image", "profile_path"),
			}
		}),
		"crew": lo.Map(objects(directors), func(d Object, _ int) any {
			return Object{
				"id":           d["id"],
				"name":         d["name"],
				"job":          "Director",
				"profile_path": imageOf(d, "image", "profile_path"),
			}
		}),
	}
}

func members(v any) []any {
	list, ok := asList(v)
	if !ok {
		return []any{}
	}
	return lo.Map(list, func(item any, _ int) any {
		o, ok := asObject(item)
		if !ok {
			return item
		}
		m := clone(o)
		m["profile_path"] = imageOf(o, "image", "profile_path")
		return m
	})
}
