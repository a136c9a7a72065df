package normalize

import "github.com/samber/lo"

// Person maps a person payload of either dialect onto the canonical person
// shape. A nil raw is returned unchanged.
func Person(raw Object) Object {
	if raw == nil {
		return raw
	}
	out := clone(raw)
	_, fields := fieldsFor(raw)
	out["profile_path"] = imageOf(raw, fields.profile...)
	out["biography"] = firstNonEmpty(raw, fields.biography...)
	out["birthday"] = firstNonEmpty(raw, fields.birthday...)

	knownFor := []any{}
	if list, ok := asList(raw["known_for"]); ok {
		knownFor = lo.Map(list, func(item any, _ int) any {
			if o, ok := asObject(item); ok {
				return Movie(o)
			}
			return item
		})
	}
	out["known_for"] = knownFor
	return out
}
