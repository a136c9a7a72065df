package normalize

import "strings"

// Kind is the entity a payload represents.
type Kind int

const (
	KindUnknown Kind = iota
	KindMovie
	KindPerson
	KindReview
)

func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindPerson:
		return "person"
	case KindReview:
		return "review"
	default:
		return "unknown"
	}
}

// Dialect is the field naming convention a payload uses.
type Dialect int

const (
	DialectTMDB Dialect = iota
	DialectLegacy
)

func (d Dialect) String() string {
	if d == DialectLegacy {
		return "legacy"
	}
	return "tmdb"
}

// legacyFields are only ever sent by the legacy backend, whatever the entity.
var legacyFields = []string{
	"image", "rate", "short_description", "plot_full", "year",
	"actors", "directors", "similar_movies",
	"summary", "birth_date",
	"username", "date",
}

// DetectDialect reports which naming convention o uses. An object carrying any
// legacy-only field is legacy.
func DetectDialect(o Object) Dialect {
	for _, k := range legacyFields {
		if has(o, k) {
			return DialectLegacy
		}
	}
	return DialectTMDB
}

// IsReview reports whether o looks like a review.
func IsReview(o Object) bool {
	return has(o, "content") || (has(o, "username") && has(o, "rate"))
}

// IsPerson reports whether o looks like a person.
func IsPerson(o Object) bool {
	if has(o, "birth_date") || has(o, "summary") {
		return true
	}
	role, ok := o["role"].(string)
	return ok && strings.Contains(role, "Actor")
}

// IsMovie reports whether o looks like a movie.
func IsMovie(o Object) bool {
	for _, k := range []string{"image", "rate", "short_description", "plot_full", "title"} {
		if has(o, k) {
			return true
		}
	}
	return false
}

// Classify decides what a single-entity body is. Person markers are checked
// before movie markers.
func Classify(o Object) Kind {
	switch {
	case o == nil:
		return KindUnknown
	case IsPerson(o):
		return KindPerson
	case IsMovie(o):
		return KindMovie
	default:
		return KindUnknown
	}
}

// ClassifyList decides what every element of a collection is by looking at the
// first one. Mixed lists are not supported.
func ClassifyList(items []any) Kind {
	if len(items) > 0 {
		if first, ok := asObject(items[0]); ok && IsReview(first) {
			return KindReview
		}
	}
	return KindMovie
}
