package normalize

// fieldSet lists, for each canonical field, the source keys read in order.
type fieldSet struct {
	poster    []string
	profile   []string
	rating    []string
	overview  []string
	biography []string
	birthday  []string
	author    []string
	createdAt []string
}

var dialectFields = map[Dialect]fieldSet{
	DialectTMDB: {
		poster:    []string{"poster_path"},
		profile:   []string{"profile_path"},
		rating:    []string{"vote_average"},
		overview:  []string{"overview"},
		biography: []string{"biography"},
		birthday:  []string{"birthday"},
		author:    []string{"author"},
		createdAt: []string{"created_at"},
	},
	DialectLegacy: {
		poster:    []string{"image", "poster_path"},
		profile:   []string{"image", "profile_path"},
		rating:    []string{"rate", "vote_average"},
		overview:  []string{"short_description", "plot_full", "overview"},
		biography: []string{"summary", "biography"},
		birthday:  []string{"birth_date", "birthday"},
		author:    []string{"username", "author"},
		createdAt: []string{"date", "created_at"},
	},
}

// fieldsFor returns the dialect of o and the keys to read for it.
func fieldsFor(o Object) (Dialect, fieldSet) {
	d := DetectDialect(o)
	return d, dialectFields[d]
}
