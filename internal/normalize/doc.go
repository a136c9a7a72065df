// Package normalize converts upstream movie API payloads into one canonical shape.
//
// The upstream speaks two dialects for the same entities: a TMDB-like one
// (poster_path, vote_average, overview, credits) and a legacy one (image, rate,
// short_description, plot_full, year, actors, directors, similar_movies). The
// functions here sniff which one is present and map it onto the TMDB-like names.
//
// Payloads are handled as decoded JSON objects so that fields the normalizer does
// not know about reach the caller untouched. Inputs are never modified; every
// function returns a new Object.
package normalize
