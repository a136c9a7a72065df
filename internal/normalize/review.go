package normalize

import "github.com/google/uuid"

// Review maps a review payload of either dialect onto the canonical review
// shape. Reviews without an id get a random UUID. A nil raw is returned
// unchanged.
func Review(raw Object) Object {
	if raw == nil {
		return raw
	}
	_, fields := fieldsFor(raw)
	out := Object{
		"id":         raw["id"],
		"author":     firstNonEmpty(raw, fields.author...),
		"created_at": firstNonEmpty(raw, fields.createdAt...),
		"rate":       raw["rate"],
		"content":    raw["content"],
	}
	if !has(raw, "id") {
		out["id"] = uuid.NewString()
	}
	return out
}
