package normalize

import "strings"

// placeholderImage is what the legacy backend writes when it has no picture.
const placeholderImage = "string"

// ValidImage reports whether v can be used as an image path.
func ValidImage(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.TrimSpace(s)
	return s != "" && s != placeholderImage
}

// imageOf returns the first valid image among keys, or nil.
func imageOf(o Object, keys ...string) any {
	for _, k := range keys {
		if v := o[k]; ValidImage(v) {
			return v
		}
	}
	return nil
}
