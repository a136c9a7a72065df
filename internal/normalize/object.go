package normalize

import "strings"

// Object is a decoded JSON object.
type Object = map[string]any

// lookup reports the value at key when it is present and not JSON null.
func lookup(o Object, key string) (any, bool) {
	v, ok := o[key]
	return v, ok && v != nil
}

func has(o Object, key string) bool {
	_, ok := lookup(o, key)
	return ok
}

// firstDefined returns the first present, non-null value among keys, or nil.
func firstDefined(o Object, keys ...string) any {
	for _, k := range keys {
		if v, ok := lookup(o, k); ok {
			return v
		}
	}
	return nil
}

// firstNonEmpty is firstDefined for text fields: blank strings lose to a later
// candidate. When every candidate is blank the first defined one is returned.
func firstNonEmpty(o Object, keys ...string) any {
	for _, k := range keys {
		v, ok := lookup(o, k)
		if !ok {
			continue
		}
		if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return firstDefined(o, keys...)
}

func clone(o Object) Object {
	out := make(Object, len(o)+4)
	for k, v := range o {
		out[k] = v
	}
	return out
}

func asObject(v any) (Object, bool) {
	o, ok := v.(Object)
	return o, ok && o != nil
}

func asList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, l != nil
	case []Object:
		if l == nil {
			return nil, false
		}
		out := make([]any, len(l))
		for i, o := range l {
			out[i] = o
		}
		return out, true
	}
	return nil, false
}

// objects keeps the object elements of a list and drops anything else.
func objects(list []any) []Object {
	out := make([]Object, 0, len(list))
	for _, item := range list {
		if o, ok := asObject(item); ok {
			out = append(out, o)
		}
	}
	return out
}
