// Package query is a keyed, de-duplicating cache in front of the gateways.
//
// A view mounts a query with Observe and unmounts it with Close. While a
// fetch for a key is in flight every reader of that key shares it. Mutations
// invalidate keys by prefix; mounted entries are re-fetched in the background.
package query

import "strings"

// Key identifies a cached collection: a resource name plus ordered params.
type Key struct {
	Resource string
	Params   []string
}

// NewKey builds a key, e.g. NewKey("users", "skip=0", "limit=100").
func NewKey(resource string, params ...string) Key {
	return Key{Resource: resource, Params: params}
}

// With returns a copy of k with params appended.
func (k Key) With(params ...string) Key {
	out := make([]string, 0, len(k.Params)+len(params))
	out = append(out, k.Params...)
	out = append(out, params...)
	return Key{Resource: k.Resource, Params: out}
}

// String is the cache identity of the key.
func (k Key) String() string {
	if len(k.Params) == 0 {
		return k.Resource
	}
	return k.Resource + ":" + strings.Join(k.Params, ":")
}

// HasPrefix reports whether prefix names the same resource and its params
// are a leading subsequence of k's params.
func (k Key) HasPrefix(prefix Key) bool {
	if k.Resource != prefix.Resource || len(prefix.Params) > len(k.Params) {
		return false
	}
	for i, p := range prefix.Params {
		if k.Params[i] != p {
			return false
		}
	}
	return true
}
