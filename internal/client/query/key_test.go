package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_String(t *testing.T) {
	assert.Equal(t, "users", NewKey("users").String())
	assert.Equal(t, "users:skip=0:limit=100", NewKey("users", "skip=0", "limit=100").String())
}

func TestKey_With_DoesNotAlias(t *testing.T) {
	base := NewKey("users", "skip=0")
	a := base.With("limit=10")
	b := base.With("limit=20")

	assert.Equal(t, "users:skip=0:limit=10", a.String())
	assert.Equal(t, "users:skip=0:limit=20", b.String())
	assert.Equal(t, "users:skip=0", base.String())
}

func TestKey_HasPrefix(t *testing.T) {
	key := NewKey("users", "skip=0", "limit=100")

	tests := []struct {
		name   string
		prefix Key
		want   bool
	}{
		{name: "resource only", prefix: NewKey("users"), want: true},
		{name: "leading param", prefix: NewKey("users", "skip=0"), want: true},
		{name: "exact", prefix: key, want: true},
		{name: "other resource", prefix: NewKey("reports"), want: false},
		{name: "param mismatch", prefix: NewKey("users", "skip=10"), want: false},
		{name: "longer prefix", prefix: key.With("x"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, key.HasPrefix(tt.prefix))
		})
	}
}
