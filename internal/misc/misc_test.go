package misc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, -3, Min(-3, 0))
	assert.Equal(t, "a", Min("a", "b"))
	assert.Equal(t, 1.5, Min(2.5, 1.5))
}

func TestStringLimit(t *testing.T) {
	assert.Equal(t, "", StringLimit("abcdef", -1))
	assert.Equal(t, "", StringLimit("abcdef", 0))
	assert.Equal(t, "abc", StringLimit("abcdef", 3))
	assert.Equal(t, "ab", StringLimit("ab", 3))
	assert.Equal(t, "a...", StringLimit("abcdef", 4))
	assert.Equal(t, "abcdef", StringLimit("abcdef", 6))
	assert.Equal(t, "abcdef", StringLimit("abcdef", 100))
}

func TestBytesLimit(t *testing.T) {
	assert.Nil(t, BytesLimit([]byte("abcdef"), -1))
	assert.Equal(t, []byte{}, BytesLimit([]byte("abcdef"), 0))
	assert.Equal(t, []byte("abc"), BytesLimit([]byte("abcdef"), 3))
	assert.Equal(t, []byte("a..."), BytesLimit([]byte("abcdef"), 4))
	assert.Equal(t, []byte("abcdef"), BytesLimit([]byte("abcdef"), 6))
	assert.Equal(t, []byte("abcdef"), BytesLimit([]byte("abcdef"), 100))
}
