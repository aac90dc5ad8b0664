package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	assert.Equal(t, "abc", Preview("abc", 5))
	assert.Equal(t, "abcde", Preview("abcde", 5))
	assert.Equal(t, "abcde...", Preview("abcdef", 5))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", OrNA(""))
	assert.Equal(t, "Anna", OrNA("Anna"))
}
