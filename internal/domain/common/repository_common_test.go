// internal/domain/common/repository_common_test.go
package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	page, per, off := NormalizePage(0, 0, 20, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, per, "non-positive perPage falls back to the default")
	assert.Equal(t, 0, off)

	page, per, off = NormalizePage(3, 25, 20, 100)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, per)
	assert.Equal(t, 50, off)

	_, per, _ = NormalizePage(1, 500, 20, 100)
	assert.Equal(t, 100, per, "perPage is capped at max")

	page, _, off = NormalizePage(-4, 10, 20, 100)
	assert.Equal(t, 1, page)
	assert.Equal(t, 0, off)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(10, 0))
	assert.Equal(t, 1, TotalPages(10, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(0, 20))
}
