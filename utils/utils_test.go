package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(45, 2, 20)
	assert.Equal(t, 45, p.TotalItems)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)

	// Defaults kick in for out-of-range inputs.
	p = CreatePagination(5, 0, -1)
	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 1, p.TotalPages)
}

func TestPaginationBounds(t *testing.T) {
	p := CreatePagination(45, 3, 20)
	start, end := p.Bounds()
	assert.Equal(t, 40, start)
	assert.Equal(t, 45, end)

	// Past the last page the window is empty, not out of range.
	p = CreatePagination(45, 9, 20)
	start, end = p.Bounds()
	assert.Equal(t, 45, start)
	assert.Equal(t, 45, end)
}
