package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(23, 1, 10)
	assert.Equal(t, Pagination{Total: 23, Page: 1, Limit: 10, Pages: 3}, p)

	p = NewPagination(20, 2, 10)
	assert.Equal(t, 2, p.Pages)

	p = NewPagination(0, 1, 10)
	assert.Equal(t, 0, p.Pages)

	// A zero limit must not divide by zero.
	p = NewPagination(5, 1, 0)
	assert.Equal(t, 0, p.Pages)
}

func TestOrderDTO_ToDomain_NormalizesStatus(t *testing.T) {
	order := OrderDTO{ID: "ord-1", Status: "Pending"}.ToDomain()
	assert.Equal(t, "pending", order.Status.String())

	// Unknown statuses survive instead of being dropped.
	order = OrderDTO{ID: "ord-2", Status: "refunded"}.ToDomain()
	assert.Equal(t, "refunded", order.Status.String())
}
