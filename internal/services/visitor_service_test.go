// internal/services/visitor_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vintagecottage/storefront/internal/utils"
)

func TestVisitorRegister(t *testing.T) {
	svc := NewVisitorService(setupTestDB(t))

	result, err := svc.Register(&RegisterVisitorRequest{Name: "Priya Sharma", Phone: "+919812345678"})
	assert.NoError(t, err)
	assert.False(t, result.AlreadyRegistered)
	assert.NotNil(t, result.Visitor)
	// Identity is normalized on the way in.
	assert.Equal(t, "priya sharma", result.Visitor.Name)
}

func TestVisitorRepeatRegistrationIsNotAnError(t *testing.T) {
	svc := NewVisitorService(setupTestDB(t))

	first, err := svc.Register(&RegisterVisitorRequest{Name: "Arun", Phone: "+919800112233"})
	assert.NoError(t, err)

	// Same identity with different casing and whitespace.
	second, err := svc.Register(&RegisterVisitorRequest{Name: "  ARUN ", Phone: "+919800112233"})
	assert.NoError(t, err)
	assert.True(t, second.AlreadyRegistered)
	assert.Equal(t, first.Visitor.ID, second.Visitor.ID)
}

func TestVisitorSamePhoneDifferentName(t *testing.T) {
	svc := NewVisitorService(setupTestDB(t))

	_, err := svc.Register(&RegisterVisitorRequest{Name: "Kavita", Phone: "+919811111111"})
	assert.NoError(t, err)

	result, err := svc.Register(&RegisterVisitorRequest{Name: "Kavita R", Phone: "+919811111111"})
	assert.NoError(t, err)
	assert.False(t, result.AlreadyRegistered)
}

func TestVisitorRejectsBadPhone(t *testing.T) {
	svc := NewVisitorService(setupTestDB(t))

	_, err := svc.Register(&RegisterVisitorRequest{Name: "Nobody", Phone: "not-a-number"})
	assert.Error(t, err)
}

func TestVisitorListAndCount(t *testing.T) {
	svc := NewVisitorService(setupTestDB(t))

	for _, v := range []RegisterVisitorRequest{
		{Name: "Amit", Phone: "+919800000001"},
		{Name: "Bina", Phone: "+919800000002"},
		{Name: "Chetan", Phone: "+919800000003"},
	} {
		req := v
		_, err := svc.Register(&req)
		assert.NoError(t, err)
	}

	visitors, total, err := svc.ListVisitors(utils.PaginationParams{Page: 1, Limit: 10, Order: "desc"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, visitors, 3)

	count, err := svc.CountVisitors()
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
