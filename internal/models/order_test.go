package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "PROCESSING", "SHIPPED", "DELIVERED", "CANCELLED"} {
		status, err := ParseOrderStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatus(valid), status)
	}
}

func TestParseOrderStatusRejectsUnknownAndLowercase(t *testing.T) {
	for _, invalid := range []string{"", "pending", "Shipped", "REFUNDED"} {
		_, err := ParseOrderStatus(invalid)
		assert.Error(t, err, "status %q", invalid)
	}
}
