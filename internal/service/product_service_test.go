package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AppariLavanya/inventory-management-system/internal/models"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

func TestProductRequestValidate(t *testing.T) {
	req := ProductRequest{Name: "Widget"}
	assert.NoError(t, req.validate())

	req = ProductRequest{Name: "   "}
	assert.ErrorIs(t, req.validate(), utils.ErrValidation)

	req = ProductRequest{Name: "Widget", Stock: intPtr(-1)}
	assert.ErrorIs(t, req.validate(), utils.ErrValidation)

	req = ProductRequest{Name: "Widget", Price: floatPtr(-0.01)}
	assert.ErrorIs(t, req.validate(), utils.ErrValidation)

	req = ProductRequest{Name: "Widget", Stock: intPtr(0), Price: floatPtr(0)}
	assert.NoError(t, req.validate(), "zero stock and price are valid")
}

func TestProductRequestToModelDefaultsReorderLevel(t *testing.T) {
	req := ProductRequest{Name: "Widget"}

	p := req.toModel()

	require.NotNil(t, p.ReorderLevel)
	assert.Equal(t, models.DefaultReorderLevel, *p.ReorderLevel)
}

func TestProductRequestToModelKeepsExplicitReorderLevel(t *testing.T) {
	req := ProductRequest{Name: "Widget", ReorderLevel: intPtr(0)}

	p := req.toModel()

	require.NotNil(t, p.ReorderLevel)
	assert.Equal(t, 0, *p.ReorderLevel)
}
