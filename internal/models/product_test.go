package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveReorderLevel(t *testing.T) {
	p := Product{}
	assert.Equal(t, DefaultReorderLevel, p.EffectiveReorderLevel())

	rl := 12
	p.ReorderLevel = &rl
	assert.Equal(t, 12, p.EffectiveReorderLevel())

	zero := 0
	p.ReorderLevel = &zero
	assert.Equal(t, 0, p.EffectiveReorderLevel(), "explicit zero is not the same as unset")
}

func TestNormalizeSKU(t *testing.T) {
	p := Product{SKU: "  ab-123 "}
	p.NormalizeSKU()
	assert.Equal(t, "AB-123", p.SKU)
}
