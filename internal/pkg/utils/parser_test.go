package utils

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestCoerceFloat(t *testing.T) {
	t.Run("Numeric string", func(t *testing.T) {
		assert.Equal(t, 2.5, CoerceFloat("2.5"))
	})

	t.Run("Numeric string with whitespace", func(t *testing.T) {
		assert.Equal(t, 10.0, CoerceFloat(" 10 "))
	})

	t.Run("Unparseable string coerces to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CoerceFloat("abc"))
	})

	t.Run("Float64 passes through", func(t *testing.T) {
		assert.Equal(t, 3.25, CoerceFloat(3.25))
	})

	t.Run("Int converts", func(t *testing.T) {
		assert.Equal(t, 7.0, CoerceFloat(7))
	})

	t.Run("JSON number", func(t *testing.T) {
		assert.Equal(t, 1.5, CoerceFloat(json.Number("1.5")))
	})

	t.Run("Nil coerces to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CoerceFloat(nil))
	})

	t.Run("Bool coerces to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, CoerceFloat(true))
	})
}

func TestCoerceInt(t *testing.T) {
	assert.Equal(t, 3, CoerceInt("3"))
	assert.Equal(t, 2, CoerceInt(2.9), "fractional input truncates")
	assert.Equal(t, 0, CoerceInt("seven"))
}
