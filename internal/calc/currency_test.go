package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/money-mastery/internal/model"
)

func TestFormatCurrency(t *testing.T) {
	// Locale data controls exact symbol placement, grouping, and spacing,
	// so these assertions check content rather than byte-exact output.
	t.Run("renders the amount", func(t *testing.T) {
		got := FormatCurrency(1234.56, model.USD)
		assert.Contains(t, got, "234")
		assert.NotContains(t, got, "XXX")
	})

	t.Run("kenyan shillings", func(t *testing.T) {
		got := FormatCurrency(2500, model.KES)
		assert.Contains(t, got, "500")
	})

	t.Run("unknown currency falls back to code prefix", func(t *testing.T) {
		got := FormatCurrency(42.5, model.Currency("XXX"))
		assert.Equal(t, "XXX 42.50", got)
	})

	t.Run("every supported currency formats", func(t *testing.T) {
		for _, c := range model.Currencies() {
			assert.NotEmpty(t, FormatCurrency(99.99, c), "currency %s", c)
		}
	})
}
