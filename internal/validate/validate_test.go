package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "plain number", raw: "150", want: 150},
		{name: "decimal", raw: "85.25", want: 85.25},
		{name: "grouping commas stripped", raw: "1,234.56", want: 1234.56},
		{name: "surrounding whitespace", raw: " 42 ", want: 42},
		{name: "negative allowed", raw: "-10", want: -10},
		{name: "empty", raw: "", wantErr: true},
		{name: "not a number", raw: "abc", wantErr: true},
		{name: "double decimal point", raw: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amount("amount", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *Error
				assert.ErrorAs(t, err, &vErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestPositiveAmount(t *testing.T) {
	got, err := PositiveAmount("price", "10")
	require.NoError(t, err)
	assert.InDelta(t, 10, got, 0.001)

	_, err = PositiveAmount("price", "0")
	assert.Error(t, err)

	_, err = PositiveAmount("price", "-5")
	assert.Error(t, err)
}

func TestNonNegativeAmount(t *testing.T) {
	got, err := NonNegativeAmount("saved", "0")
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = NonNegativeAmount("saved", "-1")
	assert.Error(t, err)
}

func TestRate(t *testing.T) {
	got, err := Rate("rate", "18.5")
	require.NoError(t, err)
	assert.InDelta(t, 18.5, got, 0.001)

	got, err = Rate("rate", "")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestDays(t *testing.T) {
	got, err := Days("reminder", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = Days("reminder", "-1")
	assert.Error(t, err)

	_, err = Days("reminder", "three")
	assert.Error(t, err)
}
