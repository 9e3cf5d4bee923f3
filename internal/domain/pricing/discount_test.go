package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestApplyDiscount(t *testing.T) {
	cases := []struct {
		price, pct, want string
	}{
		{"100", "10", "90"},
		{"200", "10", "180"},
		{"19.99", "15", "16.99"},
		{"50", "0", "50"},
		{"50", "100", "0"},
	}
	for _, c := range cases {
		got := ApplyDiscount(d(c.price), d(c.pct))
		assert.True(t, got.Equal(d(c.want)), "%s -%s%% = %s, se obtuvo %s", c.price, c.pct, c.want, got)
	}
}

func TestValidDiscount(t *testing.T) {
	assert.True(t, ValidDiscount(d("0")))
	assert.True(t, ValidDiscount(d("100")))
	assert.False(t, ValidDiscount(d("-1")))
	assert.False(t, ValidDiscount(d("100.01")))
}
