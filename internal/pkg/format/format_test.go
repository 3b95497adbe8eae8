package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber(t *testing.T) {
	tests := map[int64]string{
		0:       "0",
		999:     "999",
		25000:   "25,000",
		1234567: "1,234,567",
		-4200:   "-4,200",
	}
	for in, want := range tests {
		assert.Equal(t, want, Number(in), "%d", in)
	}
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$25,000", Currency(25000))
	assert.Equal(t, "$1,234,567", Currency(1234567))
	assert.Equal(t, "-$50", Currency(-50))
}

func TestChange(t *testing.T) {
	assert.Equal(t, "3.2%", Change(-3.2))
	assert.Equal(t, "12.5%", Change(12.5))
	assert.Equal(t, "0%", Change(0))
	assert.Equal(t, "8%", Change(8))
}

func TestTrend(t *testing.T) {
	assert.Equal(t, "Increased", Trend(0))
	assert.Equal(t, "Increased", Trend(4.1))
	assert.Equal(t, "Decreased", Trend(-0.1))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Pending", Title("pending"))
	assert.Equal(t, "Digital Art", Title("digital art"))
}
