package flowsep

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalanceRatio_SelectsByModulo(t *testing.T) {
	// seed*nodeCount chosen to land exactly on each residue mod 3.
	num, den := balanceRatio(3, 1) // 3*1 % 3 == 0
	assert.Equal(t, 1, num)
	assert.Equal(t, 3, den)

	num, den = balanceRatio(4, 1) // 4*1 % 3 == 1
	assert.Equal(t, 2, num)
	assert.Equal(t, 5, den)

	num, den = balanceRatio(5, 1) // 5*1 % 3 == 2
	assert.Equal(t, 1, num)
	assert.Equal(t, 4, den)
}
