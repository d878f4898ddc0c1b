package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculation_String(t *testing.T) {
	c := Calculation{Expression: "1'000*3", Result: 3000, Display: "3'000"}
	assert.Equal(t, "1'000*3 = 3'000", c.String())
}
