package injector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/km-arc/go-scaffold/framework/injector"
)

func TestInjectionChain_Empty(t *testing.T) {
	c := injector.NewInjectionChain()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, "", c.Class())
	assert.False(t, c.Contains("A"))
	assert.Empty(t, c.Resolutions())
}

func TestInjectionChain_AddAppendsInOrder(t *testing.T) {
	c := injector.NewInjectionChain().Add("A").Add("B").Add("C")

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "C", c.Class())
	assert.Equal(t, []string{"A", "B", "C"}, c.Resolutions())
}

func TestInjectionChain_ContainsVisitedIdentifiers(t *testing.T) {
	c := injector.NewInjectionChain().Add("A").Add("B")

	assert.True(t, c.Contains("A"))
	assert.True(t, c.Contains("B"))
	assert.False(t, c.Contains("C"))
}

func TestInjectionChain_AddDoesNotMutateReceiver(t *testing.T) {
	base := injector.NewInjectionChain().Add("A")

	left := base.Add("B")
	right := base.Add("C")

	assert.Equal(t, []string{"A"}, base.Resolutions())
	assert.Equal(t, []string{"A", "B"}, left.Resolutions())
	assert.Equal(t, []string{"A", "C"}, right.Resolutions())
	assert.False(t, base.Contains("B"))
	assert.False(t, left.Contains("C"))
}

func TestInjectionChain_ResolutionsReturnsCopy(t *testing.T) {
	c := injector.NewInjectionChain().Add("A").Add("B")

	got := c.Resolutions()
	got[0] = "mutated"

	assert.Equal(t, []string{"A", "B"}, c.Resolutions())
}
