package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBakerBakes(t *testing.T) {
	tests := []struct {
		name    string
		builder BreadBuilder
		want    string
	}{
		{"rye", &RyeBreadBuilder{}, "rye flour, first grade\nsalt"},
		{"wheat", &WheatBreadBuilder{}, "wheat flour, premium grade\nsalt\nadditives: baking improver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bread := Baker{}.Bake(tt.builder)
			require.NotNil(t, bread)
			assert.Equal(t, tt.want, bread.String())
		})
	}
}

func TestBakeReturnsFreshLoaf(t *testing.T) {
	b := &WheatBreadBuilder{}
	first := Baker{}.Bake(b)
	second := Baker{}.Bake(b)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

func TestEmptyBread(t *testing.T) {
	assert.Empty(t, (&Bread{}).String())
}

func TestDirectorConstruct(t *testing.T) {
	b := &ConcreteBuilder{}
	NewDirector(b).Construct()

	assert.Equal(t, []string{"Part A", "Part B", "Part C"}, b.Result().Parts())
}
