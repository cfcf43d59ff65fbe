package names

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var branchNamePattern = regexp.MustCompile(`^[a-z]+-[a-z]+-[a-f0-9]{4}$`)

func TestWordLists(t *testing.T) {
	assert.Len(t, firstNames, 52)
	assert.Len(t, lastNames, 52)

	lower := regexp.MustCompile(`^[a-z]+$`)
	for _, n := range append(append([]string{}, firstNames...), lastNames...) {
		assert.Regexp(t, lower, n)
	}
}

func TestGenerate_Format(t *testing.T) {
	g := NewGeneratorWithSource(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		name := g.Generate()
		require.Regexp(t, branchNamePattern, name)
	}
}

func TestGenerate_DefaultSourceFormat(t *testing.T) {
	g := NewGenerator()

	for i := 0; i < 50; i++ {
		assert.Regexp(t, branchNamePattern, g.Generate())
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewGeneratorWithSource(rand.NewPCG(42, 7))
	b := NewGeneratorWithSource(rand.NewPCG(42, 7))

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerate_Unique(t *testing.T) {
	g := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		seen[g.Generate()] = struct{}{}
	}
	assert.Len(t, seen, 10)
}

func TestGenerate_CoversWordLists(t *testing.T) {
	g := NewGeneratorWithSource(rand.NewPCG(3, 4))

	firsts := make(map[string]bool)
	lasts := make(map[string]bool)
	for i := 0; i < 5000; i++ {
		parts := strings.Split(g.Generate(), "-")
		require.Len(t, parts, 3)
		firsts[parts[0]] = true
		lasts[parts[1]] = true
	}
	assert.Len(t, firsts, len(firstNames))
	assert.Len(t, lasts, len(lastNames))
}
