// Package names generates readable random branch names such as
// "grace-hopper-3f2a" for worktrees created without an explicit branch.
package names

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"math/rand/v2"
)

var firstNames = []string{
	"alice", "bob", "charlie", "david", "emma", "frank", "grace", "henry",
	"iris", "jack", "kate", "liam", "mia", "noah", "olivia", "peter",
	"quinn", "ruby", "sam", "tara", "uma", "victor", "wendy", "xavier",
	"yuki", "zoe", "alex", "ben", "claire", "dan", "eva", "finn",
	"gina", "hugo", "ivy", "jake", "kim", "leo", "maya", "nick",
	"oscar", "paul", "quin", "rose", "steve", "tom", "uri", "vera",
	"will", "xena", "yan", "zara",
}

var lastNames = []string{
	"smith", "jones", "brown", "davis", "miller", "wilson", "moore", "taylor",
	"anderson", "thomas", "jackson", "white", "harris", "martin", "garcia", "martinez",
	"robinson", "clark", "rodriguez", "lewis", "lee", "walker", "hall", "allen",
	"young", "king", "wright", "lopez", "hill", "scott", "green", "adams",
	"baker", "nelson", "carter", "mitchell", "perez", "roberts", "turner", "phillips",
	"campbell", "parker", "evans", "edwards", "collins", "stewart", "sanchez", "morris",
	"rogers", "reed", "cook", "morgan",
}

// Generator produces branch names of the form first-last-hhhh.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded from the operating system.
func NewGenerator() *Generator {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return NewGeneratorWithSource(rand.NewChaCha8(seed))
}

// NewGeneratorWithSource returns a Generator drawing from src.
func NewGeneratorWithSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns a new random branch name. Names are not guaranteed to be
// unique; callers treat a collision like any other existing worktree.
func (g *Generator) Generate() string {
	first := firstNames[g.rng.IntN(len(firstNames))]
	last := lastNames[g.rng.IntN(len(lastNames))]

	var suffix [2]byte
	binary.LittleEndian.PutUint16(suffix[:], uint16(g.rng.Uint32()))

	return first + "-" + last + "-" + hex.EncodeToString(suffix[:])
}
