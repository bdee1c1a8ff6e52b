package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_FallsBackToSaffron(t *testing.T) {
	assert.Equal(t, Midnight, Get("midnight"))
	assert.Equal(t, Saffron, Get("does-not-exist"))
}

func TestNext_Cycles(t *testing.T) {
	seen := []string{}
	key := Saffron.Key
	for range AllThemes() {
		key = Next(key).Key
		seen = append(seen, key)
	}

	assert.Equal(t, []string{"midnight", "parchment", "forest", "saffron"}, seen)
	assert.Equal(t, Midnight, Next("unknown"), "unknown keys render as saffron, so the next one is midnight")
}
