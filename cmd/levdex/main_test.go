package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/projectdiscovery/goflags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofuzzy/levdex/internal/config"
	"github.com/gofuzzy/levdex/trie"
)

func TestSplitQueryLine(t *testing.T) {
	query, bound := splitQueryLine("helo\t2", 1)
	assert.Equal(t, "helo", query)
	assert.Equal(t, 2, bound)

	query, bound = splitQueryLine("helo", 3)
	assert.Equal(t, "helo", query)
	assert.Equal(t, 3, bound)

	query, bound = splitQueryLine("helo\tnotanumber", 1)
	assert.Equal(t, "helo", query)
	assert.Equal(t, 1, bound)
}

func TestParseBounds(t *testing.T) {
	bounds, err := parseBounds(goflags.StringSlice{"1", "2", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, bounds)

	_, err = parseBounds(goflags.StringSlice{"nope"})
	assert.Error(t, err)
}

func TestRunQueryLoop(t *testing.T) {
	tr := trie.New()
	tr.Insert("cat")
	tr.Insert("car")
	require.NoError(t, tr.Install(1))

	cfg := &config.Config{DefaultBound: 1, ResultLimit: 10}
	var out bytes.Buffer
	runQueryLoop(strings.NewReader("car\t1\n"), &out, tr, cfg)

	lines := strings.Fields(out.String())
	assert.ElementsMatch(t, []string{"cat", "car"}, lines)
}
