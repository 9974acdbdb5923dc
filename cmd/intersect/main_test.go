package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stdinScene = `shapes:
  - {name: a, kind: circle, center: [0, 0], r: 5}
  - {name: b, kind: rectf, rect: [3, 3, 4, 4]}
  - {name: c, kind: vec2, points: [[20, 20]]}
`

func TestReadSceneFromStdin(t *testing.T) {
	s, err := readScene("-", strings.NewReader(stdinScene))
	require.NoError(t, err)
	assert.Len(t, s.Shapes, 3)

	_, err = readScene("-", strings.NewReader("shapes: [{kind: blob}]"))
	assert.Error(t, err)
}

func TestPrintPairs(t *testing.T) {
	s, err := readScene("-", strings.NewReader(stdinScene))
	require.NoError(t, err)

	var out bytes.Buffer
	printPairs(&out, aurora.NewAurora(false), s)
	assert.Equal(t, strings.Join([]string{
		"   0  a b  hit",
		"   1  a c  clear",
		"   2  b c  clear",
		"3 shapes, 1 intersecting pairs",
		"",
	}, "\n"), out.String())

	*hitsOnly = true
	defer func() { *hitsOnly = false }()
	out.Reset()
	printPairs(&out, aurora.NewAurora(false), s)
	assert.Equal(t, "   0  a b  hit\n3 shapes, 1 intersecting pairs\n", out.String())
}

func TestPrintMatrix(t *testing.T) {
	s, err := readScene("-", strings.NewReader(stdinScene))
	require.NoError(t, err)

	var out bytes.Buffer
	printMatrix(&out, aurora.NewAurora(false), s)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasSuffix(lines[0], " x x ."))
	assert.True(t, strings.HasSuffix(lines[2], " . . x"))
}
