package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasalvit/polymate"
)

const iconSvg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 20">
<rect id="bg" width="20" height="20"/>
<polygon id="square" points="0,0 10,10" data-animate-to="10,0 0,10"/>
<polygon id="plain" points="0,0 10,10"/>
</svg>`

func writeTestSvg(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.svg")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPolygon(t *testing.T) {
	path := writeTestSvg(t, iconSvg)

	p, err := loadPolygon(path, "", 0, 2)
	require.NoError(t, err)
	assert.Equal(t, "square", p.Element.ID)

	p, err = loadPolygon(path, "square", 2, 2)
	require.NoError(t, err)
	points, err := p.Step(0.5)
	require.NoError(t, err)
	assert.Equal(t, "10,0 10,20", points)

	_, err = loadPolygon(path, "bg", 0, 2)
	require.ErrorIs(t, err, polymate.ErrElementType)

	_, err = loadPolygon(path, "plain", 0, 2)
	require.ErrorIs(t, err, polymate.ErrMissingTarget)

	_, err = loadPolygon(filepath.Join(t.TempDir(), "missing.svg"), "", 0, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")

	_, err = loadPolygon(writeTestSvg(t, `<svg><rect/></svg>`), "", 0, 2)
	require.ErrorIs(t, err, errNoPolygon)
}

func TestLoadPolygonPrecision(t *testing.T) {
	path := writeTestSvg(t, `<svg><polygon points="0,0" data-animate-to="1,2"/></svg>`)

	p, err := loadPolygon(path, "", 0, 3)
	require.NoError(t, err)
	points, err := p.Step(1.0 / 3)
	require.NoError(t, err)
	assert.Equal(t, "0.333,0.667", points)
}

func TestFrameProgress(t *testing.T) {
	steps, err := frameProgress(5, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, steps)

	steps, err = frameProgress(5, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0.75, 0.5, 0.25, 0}, steps)

	steps, err = frameProgress(1, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, steps)

	steps, err = frameProgress(1, true)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, steps)

	_, err = frameProgress(0, false)
	require.Error(t, err)
}

func TestWriteFrames(t *testing.T) {
	p, err := loadPolygon(writeTestSvg(t, iconSvg), "square", 0, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeFrames(&buf, p, []float64{0, 0.5, 1}, true))
	assert.Equal(t, "0.0000\t0,0 10,10\n0.5000\t5,0 5,10\n1.0000\t10,0 0,10\n", buf.String())
	assert.Equal(t, 1.0, p.Progress())

	buf.Reset()
	require.NoError(t, writeFrames(&buf, p, []float64{0.5}, false))
	assert.Equal(t, "5,0 5,10\n", buf.String())

	buf.Reset()
	err = writeFrames(&buf, p, []float64{0.5, 2}, false)
	require.ErrorIs(t, err, polymate.ErrOutOfRange)
	assert.Equal(t, "5,0 5,10\n", buf.String())
	assert.Equal(t, 0.5, p.Progress())
}
