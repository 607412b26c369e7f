package qr

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	token := GenerateToken()
	require.NotEmpty(t, token)
	assert.True(t, ValidToken(token))

	// tokens must be unique
	assert.NotEqual(t, token, GenerateToken())
}

func TestValidToken(t *testing.T) {
	assert.False(t, ValidToken(""))
	assert.False(t, ValidToken("not-a-token"))
	assert.False(t, ValidToken("12345"))
	assert.True(t, ValidToken("7c9e6679-7425-40de-944b-e07fc1f90ae7"))
}

func TestMenuURL(t *testing.T) {
	barId := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	token := "a6f1d1a2-94be-4a73-9d20-9c5a6f3d0b11"

	got := MenuURL("https://app.mesalink.app", barId, token)
	assert.Equal(t, "https://app.mesalink.app/bar/7c9e6679-7425-40de-944b-e07fc1f90ae7?qr=a6f1d1a2-94be-4a73-9d20-9c5a6f3d0b11", got)

	// trailing slash on the origin must not produce a double slash
	withSlash := MenuURL("https://app.mesalink.app/", barId, token)
	assert.Equal(t, got, withSlash)
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG("https://app.mesalink.app/bar/x?qr=y", Options{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestRenderPNG_EmptyContent(t *testing.T) {
	_, err := RenderPNG("", Options{})
	assert.Error(t, err)
}

func TestRenderDataURL(t *testing.T) {
	url, err := RenderDataURL("https://app.mesalink.app/bar/x?qr=y", Options{Size: 128})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG("https://app.mesalink.app/bar/x?qr=y", Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, DefaultDark)
	assert.Contains(t, svg, DefaultLight)
}

func TestRenderCustomColors(t *testing.T) {
	svg, err := RenderSVG("content", Options{Dark: "#000000", Light: "#f0f0f0"})
	require.NoError(t, err)
	assert.Contains(t, svg, "#000000")
	assert.Contains(t, svg, "#f0f0f0")

	_, err = RenderPNG("content", Options{Dark: "nope"})
	assert.Error(t, err)
}
