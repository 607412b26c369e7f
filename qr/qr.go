// Package qr generates the per-table QR assets: opaque table tokens, the
// menu URLs they resolve to and the rendered code images handed to staff.
package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"net/url"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	// DefaultSize is the rendered image size in pixels
	DefaultSize = 300

	// QuietZoneModules is the blank margin around the code, in modules
	QuietZoneModules = 2

	// DefaultDark and DefaultLight are the brand colors for rendered codes
	DefaultDark  = "#1a1a2e"
	DefaultLight = "#ffffff"
)

// Options controls how a code is rendered
type Options struct {
	Size  int    // output size in pixels, 0 means DefaultSize
	Dark  string // hex color for modules, empty means DefaultDark
	Light string // hex color for the background, empty means DefaultLight
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Dark == "" {
		o.Dark = DefaultDark
	}
	if o.Light == "" {
		o.Light = DefaultLight
	}
	return o
}

// GenerateToken returns a new opaque table token
func GenerateToken() string {
	return uuid.NewString()
}

// ValidToken reports whether s is a well-formed table token
func ValidToken(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// MenuURL builds the customer-facing menu URL a table's code points at.
// Every rendered code and every exported link uses this single scheme.
func MenuURL(origin string, barId uuid.UUID, token string) string {
	return fmt.Sprintf("%s/bar/%s?qr=%s",
		strings.TrimRight(origin, "/"),
		barId.String(),
		url.QueryEscape(token),
	)
}

// bitmap encodes content at error correction level M and returns the module
// matrix without the library's built-in border, so the quiet zone is ours
func bitmap(content string) ([][]bool, error) {
	code, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr content: %w", err)
	}
	code.DisableBorder = true
	return code.Bitmap(), nil
}

// RenderPNG renders the content as a PNG image
func RenderPNG(content string, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	modules, err := bitmap(content)
	if err != nil {
		return nil, err
	}

	dark, err := parseHexColor(opts.Dark)
	if err != nil {
		return nil, err
	}
	light, err := parseHexColor(opts.Light)
	if err != nil {
		return nil, err
	}

	total := len(modules) + 2*QuietZoneModules
	scale := opts.Size / total
	if scale < 1 {
		scale = 1
	}
	dim := total * scale

	img := image.NewRGBA(image.Rect(0, 0, dim, dim))
	draw.Draw(img, img.Bounds(), image.NewUniform(light), image.Point{}, draw.Src)

	for y, row := range modules {
		for x, set := range row {
			if !set {
				continue
			}
			px := (x + QuietZoneModules) * scale
			py := (y + QuietZoneModules) * scale
			rect := image.Rect(px, py, px+scale, py+scale)
			draw.Draw(img, rect, image.NewUniform(dark), image.Point{}, draw.Src)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode qr png: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderDataURL renders the content as a base64 PNG data URL, the format
// embedded in bulk export payloads
func RenderDataURL(content string, opts Options) (string, error) {
	data, err := RenderPNG(content, opts)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// RenderSVG renders the content as an SVG document
func RenderSVG(content string, opts Options) (string, error) {
	opts = opts.withDefaults()

	modules, err := bitmap(content)
	if err != nil {
		return "", err
	}

	total := len(modules) + 2*QuietZoneModules

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		opts.Size, opts.Size, total, total,
	)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="%s"/>`, total, total, opts.Light)

	for y, row := range modules {
		for x, set := range row {
			if !set {
				continue
			}
			fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`,
				x+QuietZoneModules, y+QuietZoneModules, opts.Dark)
		}
	}

	sb.WriteString("</svg>")
	return sb.String(), nil
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
