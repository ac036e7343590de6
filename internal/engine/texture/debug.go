// Package texture provides the procedural debug texture used on meshes.
package texture

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// debugSize is the side length of the generated debug texture in pixels.
const debugSize = 8

// debugPalette is the 8-color RGBA strip of the UV test pattern. Each
// row of the texture is the palette rotated right by one color, which
// makes face orientation and UV winding visible at a glance.
var debugPalette = [debugSize * 4]uint8{
	255, 102, 159, 255,
	255, 159, 102, 255,
	236, 255, 102, 255,
	121, 255, 102, 255,
	102, 255, 198, 255,
	102, 198, 255, 255,
	121, 102, 255, 255,
	255, 236, 102, 255,
}

// UVDebugPixels generates the RGBA pixel data of the UV test pattern.
func UVDebugPixels() []uint8 {
	palette := debugPalette
	pixels := make([]uint8, debugSize*debugSize*4)

	for y := 0; y < debugSize; y++ {
		copy(pixels[y*debugSize*4:], palette[:])
		rotateRight(&palette)
	}

	return pixels
}

// rotateRight shifts the palette by one color (4 bytes), wrapping around.
func rotateRight(p *[debugSize * 4]uint8) {
	var last [4]uint8
	copy(last[:], p[len(p)-4:])
	copy(p[4:], p[:len(p)-4])
	copy(p[:4], last[:])
}

// UploadUVDebug creates a GL texture with the UV test pattern.
// Nearest filtering keeps the 8x8 pattern crisp at any scale.
// Must be called with a current OpenGL context.
func UploadUVDebug() uint32 {
	pixels := UVDebugPixels()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, debugSize, debugSize, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
