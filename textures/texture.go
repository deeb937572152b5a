package textures

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/mandykoh/prism"
	"github.com/polygonengine/polygon/engine"
	"github.com/polygonengine/polygon/logging"
)

// TextureId identifies a texture registered with a renderer. Zero is
// reserved for "no texture" and is what texture-typed material properties
// default to.
type TextureId uint32

// Texture2d wraps one device texture object.
type Texture2d struct {
	Handle uint32
	Width  int32
	Height int32

	ctx *engine.Context
}

// New uploads the image as a 2D texture. Input pixels are treated as
// sRGB-encoded; prism normalizes arbitrary decoded image types into a
// tightly packed RGBA form before upload and the SRGB8_ALPHA8 internal
// format leaves linearization to the sampler.
func New(ctx *engine.Context, img image.Image) Texture2d {

	rgba := prism.ConvertImageToRGBA(img, runtime.NumCPU())

	bounds := rgba.Bounds()
	width := int32(bounds.Dx())
	height := int32(bounds.Dy())

	release := ctx.Acquire()
	defer release()

	var handle uint32
	gl.GenTextures(1, &handle)
	if handle == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL texture")
	}

	gl.BindTexture(gl.TEXTURE_2D, handle)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8_ALPHA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&rgba.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return Texture2d{
		Handle: handle,
		Width:  width,
		Height: height,
		ctx:    ctx,
	}
}

// Empty creates the 1x1 opaque white texture used as the shared fallback
// when a material references a texture that was never registered.
func Empty(ctx *engine.Context) Texture2d {

	release := ctx.Acquire()
	defer release()

	var handle uint32
	gl.GenTextures(1, &handle)
	if handle == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL texture")
	}

	white := [4]uint8{255, 255, 255, 255}

	gl.BindTexture(gl.TEXTURE_2D, handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&white[0]))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return Texture2d{
		Handle: handle,
		Width:  1,
		Height: 1,
		ctx:    ctx,
	}
}

// LoadFile decodes a PNG or JPEG file and uploads it.
func LoadFile(ctx *engine.Context, path string) (Texture2d, error) {

	f, err := os.Open(path)
	if err != nil {
		return Texture2d{}, fmt.Errorf("failed to open texture file '%s': %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Texture2d{}, fmt.Errorf("failed to decode texture file '%s': %w", path, err)
	}

	return New(ctx, img), nil
}

// Delete releases the device texture. The owning context must still be
// live.
func (t *Texture2d) Delete() {
	release := t.ctx.Acquire()
	defer release()

	gl.DeleteTextures(1, &t.Handle)
	t.Handle = 0
}
