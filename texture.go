package pica

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pica/driver"
	"github.com/gogpu/pica/internal/swizzle"
)

// ErrUnsupportedFormat is reported (via the logger) when a pixel format
// has no native texel format; LoadTexture then returns 0.
var ErrUnsupportedFormat = errors.New("pica: unsupported pixel format")

// PixelFormat enumerates the linear pixel layouts LoadTexture accepts.
// Formats outside this set (DXT, ETC2, PVRT, ASTC, float channels) are
// rejected, never silently coerced.
type PixelFormat uint8

const (
	// PixelFormatGrayscale is 8-bit luminance.
	PixelFormatGrayscale PixelFormat = iota + 1

	// PixelFormatGrayAlpha is 8-bit luminance plus 8-bit alpha.
	PixelFormatGrayAlpha

	// PixelFormatR5G6B5 is 16-bit packed RGB.
	PixelFormatR5G6B5

	// PixelFormatR8G8B8 is 24-bit RGB.
	PixelFormatR8G8B8

	// PixelFormatR5G5B5A1 is 16-bit packed RGBA with 1-bit alpha.
	PixelFormatR5G5B5A1

	// PixelFormatR4G4B4A4 is 16-bit packed RGBA.
	PixelFormatR4G4B4A4

	// PixelFormatR8G8B8A8 is 32-bit RGBA.
	PixelFormatR8G8B8A8

	// PixelFormatETC1 is the one supported compressed family.
	PixelFormatETC1
)

// texelFormat resolves a pixel format to the native texel format.
func texelFormat(f PixelFormat) (driver.TexelFormat, error) {
	switch f {
	case PixelFormatGrayscale:
		return driver.TexelL8, nil
	case PixelFormatGrayAlpha:
		return driver.TexelLA8, nil
	case PixelFormatR5G6B5:
		return driver.TexelRGB565, nil
	case PixelFormatR8G8B8:
		return driver.TexelRGB8, nil
	case PixelFormatR5G5B5A1:
		return driver.TexelRGBA5551, nil
	case PixelFormatR4G4B4A4:
		return driver.TexelRGBA4, nil
	case PixelFormatR8G8B8A8:
		return driver.TexelRGBA8, nil
	case PixelFormatETC1:
		return driver.TexelETC1, nil
	}
	return 0, ErrUnsupportedFormat
}

// LoadTexture encodes the linear pixel buffer into the tiled layout the
// texture unit requires, creates a native texture and uploads it.
// Width and height must each be a power of two in [8, 1024].
//
// On success it returns a texture id >= 1. On any validation failure it
// logs a warning and returns 0 without allocating a native resource;
// callers must check the return value.
func (r *Renderer) LoadTexture(pixels []byte, width, height int, format PixelFormat) TextureID {
	texel, err := texelFormat(format)
	if err != nil {
		Logger().Warn("texture load rejected", "format", format, "err", err)
		return 0
	}
	if !swizzle.ValidSize(width) || !swizzle.ValidSize(height) {
		Logger().Warn("texture load rejected", "width", width, "height", height,
			"err", swizzle.ErrDimension)
		return 0
	}

	tiled, err := swizzle.Encode(pixels, width, height, texel.BitsPerTexel())
	if err != nil {
		Logger().Warn("texture encode failed", "err", err)
		return 0
	}

	handle, err := r.dev.CreateTexture(width, height, texel)
	if err != nil {
		Logger().Warn("texture create failed", "err", err)
		return 0
	}
	if err := r.dev.UploadTexture(handle, tiled); err != nil {
		r.dev.DeleteTexture(handle)
		Logger().Warn("texture upload failed", "err", err)
		return 0
	}

	id := r.textures.allocate(handle)
	Logger().Info("texture loaded", "id", id, "width", width, "height", height)
	return id
}

// LoadTextureImage converts img to tightly packed RGBA8 and loads it.
// The image bounds must satisfy the same power-of-two constraint as
// LoadTexture.
func (r *Renderer) LoadTextureImage(img image.Image) TextureID {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return r.LoadTexture(dst.Pix, b.Dx(), b.Dy(), PixelFormatR8G8B8A8)
}

// UnloadTexture releases the native resource behind id and frees the id
// for reuse. Unknown ids warn and no-op. Textures are never collected
// implicitly; an un-unloaded texture leaks its native resource.
func (r *Renderer) UnloadTexture(id TextureID) {
	handle, ok := r.textures.lookup(id)
	if !ok {
		Logger().Warn("unload of unknown texture", "id", id)
		return
	}
	r.dev.DeleteTexture(handle)
	r.textures.remove(id)
}

// SetTexture selects the texture sampled by subsequent draws.
// Passing 0 disables texturing; fragments then take the vertex color
// only. Unknown ids warn and no-op.
func (r *Renderer) SetTexture(id TextureID) {
	if id == 0 {
		r.dev.UnbindTexture()
		return
	}
	handle, ok := r.textures.lookup(id)
	if !ok {
		Logger().Warn("bind of unknown texture", "id", id)
		return
	}
	r.dev.BindTexture(handle)
}

// DefaultTexture returns the built-in 8x8 white texture loaded at
// renderer start, or 0 if the renderer was created with
// WithoutDefaultTexture.
func (r *Renderer) DefaultTexture() TextureID { return r.defaultTexture }
