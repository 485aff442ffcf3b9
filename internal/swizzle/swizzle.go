// Package swizzle converts linear pixel buffers into the tiled texel
// layout the texture unit requires, and back.
//
// The hardware reads textures as 8x8-pixel tiles laid out in row-major
// tile order. Inside each tile, texels follow a fixed 64-entry Z-order
// (Morton) permutation rather than row-major order. Two further quirks
// apply relative to the linear source: the image is flipped vertically,
// and the bytes of each multi-byte texel are stored in reversed order.
//
// Encode and Decode are pure functions over byte slices; they perform no
// allocation beyond the output buffer and touch no device state.
package swizzle

import "errors"

// Codec errors.
var (
	// ErrDimension is returned when a width or height is not a power of
	// two in [MinSize, MaxSize].
	ErrDimension = errors.New("swizzle: dimension must be a power of two in [8, 1024]")

	// ErrBitsPerPixel is returned for a bit depth the codec does not
	// handle.
	ErrBitsPerPixel = errors.New("swizzle: unsupported bits per pixel")

	// ErrBufferSize is returned when the input buffer does not match
	// width*height at the given bit depth.
	ErrBufferSize = errors.New("swizzle: buffer size does not match dimensions")
)

// Texture dimension limits accepted by the texture unit.
const (
	MinSize = 8
	MaxSize = 1024
)

// tileOrder maps a row-major index within an 8x8 tile to the texel's
// Z-order position inside the tile. Consecutive even/odd entries are
// adjacent, which lets the codec move texel pairs (needed for 4 bpp
// formats, where two texels share a byte).
var tileOrder = [64]int{
	0, 1, 4, 5, 16, 17, 20, 21,
	2, 3, 6, 7, 18, 19, 22, 23,
	8, 9, 12, 13, 24, 25, 28, 29,
	10, 11, 14, 15, 26, 27, 30, 31,
	32, 33, 36, 37, 48, 49, 52, 53,
	34, 35, 38, 39, 50, 51, 54, 55,
	40, 41, 44, 45, 56, 57, 60, 61,
	42, 43, 46, 47, 58, 59, 62, 63,
}

// ValidSize reports whether n is a power of two within the dimension
// limits of the texture unit.
func ValidSize(n int) bool {
	if n < MinSize || n > MaxSize {
		return false
	}
	return n&(n-1) == 0
}

func validBPP(bpp int) bool {
	switch bpp {
	case 4, 8, 16, 24, 32:
		return true
	}
	return false
}

func check(buf []byte, width, height, bpp int) error {
	if !ValidSize(width) || !ValidSize(height) {
		return ErrDimension
	}
	if !validBPP(bpp) {
		return ErrBitsPerPixel
	}
	if len(buf) != width*height*bpp/8 {
		return ErrBufferSize
	}
	return nil
}

// Encode converts a linear, top-to-bottom pixel buffer into the tiled
// layout: 8x8 tiles in row-major tile order, Z-ordered texels within
// each tile, vertical flip, and per-texel byte reversal. The output
// length equals the input length (width*height*bpp/8 bytes).
func Encode(pixels []byte, width, height, bpp int) ([]byte, error) {
	if err := check(pixels, width, height, bpp); err != nil {
		return nil, err
	}
	out := make([]byte, len(pixels))
	pixBytes := bpp / 8 // 0 for 4 bpp

	for tx := 0; tx < width/8; tx++ {
		px := tx * 8
		for ty := 0; ty < height/8; ty++ {
			py := ty * 8
			tile := tx + ty*width/8
			// Two texels per step: pair indices in tileOrder are adjacent.
			for i := 0; i < 64; i += 2 {
				pixel := px + i%8 + (height-(py+i/8)-1)*width
				src := pixel * bpp / 8
				dst := tile*64*bpp/8 + tileOrder[i]*bpp/8
				if pixBytes == 0 {
					// Sub-byte texels: the pair shares one byte, no
					// per-texel byte order to reverse.
					out[dst] = pixels[src]
					continue
				}
				for j := 0; j < 2; j++ {
					for k := 0; k < pixBytes; k++ {
						out[dst+pixBytes*j+pixBytes-k-1] = pixels[src+pixBytes*j+k]
					}
				}
			}
		}
	}
	return out, nil
}

// Decode is the exact inverse of Encode: it reconstructs the linear,
// top-to-bottom pixel buffer from a tiled one, undoing the tile
// permutation, the vertical flip and the byte reversal.
func Decode(tiled []byte, width, height, bpp int) ([]byte, error) {
	if err := check(tiled, width, height, bpp); err != nil {
		return nil, err
	}
	out := make([]byte, len(tiled))
	pixBytes := bpp / 8

	for tx := 0; tx < width/8; tx++ {
		px := tx * 8
		for ty := 0; ty < height/8; ty++ {
			py := ty * 8
			tile := tx + ty*width/8
			for i := 0; i < 64; i += 2 {
				pixel := px + i%8 + (height-(py+i/8)-1)*width
				lin := pixel * bpp / 8
				til := tile*64*bpp/8 + tileOrder[i]*bpp/8
				if pixBytes == 0 {
					out[lin] = tiled[til]
					continue
				}
				for j := 0; j < 2; j++ {
					for k := 0; k < pixBytes; k++ {
						out[lin+pixBytes*j+k] = tiled[til+pixBytes*j+pixBytes-k-1]
					}
				}
			}
		}
	}
	return out, nil
}
