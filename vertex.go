package pica

// Vec4 holds one 4-component vertex attribute value. Attribute slots
// that carry fewer components (position, texcoord, normal) leave the
// trailing components zero.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}
