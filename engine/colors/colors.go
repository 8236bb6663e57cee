package colors

type Color [4]float32

// Teal is the default clear color.
var Teal = Color{0.2, 0.3, 0.3, 1}

// RGBA splits the color into its channels.
func (c Color) RGBA() (r, g, b, a float32) { return c[0], c[1], c[2], c[3] }
