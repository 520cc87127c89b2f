package terminal

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// NewRGB builds a color from its channels
func NewRGB(r, g, b uint8) RGB {
	return RGB{r, g, b}
}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}
