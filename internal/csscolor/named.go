package csscolor

import "golang.org/x/image/colornames"

// lookupNamed resolves a lower-cased CSS color keyword. colornames covers the
// SVG 1.1 set; CSS adds transparent and rebeccapurple on top.
func lookupNamed(name string) (RGBA, bool) {
	switch name {
	case "transparent":
		return RGBA{}, true
	case "rebeccapurple":
		return fromBytes(0x66, 0x33, 0x99, 1), true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return RGBA{}, false
	}
	return fromBytes(c.R, c.G, c.B, 1), true
}
