package core

// Handle identifies an entity registered with a render surface.
// The zero Handle is never issued.
type Handle uint64

// ShapeKind selects the geometry of a rendered entity.
type ShapeKind int

const (
	ShapeBox   ShapeKind = iota // Axis-aligned box centred on the entity position
	ShapePlane                  // Horizontal plane at the entity's Y, centred on its X/Z
)

// Shape is the geometry of an entity. Size is the full extent along each axis.
type Shape struct {
	Kind ShapeKind
	Size Vec3
}

// Box returns a box shape of the given extents.
func Box(w, h, d float64) Shape {
	return Shape{Kind: ShapeBox, Size: V3(w, h, d)}
}

// Plane returns a horizontal plane of the given width (X) and depth (Z).
func Plane(w, d float64) Shape {
	return Shape{Kind: ShapePlane, Size: V3(w, 0, d)}
}

// Material describes how an entity is painted.
type Material struct {
	Color Color
	Glyph rune
}
