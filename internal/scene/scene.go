// Package scene is the terminal render surface for the dodge game.
// It keeps a set of 3D entities, commits them to frames on Render and
// rasterizes the last committed frame into a core.Screen.
package scene

import (
	"math"
	"sort"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

type entity struct {
	handle core.Handle
	shape  core.Shape
	mat    core.Material
	pos    core.Vec3
}

// Scene owns the entities and the camera. It is not safe for concurrent use;
// the platform drives it from a single goroutine.
type Scene struct {
	camera     Camera
	width      int
	height     int
	entities   map[core.Handle]*entity
	nextHandle core.Handle
	frame      []entity // Last committed frame, painter's order
	frames     uint64
}

// New creates an empty scene viewed through cam on a width x height surface.
func New(cam Camera, width, height int) *Scene {
	s := &Scene{
		camera:   cam,
		entities: make(map[core.Handle]*entity),
	}
	s.Resize(AspectFor(width, height), width, height)
	return s
}

// CreateEntity registers a new entity and returns its handle.
func (s *Scene) CreateEntity(shape core.Shape, mat core.Material, pos core.Vec3) core.Handle {
	s.nextHandle++
	h := s.nextHandle
	s.entities[h] = &entity{handle: h, shape: shape, mat: mat, pos: pos}
	return h
}

// MoveEntity updates an entity position. Unknown handles are ignored.
func (s *Scene) MoveEntity(h core.Handle, pos core.Vec3) {
	if e, ok := s.entities[h]; ok {
		e.pos = pos
	}
}

// RemoveEntity unregisters an entity. Unknown handles are ignored.
func (s *Scene) RemoveEntity(h core.Handle) {
	delete(s.entities, h)
}

// Len returns the number of registered entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Position returns the current position of an entity.
func (s *Scene) Position(h core.Handle) (core.Vec3, bool) {
	e, ok := s.entities[h]
	if !ok {
		return core.Vec3{}, false
	}
	return e.pos, true
}

// Render commits the current entity set as the frame Draw will show.
func (s *Scene) Render() {
	s.frame = s.frame[:0]
	for _, e := range s.entities {
		s.frame = append(s.frame, *e)
	}

	// Planes first, then boxes far to near. Handles break ties so frames are stable.
	sort.Slice(s.frame, func(i, j int) bool {
		a, b := s.frame[i], s.frame[j]
		if a.shape.Kind != b.shape.Kind {
			return a.shape.Kind == core.ShapePlane
		}
		da, db := s.camera.Depth(a.pos), s.camera.Depth(b.pos)
		if da != db {
			return da > db
		}
		return a.handle < b.handle
	})
	s.frames++
}

// Frames returns how many frames have been committed.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Resize updates the camera aspect ratio and the surface size.
func (s *Scene) Resize(aspect float64, width, height int) {
	s.camera.Aspect = aspect
	s.width = width
	s.height = height
}

// Size returns the surface size set by the last Resize.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// Camera returns the current camera.
func (s *Scene) Camera() Camera {
	return s.camera
}

// Draw rasterizes the last committed frame into dst.
func (s *Scene) Draw(dst *core.Screen) {
	dst.Clear()
	for _, e := range s.frame {
		switch e.shape.Kind {
		case core.ShapePlane:
			s.drawPlane(dst, e)
		case core.ShapeBox:
			s.drawBox(dst, e)
		}
	}
}

// drawPlane paints every cell whose view ray meets the plane within its extent.
func (s *Scene) drawPlane(dst *core.Screen, e entity) {
	w, h := dst.Width(), dst.Height()
	halfW, halfD := e.shape.Size.X/2, e.shape.Size.Z/2
	cell := core.Cell{Rune: e.mat.Glyph, Color: e.mat.Color}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			p, ok := s.camera.Unproject(col, row, w, h, e.pos.Y)
			if !ok {
				continue
			}
			if math.Abs(p.X-e.pos.X) <= halfW && math.Abs(p.Z-e.pos.Z) <= halfD {
				dst.SetCell(col, row, cell)
			}
		}
	}
}

// drawBox paints the screen-space footprint of a box, at least one cell.
func (s *Scene) drawBox(dst *core.Screen, e entity) {
	w, h := dst.Width(), dst.Height()
	cx, cy, ok := s.camera.Project(e.pos, w, h)
	if !ok {
		return
	}
	kx, ky := s.camera.ScaleAt(s.camera.Depth(e.pos), w, h)
	halfW := e.shape.Size.X / 2 * kx
	halfH := e.shape.Size.Y / 2 * ky

	x0 := int(math.Floor(cx - halfW))
	x1 := int(math.Ceil(cx + halfW))
	y0 := int(math.Floor(cy - halfH))
	y1 := int(math.Ceil(cy + halfH))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	dst.FillRect(core.NewRect(x0, y0, x1-x0, y1-y0), core.Cell{Rune: e.mat.Glyph, Color: e.mat.Color})
}
