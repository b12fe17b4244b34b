// Package camera provides a 2D camera for viewport control.
package camera

// Camera controls the viewport into the simulation plane. The particle
// world is unbounded, so there is no wrapping; the camera just pans and
// zooms around a center point.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom in pixels per world unit
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the origin.
func New(viewportW, viewportH, zoom float32) *Camera {
	return &Camera{
		X:         0,
		Y:         0,
		Zoom:      zoom,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   zoom / 16,
		MaxZoom:   zoom * 16,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 + (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y + (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius could
// be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Pan moves the camera center by a screen-space delta.
func (c *Camera) Pan(dxScreen, dyScreen float32) {
	c.X += dxScreen / c.Zoom
	c.Y += dyScreen / c.Zoom
}

// AdjustZoom multiplies the zoom level, clamped to the camera's limits,
// keeping the world point under the given screen position fixed.
func (c *Camera) AdjustZoom(factor, sx, sy float32) {
	wx, wy := c.ScreenToWorld(sx, sy)

	z := c.Zoom * factor
	if z < c.MinZoom {
		z = c.MinZoom
	}
	if z > c.MaxZoom {
		z = c.MaxZoom
	}
	c.Zoom = z

	// Re-anchor so (wx, wy) stays under (sx, sy).
	c.X = wx - (sx-c.ViewportW/2)/c.Zoom
	c.Y = wy - (sy-c.ViewportH/2)/c.Zoom
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
