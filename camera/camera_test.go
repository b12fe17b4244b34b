package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 24)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 24 {
		t.Errorf("expected zoom 24, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 24)

	// Camera center maps to screen center
	sx, sy := cam.WorldToScreen(0, 0)
	if sx != 640 || sy != 360 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}

	// One world unit right moves Zoom pixels right
	sx, _ = cam.WorldToScreen(1, 0)
	if sx != 640+24 {
		t.Errorf("expected x = 664, got %f", sx)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 24)
	cam.X = 5.5
	cam.Y = -3.25

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPan(t *testing.T) {
	cam := New(1280, 720, 24)

	// Panning by one zoom's worth of pixels moves one world unit
	cam.Pan(24, -48)
	if math.Abs(float64(cam.X-1)) > 1e-5 || math.Abs(float64(cam.Y+2)) > 1e-5 {
		t.Errorf("expected camera at (1, -2), got (%f, %f)", cam.X, cam.Y)
	}
}

func TestAdjustZoomAnchorsCursor(t *testing.T) {
	cam := New(1280, 720, 24)
	cam.X = 2
	cam.Y = 3

	// The world point under the cursor must stay put across a zoom.
	const sx, sy = 900, 200
	wxBefore, wyBefore := cam.ScreenToWorld(sx, sy)

	cam.AdjustZoom(1.5, sx, sy)

	wxAfter, wyAfter := cam.ScreenToWorld(sx, sy)
	if math.Abs(float64(wxAfter-wxBefore)) > 1e-3 || math.Abs(float64(wyAfter-wyBefore)) > 1e-3 {
		t.Errorf("anchor drifted: (%f,%f) -> (%f,%f)", wxBefore, wyBefore, wxAfter, wyAfter)
	}
}

func TestAdjustZoomClamps(t *testing.T) {
	cam := New(1280, 720, 24)

	for i := 0; i < 100; i++ {
		cam.AdjustZoom(2.0, 640, 360)
	}
	if cam.Zoom > cam.MaxZoom {
		t.Errorf("zoom %f exceeds max %f", cam.Zoom, cam.MaxZoom)
	}

	for i := 0; i < 100; i++ {
		cam.AdjustZoom(0.5, 640, 360)
	}
	if cam.Zoom < cam.MinZoom {
		t.Errorf("zoom %f below min %f", cam.Zoom, cam.MinZoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 24)

	if !cam.IsVisible(0, 0, 1) {
		t.Error("origin should be visible with camera at origin")
	}
	// 1280/2/24 ≈ 26.7 world units of half-width
	if cam.IsVisible(100, 0, 1) {
		t.Error("point far outside the viewport reported visible")
	}
	// A big radius can reach the viewport from outside it
	if !cam.IsVisible(30, 0, 10) {
		t.Error("large circle overlapping the viewport reported invisible")
	}
}
