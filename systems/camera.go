package systems

import (
	"math"

	"github.com/automoto/tileleap/components"
	"github.com/automoto/tileleap/config"
	"github.com/automoto/tileleap/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Rect()
	targetX, targetY := clampToView(camera, target.CenterX(), target.CenterY())

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera centres the camera on the player without smoothing. Used when
// a level is (re)built.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Rect()
	camera.Position.X, camera.Position.Y = clampToView(camera, target.CenterX(), target.CenterY())
}

// clampToView keeps the zoomed view inside the camera bounds. When the
// bounds are smaller than the view the camera centres on them.
func clampToView(camera *components.CameraData, x, y float64) (float64, float64) {
	zoom := cameraZoom(camera)
	halfW := float64(config.C.Width) / (2 * zoom)
	halfH := float64(config.C.Height) / (2 * zoom)
	b := camera.Bounds
	if b.W <= 0 || b.H <= 0 {
		return x, y
	}
	return clampAxis(x, b.X+halfW, b.Right()-halfW), clampAxis(y, b.Y+halfH, b.Bottom()-halfH)
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}

func cameraZoom(camera *components.CameraData) float64 {
	if camera.Zoom <= 0 {
		return 1
	}
	return camera.Zoom
}

// view maps level coordinates to screen coordinates for one frame.
type view struct {
	camX, camY float64
	zoom       float64
	halfW      float64
	halfH      float64
}

func newView(camera *components.CameraData, screenW, screenH int) view {
	return view{
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		zoom:  cameraZoom(camera),
		halfW: float64(screenW) / 2,
		halfH: float64(screenH) / 2,
	}
}

// currentView returns the view of the singleton camera, if there is one.
func currentView(e *ecs.ECS, screenW, screenH int) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	return newView(components.Camera.Get(cameraEntry), screenW, screenH), true
}

func (v view) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.zoom + v.halfW), float32((y-v.camY)*v.zoom + v.halfH)
}

func (v view) scale(l float64) float32 {
	return float32(l * v.zoom)
}

// visible reports whether a level-space rect is on screen.
func (v view) visible(x, y, w, h float64) bool {
	viewW := v.halfW / v.zoom
	viewH := v.halfH / v.zoom
	return x+w >= v.camX-viewW && x <= v.camX+viewW && y+h >= v.camY-viewH && y <= v.camY+viewH
}
