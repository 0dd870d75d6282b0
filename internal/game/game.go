package game

import (
	"image/color"

	"chosenoffset.com/digitalrain/internal/log"
	"chosenoffset.com/digitalrain/internal/rain"
	"chosenoffset.com/digitalrain/internal/render"
)

// reportEveryMs is how often the frame rate is logged at debug level.
const reportEveryMs = 5000

// Game drives a rain scene from the engine's loop. The scene advances once
// per Update tick into an offscreen frame; Draw only presents that frame, so
// the animation speed does not depend on the display refresh rate.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Background   color.Color
	Scene        *rain.Scene
	Surface      *render.Surface
	Clock        rain.Clock
	InputMgr     render.InputManager
	Log          *log.Logger

	frame        render.Image
	frames       int
	reportFrames int
	reportStart  int64
}

// NewGame creates a game around an already built scene. The surface is
// pointed at frame, which must be width x height.
func NewGame(scene *rain.Scene, surface *render.Surface, frame render.Image, clock rain.Clock, input render.InputManager, logger *log.Logger, width, height int) *Game {
	surface.SetTarget(frame)
	return &Game{
		ScreenWidth:  width,
		ScreenHeight: height,
		Background:   color.Black,
		Scene:        scene,
		Surface:      surface,
		Clock:        clock,
		InputMgr:     input,
		Log:          logger,
		frame:        frame,
		reportStart:  clock.NowMs(),
	}
}

// Update watches for the quit keys, then clears the frame and advances every
// column once.
func (g *Game) Update() error {
	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) || g.InputMgr.IsKeyJustPressed(render.KeyQ) {
		g.Log.Infof("Quit requested after %d frames", g.frames)
		return render.ErrTerminated
	}

	g.frame.Fill(g.Background)
	now := g.Clock.NowMs()
	g.Scene.Advance(now)
	g.frames++
	g.reportFrames++
	g.report(now)
	return nil
}

// Draw copies the latest frame to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.DrawImage(g.frame, nil)
}

// Layout keeps the logical screen at the size the scene was built for.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Frames returns the number of animation frames advanced so far.
func (g *Game) Frames() int {
	return g.frames
}

func (g *Game) report(now int64) {
	elapsed := now - g.reportStart
	if elapsed < reportEveryMs {
		return
	}
	if g.Log.Enabled(log.LevelDebug) {
		g.Log.Debugf("%d frames advanced, %.1f fps", g.frames, float64(g.reportFrames)*1000/float64(elapsed))
	}
	g.reportFrames = 0
	g.reportStart = now
}
