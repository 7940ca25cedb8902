// Package widgets provides ready-made diagnostic panels. Every panel draws
// through a gui.ImGui, so it runs against the native library in an
// application and against a recorder in tests.
package widgets

import (
	"math"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/imdi/gui"
)

// FrameStats keeps a ring of recent frame times and plots them.
type FrameStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	filled        int
}

// NewFrameStats returns stats keeping historyFrames samples.
func NewFrameStats(historyFrames int) *FrameStats {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &FrameStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record stores one frame time in seconds.
func (fs *FrameStats) Record(deltaTime float32) {
	fs.frameHistory[fs.frameIndex] = deltaTime * 1000.0
	fs.frameIndex = (fs.frameIndex + 1) % fs.historyFrames
	if fs.filled < fs.historyFrames {
		fs.filled++
	}
}

// Average returns the mean frame time in milliseconds over the recorded
// samples, or 0 before the first one.
func (fs *FrameStats) Average() float32 {
	if fs.filled == 0 {
		return 0
	}
	var sum float32
	for _, ft := range fs.frameHistory {
		sum += ft
	}
	return sum / float32(fs.filled)
}

// Samples returns the recorded frame times in milliseconds, oldest first.
func (fs *FrameStats) Samples() []float32 {
	out := make([]float32, 0, fs.filled)
	start := fs.frameIndex - fs.filled
	if start < 0 {
		start += fs.historyFrames
	}
	for i := 0; i < fs.filled; i++ {
		out = append(out, fs.frameHistory[(start+i)%fs.historyFrames])
	}
	return out
}

// Render records deltaTime and draws the "Performance Stats" window. The
// graph starts at the oldest sample.
func (fs *FrameStats) Render(ui gui.ImGui, deltaTime float32) {
	fs.Record(deltaTime)

	gui.WindowV(ui, "Performance Stats", nil, imgui.WindowFlagsNone, func() {
		avg := fs.Average()
		fps := float32(0)
		if avg > 0 {
			fps = 1000.0 / avg
		}
		gui.Textf(ui, "Avg Frame Time: %.2f ms (%.0f FPS)", avg, fps)
		gui.Textf(ui, "ImGui Framerate: %.1f", ui.Framerate())

		ui.Separator()
		ui.Text("Frame Time Graph (ms)")
		ui.PlotLinesFloatPtrV("##frametime", &fs.frameHistory[0], int32(len(fs.frameHistory)), int32(fs.frameIndex),
			"", math.MaxFloat32, math.MaxFloat32, imgui.NewVec2(0, 80), 4)
	})
}

// FrameTimer measures wall time between calls.
type FrameTimer struct {
	lastFrameTime time.Time
	now           func() time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{lastFrameTime: time.Now(), now: time.Now}
}

// DeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) DeltaTime() float32 {
	now := ft.now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
