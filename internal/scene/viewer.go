package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	gridSlices  = 20
	gridSpacing = 1.0
)

type ViewerConfig struct {
	Width      int32
	Height     int32
	Title      string
	ShowGrid   bool
	Background [3]uint8
}

func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		Width:      1024,
		Height:     768,
		Title:      "mvogen",
		ShowGrid:   true,
		Background: [3]uint8{24, 24, 28},
	}
}

// Show opens a window, draws the solids around an orbital camera, and blocks
// until the window is closed. This is the interactive display loop; nothing
// here feeds back into the builders.
func Show(solids []Solid, cfg ViewerConfig) {
	rl.InitWindow(cfg.Width, cfg.Height, cfg.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Position:   rl.NewVector3(10, 10, 10),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
	background := rl.NewColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 255)

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)
		rl.BeginDrawing()
		rl.ClearBackground(background)
		rl.BeginMode3D(camera)
		if cfg.ShowGrid {
			rl.DrawGrid(gridSlices, gridSpacing)
		}
		for _, solid := range solids {
			drawSolid(solid)
		}
		rl.EndMode3D()
		rl.EndDrawing()
	}
}

func drawSolid(s Solid) {
	pos := rl.NewVector3(float32(s.Position[0]), float32(s.Position[1]), float32(s.Position[2]))
	col := rl.NewColor(s.Color.R, s.Color.G, s.Color.B, 255)
	size := float32(s.Size)
	switch s.Kind {
	case KindSphere:
		rl.DrawSphere(pos, size, col)
	case KindCube:
		rl.DrawCube(pos, size, size, size, col)
	}
}
