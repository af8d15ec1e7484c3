package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	clipdeckApp "clipdeck/internal/app"
	"clipdeck/internal/config"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// `clipdeck mcp` runs headless as an MCP stdio server.
	if len(os.Args) > 1 && os.Args[1] == "mcp" {
		clipdeckApp.ServeMCP()
		return
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		cfg = config.Default()
	}

	app := clipdeckApp.New()

	err = wails.Run(&options.App{
		Title:     "Clipdeck",
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		MinWidth:  800,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 18, G: 18, B: 24, A: 1},
		OnStartup:        app.Startup,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
