// Package main provides the entry point for the Circuit Viewer application.
package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"circuit-viewer/internal/app"
	"circuit-viewer/internal/version"
	"circuit-viewer/ui/mainwindow"
	"circuit-viewer/ui/prefs"

	"fyne.io/fyne/v2"
)

const appTitle = "Circuit Viewer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.New()

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)
	win.SetTitle(appTitle)
	win.Resize(fyne.NewSize(1200, 800))

	// Handle command line arguments
	if len(os.Args) > 1 {
		graphPath := os.Args[1]
		if err := appState.LoadGraph(graphPath); err != nil {
			log.Printf("Failed to load circuit %s: %v", graphPath, err)
		}
	} else {
		win.RestoreLastGraph()
	}

	win.ShowAndRun()
}
