// FilePath: cmd/hub/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/binsight/hub/internal/config"
	"github.com/binsight/hub/internal/server"
	tm "github.com/buger/goterm"
	nuts "github.com/vaudience/go-nuts"
)

// @title Binsight Hub API
// @version 1.0
// @description Simulated smart-bin sensor readings.
// @BasePath /v1
func main() {
	ClearConsole()
	DrawLogo()
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting Binsight Hub v%s", nuts.GetVersion())

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		nuts.L.Errorf("[Main] Failed to initialize server: %v", err)
		os.Exit(1)
	}
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"    ____  _           _       __    __ ",
		"   / __ )(_)___  ___ (_)___ _/ /_  / /_",
		"  / __  / / __ \\/ __/ / __ `/ __ \\/ __/",
		" / /_/ / / / / (__  ) / /_/ / / / / /_ ",
		"/_____/_/_/ /_/____/_/\\__, /_/ /_/\\__/ ",
		"                     /____/  hub  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
