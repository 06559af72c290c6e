package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const smallLevel = `name: Small
layout: |
  ###########
  #*........#
  #....=....#
  #...rpco..#
  #P........#
  ###########
`

// setPlayFlags overrides the command flags for one test.
func setPlayFlags(t *testing.T, levelsDir, logFile, spectate string, watch bool) {
	t.Helper()
	saved := struct {
		levels, logFile, logLevel, spectate string
		watch                               bool
	}{flagLevels, flagLogFile, flagLogLevel, flagSpectate, flagWatch}
	t.Cleanup(func() {
		flagLevels = saved.levels
		flagLogFile = saved.logFile
		flagLogLevel = saved.logLevel
		flagSpectate = saved.spectate
		flagWatch = saved.watch
	})

	flagLevels = levelsDir
	flagLogFile = logFile
	flagLogLevel = "debug"
	flagSpectate = spectate
	flagWatch = watch
}

func TestPlayWatchNeedsLevels(t *testing.T) {
	setPlayFlags(t, "", "", "", true)

	err := play(context.Background())
	if err == nil || !strings.Contains(err.Error(), "--watch needs --levels") {
		t.Errorf("play() error = %v, expected --watch needs --levels", err)
	}
}

func TestPlayReleasesWatcherOnError(t *testing.T) {
	dir := t.TempDir()
	levelsDir := filepath.Join(dir, "levels")
	if err := os.Mkdir(levelsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(levelsDir, "01_small.yaml"), []byte(smallLevel), 0o644); err != nil {
		t.Fatal(err)
	}
	logFile := filepath.Join(dir, "pacman.log")

	// An invalid spectator address fails after the watcher is running.
	setPlayFlags(t, levelsDir, logFile, "127.0.0.1:-1", true)

	if err := play(context.Background()); err == nil {
		t.Fatal("play() should fail on a bad spectator address")
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "level watcher stopped") {
		t.Errorf("watcher was not closed before play returned, log:\n%s", data)
	}
}
