package main

import (
	"log"
	"os"
	"strings"

	"expander/cmd"
	"expander/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if logging.Logger == nil {
			log.Fatalf("expander execution failed: %v", err)
		}
		logging.Logger.Fatal("expander execution failed", zap.Error(err))
	}

	// Sync fails with "invalid argument" on pipes and character devices other than ttys.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logging.L().Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
