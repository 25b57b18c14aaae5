package history

import (
	"bufio"
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/history"
	"github.com/adrg/xdg"
)

const (
	defaultScanCount = 500
	maxHistoryLine   = 1024 * 1024
)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	homeDir := xdg.Home
	if homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil || relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// findUserHistoryFile checks the configured path, then $HISTFILE, then the zsh and bash defaults.
func findUserHistoryFile(configured string) (string, error) {
	homeDir := xdg.Home

	candidates := []string{configured, os.Getenv("HISTFILE")}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(homeDir, candidate)
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	for _, p := range []string{
		filepath.Join(homeDir, ".zsh_history"),
		filepath.Join(homeDir, ".bash_history"),
	} {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("could not find a shell history file (checked HISTFILE, ~/.zsh_history, ~/.bash_history)")
}

// determineScanCount picks how many history entries to scan.
func determineScanCount(scanLimit int) int {
	if scanLimit > 0 {
		return scanLimit
	}
	if histSize, err := strconv.Atoi(os.Getenv("HISTSIZE")); err == nil && histSize > 0 {
		return histSize
	}
	return defaultScanCount
}

/*
parseHistoryLine returns the command recorded on one history line, or "" for
lines that carry no command.

Example:

	parseHistoryLine(": 1700000000:0;brew list") // "brew list" (zsh extended history)
	parseHistoryLine("#1700000000")              // "" (bash timestamp)
	parseHistoryLine("brew info wget  ")         // "brew info wget"
*/
func parseHistoryLine(line string) string {
	if strings.HasPrefix(line, ": ") {
		if _, cmd, found := strings.Cut(line, ";"); found {
			line = cmd
		}
	} else if ts, ok := strings.CutPrefix(line, "#"); ok {
		if _, err := strconv.ParseInt(ts, 10, 64); err == nil {
			return ""
		}
	}
	return strings.TrimSpace(line)
}

// getHistoryFrequencies counts the commands among the last scanCount entries.
func (p *HistoryProvider) getHistoryFrequencies(scanCount int) ([]history.CommandFrequency, error) {
	file, err := os.Open(p.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("history file %s: %w", toUserFriendlyPath(p.HistoryFile), err)
	}
	defer file.Close()

	recent := make([]string, 0, scanCount)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxHistoryLine)
	for scanner.Scan() {
		cmd := parseHistoryLine(scanner.Text())
		if cmd == "" {
			continue
		}
		if len(recent) == scanCount {
			recent = recent[1:]
		}
		recent = append(recent, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history file %s: %w", toUserFriendlyPath(p.HistoryFile), err)
	}

	return countFrequencies(recent), nil
}

// countFrequencies tallies identical commands, most frequent first and then alphabetical.
func countFrequencies(commands []string) []history.CommandFrequency {
	counts := make(map[string]int)
	for _, cmd := range commands {
		counts[cmd]++
	}
	frequencies := make([]history.CommandFrequency, 0, len(counts))
	for cmd, count := range counts {
		frequencies = append(frequencies, history.CommandFrequency{Command: cmd, Count: count})
	}
	slices.SortFunc(frequencies, func(a, b history.CommandFrequency) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Command, b.Command)
	})
	return frequencies
}
