package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/AntonioJCosta/brewalias/internal/core/domain/alias"
	"github.com/AntonioJCosta/brewalias/internal/handlers/ui"
)

// ErrFZFNotFound indicates that the fzf binary was not found in PATH.
var ErrFZFNotFound = errors.New("fzf binary not found in PATH")

// ErrFZFCancelled indicates that the user cancelled the fzf selection (e.g., by pressing Esc or Ctrl-C).
var ErrFZFCancelled = errors.New("fzf selection cancelled by user")

// aliasSelector lets the user pick aliases, through fzf when available.
type aliasSelector struct {
	in       io.Reader
	out      io.Writer
	errOut   io.Writer
	host     string
	action   string
	lookPath func(file string) (string, error)
}

// newAliasSelector creates a selector; action names what happens to the picked aliases ("remove", "add").
func newAliasSelector(in io.Reader, out, errOut io.Writer, host, action string) *aliasSelector {
	return &aliasSelector{in: in, out: out, errOut: errOut, host: host, action: action, lookPath: exec.LookPath}
}

func (s *aliasSelector) selectAliases(aliases []alias.Alias) ([]alias.Alias, error) {
	selected, err := s.selectViaFZF(aliases)
	switch {
	case err == nil:
		return selected, nil
	case errors.Is(err, ErrFZFNotFound):
		fmt.Fprintln(s.errOut, ui.WarningColor("fzf not found in PATH. Falling back to numeric selection."))
	case errors.Is(err, ErrFZFCancelled):
		fmt.Fprintln(s.out, ui.InfoColor(fmt.Sprintf("Selection cancelled via fzf. Nothing to %s.", s.action)))
		return nil, nil
	default:
		fmt.Fprintln(s.errOut, ui.ErrorColor(fmt.Sprintf("Error during fzf selection: %v. Falling back to numeric selection.", err)))
	}
	return s.selectNumerically(aliases)
}

func (s *aliasSelector) displayLine(a alias.Alias) string {
	return fmt.Sprintf("%s alias %s='%s'", s.host, a.Name, a.Resolved)
}

func (s *aliasSelector) selectViaFZF(aliases []alias.Alias) ([]alias.Alias, error) {
	fzfPath, err := s.lookPath("fzf")
	if err != nil {
		return nil, ErrFZFNotFound
	}

	if len(aliases) == 0 {
		return []alias.Alias{}, nil
	}

	var inputBuffer bytes.Buffer
	byLine := make(map[string]alias.Alias)
	for _, a := range aliases {
		// Feed raw alias strings to fzf for reliable mapping of selections.
		line := s.displayLine(a)
		byLine[line] = a
		inputBuffer.WriteString(line + "\n")
	}

	fzfCmd := exec.Command(fzfPath, "--multi", "--ansi", "--prompt", ui.PromptColor(fmt.Sprintf("Select aliases to %s (TAB to multi-select, Enter to confirm) > ", s.action)))
	fzfCmd.Stdin = &inputBuffer

	var outBuffer bytes.Buffer
	var errBuffer bytes.Buffer
	fzfCmd.Stdout = &outBuffer
	fzfCmd.Stderr = &errBuffer

	if err := fzfCmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Exit code 130 indicates user cancellation (e.g., Ctrl-C, Esc).
			if exitErr.ExitCode() == 130 {
				return nil, ErrFZFCancelled
			}
			// Exit code 1 with no output means no match was selected.
			if exitErr.ExitCode() == 1 && strings.TrimSpace(outBuffer.String()) == "" {
				return []alias.Alias{}, nil
			}
		}
		return nil, fmt.Errorf("fzf execution failed (stderr: %s): %w", strings.TrimSpace(errBuffer.String()), err)
	}

	return s.mapSelectedLines(outBuffer.String(), byLine), nil
}

func (s *aliasSelector) mapSelectedLines(output string, byLine map[string]alias.Alias) []alias.Alias {
	var chosen []alias.Alias
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if a, ok := byLine[trimmed]; ok {
			chosen = append(chosen, a)
		} else {
			fmt.Fprintln(s.errOut, ui.WarningColor(fmt.Sprintf("Warning: fzf selected an unknown line: %s", trimmed)))
		}
	}
	return chosen
}

func (s *aliasSelector) selectNumerically(aliases []alias.Alias) ([]alias.Alias, error) {
	if len(aliases) == 0 {
		return []alias.Alias{}, nil
	}

	fmt.Fprintln(s.out, ui.PromptColor(fmt.Sprintf("Select aliases to %s (e.g., 1,3-5, or 'all', 'none'):", s.action)))
	for i, a := range aliases {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, ui.AliasLine(s.host, a.Name, a.Resolved))
	}
	fmt.Fprint(s.out, ui.PromptColor("Your choice: "))

	input, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	indices, err := parseNumericSelectionInput(input, len(aliases))
	if err != nil {
		return nil, fmt.Errorf("invalid selection input: %w", err)
	}

	chosen := make([]alias.Alias, 0, len(indices))
	for _, idx := range indices {
		chosen = append(chosen, aliases[idx])
	}
	return chosen, nil
}

// parseNumericSelectionInput turns "1,3-5", "all" or "none" into unique 0-based indices.
func parseNumericSelectionInput(input string, count int) ([]int, error) {
	trimmedInput := strings.TrimSpace(strings.ToLower(input))
	switch trimmedInput {
	case "none", "":
		return []int{}, nil
	case "all":
		indices := make([]int, count)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	var selections []int
	for _, part := range strings.Split(trimmedInput, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.SplitN(part, "-", 2)
			start, err1 := strconv.Atoi(strings.TrimSpace(rangeParts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(rangeParts[1]))
			if err1 != nil || err2 != nil || start <= 0 || end < start || end > count {
				return nil, fmt.Errorf("invalid range or number (max %d): %s", count, part)
			}
			for i := start; i <= end; i++ {
				selections = append(selections, i-1)
			}
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num <= 0 || num > count {
			return nil, fmt.Errorf("invalid number (max %d): %s", count, part)
		}
		selections = append(selections, num-1)
	}

	seen := make(map[int]bool)
	unique := make([]int, 0, len(selections))
	for _, idx := range selections {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	return unique, nil
}
