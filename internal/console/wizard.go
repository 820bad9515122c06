package console

import (
	"os"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"

	"fshunter/internal/logging"
)

// ScanWizard runs the --interactive prompt flow for `fshunter scan`:
// root directory, dedup mode and output format. Adapted from the
// teacher's ui.go:interactivePrompt (promptui.Select/Prompt, same
// Ctrl-C handling), generalized from backup-specific questions to the
// scan's own parameters.
func ScanWizard() (root, dedupMode, outputFormat string) {
	PrintBanner()

	rootPrompt := promptui.Prompt{Label: "Root directory to scan"}
	root, err := rootPrompt.Run()
	if err == promptui.ErrInterrupt {
		color.New(color.FgRed, color.Bold).Println("\nInterrupted. Exiting.")
		os.Exit(130)
	} else if err != nil {
		logging.Fatalf("wizard: root prompt failed: %v", err)
	}

	dedupSelect := promptui.Select{
		Label: "Deduplication mode",
		Items: []string{"content", "namepattern"},
	}
	_, dedupMode, err = dedupSelect.Run()
	if err == promptui.ErrInterrupt {
		color.New(color.FgRed, color.Bold).Println("\nInterrupted. Exiting.")
		os.Exit(130)
	} else if err != nil {
		logging.Fatalf("wizard: dedup prompt failed: %v", err)
	}

	formatSelect := promptui.Select{
		Label: "Output format",
		Items: []string{"csv", "jsonl"},
	}
	_, outputFormat, err = formatSelect.Run()
	if err == promptui.ErrInterrupt {
		color.New(color.FgRed, color.Bold).Println("\nInterrupted. Exiting.")
		os.Exit(130)
	} else if err != nil {
		logging.Fatalf("wizard: format prompt failed: %v", err)
	}

	return root, dedupMode, outputFormat
}
