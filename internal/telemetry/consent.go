package telemetry

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// PromptForConsent displays the first-run consent prompt and persists the
// user's choice to the telemetry Config. In a non-interactive environment
// (no TTY on stdin) it defaults to disabled without prompting, since a
// blocking read would hang a piped or scripted invocation.
func PromptForConsent(cfg *Config) error {
	if !isInteractive() {
		cfg.Disable()
		return cfg.Save()
	}

	fmt.Println()
	fmt.Println("╭──────────────────────────────────────────────────────────────╮")
	fmt.Println("│  Help improve scatterbrain?                                   │")
	fmt.Println("│                                                                │")
	fmt.Println("│  scatterbrain can collect anonymous usage statistics to       │")
	fmt.Println("│  improve the product. No plan content is ever collected.      │")
	fmt.Println("│                                                                │")
	fmt.Println("│  What we collect:                                             │")
	fmt.Println("│  • Which operations run (e.g. \"add_task\", \"complete_task\")   │")
	fmt.Println("│  • Errors (kind only, no messages)                            │")
	fmt.Println("│  • OS and architecture                                        │")
	fmt.Println("│                                                                │")
	fmt.Println("│  What we DON'T collect:                                       │")
	fmt.Println("│  • Plan prompts, task descriptions, notes, or summaries       │")
	fmt.Println("│  • File paths, hostnames, or IP addresses                     │")
	fmt.Println("│                                                                │")
	fmt.Println("│  You can change this anytime by editing:                      │")
	fmt.Println("│    ~/.scatterbrain/telemetry.json                             │")
	fmt.Println("╰──────────────────────────────────────────────────────────────╯")
	fmt.Println()
	fmt.Print("Enable anonymous telemetry? [Y/n] ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		cfg.Disable()
		return cfg.Save()
	}

	input = strings.TrimSpace(strings.ToLower(input))
	if input == "" || input == "y" || input == "yes" {
		cfg.Enable()
	} else {
		cfg.Disable()
	}

	if err := cfg.Save(); err != nil {
		return err
	}

	if cfg.IsEnabled() {
		fmt.Println("Telemetry enabled. Thank you for helping improve scatterbrain.")
	} else {
		fmt.Println("Telemetry disabled. Enable it anytime in ~/.scatterbrain/telemetry.json")
	}
	fmt.Println()

	return nil
}

// isInteractive returns true if stdin is a terminal.
func isInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// CheckAndPromptConsent loads the telemetry Config, prompting for consent if
// the user hasn't been asked yet, and returns the resulting Config.
func CheckAndPromptConsent() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	if cfg.NeedsConsent() {
		if err := PromptForConsent(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
