package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/scatterbrain-dev/scatterbrain/internal/clidisplay"
	"github.com/scatterbrain-dev/scatterbrain/internal/guide"
	"github.com/scatterbrain-dev/scatterbrain/models"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive command-line shell against a running server",
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// shellSession holds the state a readline loop carries between lines: the
// plan currently in scope, set with "use <id>" and defaulting to --plan.
type shellSession struct {
	planID int
}

// runShell is grounded on haricheung-agentic-shell's cmd/agsh/main.go
// runREPL: a chzyer/readline loop with a history file under the user's
// cache dir, Ctrl-C warns once before quitting, Ctrl-D/io.EOF exits
// cleanly.
func runShell(cmd *cobra.Command, args []string) error {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = "."
	}
	histDir := filepath.Join(cacheDir, "scatterbrain")
	_ = os.MkdirAll(histDir, 0755)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[36mscatterbrain>\033[0m ",
		HistoryFile:       filepath.Join(histDir, "history"),
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return fmt.Errorf("readline init: %w", err)
	}
	defer rl.Close()

	fmt.Println("scatterbrain shell — type 'help' for commands, 'exit' or Ctrl-D to quit")

	sess := &shellSession{planID: -1}
	if p := planIDOrDefault(); p >= 0 {
		sess.planID = p
	}

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println("(Ctrl+C again or type 'exit' to quit)")
			line2, err2 := rl.Readline()
			if err2 == readline.ErrInterrupt || strings.TrimSpace(line2) == "exit" {
				return nil
			}
			line, err = line2, err2
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		if err := dispatchShellLine(cmd, sess, line); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}

func planIDOrDefault() int {
	id, err := planID(nil)
	if err != nil {
		return -1
	}
	return id
}

func dispatchShellLine(cmd *cobra.Command, sess *shellSession, line string) error {
	fields := strings.Fields(line)
	verb := fields[0]
	rest := fields[1:]
	ctx := cmd.Context()
	client := apiClient()

	switch verb {
	case "help":
		fmt.Println("commands: use <plan-id> | create <prompt> | tree | current | move <index> | add <description> [--level N] | complete <index> <summary> | lease <index> | guide | exit")
		return nil

	case "guide":
		fmt.Println(guide.Text())
		return nil

	case "use":
		if len(rest) != 1 {
			return fmt.Errorf("usage: use <plan-id>")
		}
		id, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("invalid plan id %q", rest[0])
		}
		sess.planID = id
		fmt.Printf("using plan %d\n", id)
		return nil

	case "create":
		if len(rest) == 0 {
			return fmt.Errorf("usage: create <prompt>")
		}
		id, err := client.CreatePlan(ctx, strings.Join(rest, " "), "")
		if err != nil {
			return err
		}
		sess.planID = int(id)
		fmt.Printf("created and switched to plan %d\n", id)
		return nil

	case "tree":
		resp, err := client.GetPlan(ctx, models.PlanId(sess.planID))
		if err != nil {
			return err
		}
		fmt.Println(clidisplay.Tree(resp.DistilledContext.TaskTree))
		return nil

	case "current":
		resp, err := client.Current(ctx, models.PlanId(sess.planID))
		if err != nil {
			return err
		}
		fmt.Println(clidisplay.Current(resp.Result))
		return nil

	case "move":
		if len(rest) != 1 {
			return fmt.Errorf("usage: move <index>")
		}
		idx, err := parseIndexOrRoot(rest[0])
		if err != nil {
			return err
		}
		resp, err := client.MoveTo(ctx, models.PlanId(sess.planID), idx)
		if err != nil {
			return err
		}
		if resp.Result == nil {
			fmt.Println("no task at that index; cursor unchanged")
			return nil
		}
		fmt.Printf("moved to: %s\n", *resp.Result)
		return nil

	case "add":
		if len(rest) == 0 {
			return fmt.Errorf("usage: add <description> [--level N]")
		}
		level := 0
		if n := len(rest); n >= 2 && rest[n-2] == "--level" {
			l, err := strconv.Atoi(rest[n-1])
			if err != nil {
				return fmt.Errorf("invalid level %q", rest[n-1])
			}
			level, rest = l, rest[:n-2]
		}
		resp, err := client.AddTask(ctx, models.PlanId(sess.planID), nil, strings.Join(rest, " "), level, "")
		if err != nil {
			return err
		}
		fmt.Printf("added at index %s\n", resp.Result.Index.String())
		return nil

	case "complete":
		if len(rest) < 2 {
			return fmt.Errorf("usage: complete <index> <summary...>")
		}
		idx, err := models.ParseIndex(rest[0])
		if err != nil {
			return err
		}
		summary := strings.Join(rest[1:], " ")
		resp, err := client.CompleteTask(ctx, models.PlanId(sess.planID), idx, nil, false, &summary)
		if err != nil {
			return err
		}
		if !resp.Result {
			fmt.Println(clidisplay.Reminder(resp.Reminder))
			return nil
		}
		fmt.Println("completed")
		return nil

	case "lease":
		if len(rest) != 1 {
			return fmt.Errorf("usage: lease <index>")
		}
		idx, err := models.ParseIndex(rest[0])
		if err != nil {
			return err
		}
		resp, err := client.GenerateLease(ctx, models.PlanId(sess.planID), idx)
		if err != nil {
			return err
		}
		fmt.Printf("lease token: %d\n", resp.Result.Token)
		return nil

	default:
		return fmt.Errorf("unknown command %q; type 'help'", verb)
	}
}
