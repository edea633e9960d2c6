package cmd

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/scatterbrain-dev/scatterbrain/internal/apiclient"
	"github.com/scatterbrain-dev/scatterbrain/internal/clidisplay"
	"github.com/scatterbrain-dev/scatterbrain/models"
)

var watchCmd = &cobra.Command{
	Use:   "watch [plan-id]",
	Short: "Live terminal view of a plan, updated over SSE",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchMsg carries either a freshly fetched snapshot or an error up to the
// bubbletea model.
type watchMsg struct {
	resp models.PlanResponse[*models.Plan]
	err  error
}

type watchTickMsg struct{}

type watchModel struct {
	ctx    context.Context
	id     models.PlanId
	events <-chan struct{}
	last   models.PlanResponse[*models.Plan]
	err    error
}

func (m watchModel) Init() tea.Cmd {
	return m.fetch
}

func (m watchModel) fetch() tea.Msg {
	resp, err := apiClient().GetPlan(m.ctx, m.id)
	return watchMsg{resp: resp, err: err}
}

// waitForEvent returns a tea.Cmd that blocks on the next SSE notification
// (or the channel closing, signaling the stream ended) — bubbletea's
// standard "listen on a channel" pattern, grounded on plan_tui.go's
// tea.Cmd-returns-a-custom-Msg convention.
func (m watchModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		_, open := <-m.events
		if !open {
			return nil
		}
		return watchTickMsg{}
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case watchTickMsg:
		return m, tea.Batch(m.fetch, m.waitForEvent())
	case watchMsg:
		m.last = msg.resp
		m.err = msg.err
		if m.err == nil {
			return m, m.waitForEvent()
		}
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scatterbrain watch — plan %d  (q to quit)\n\n", m.id)
	if m.err != nil {
		b.WriteString("error: " + m.err.Error() + "\n")
		return b.String()
	}
	b.WriteString(clidisplay.Tree(m.last.DistilledContext.TaskTree))
	b.WriteString("\n\n")
	b.WriteString(clidisplay.Current(m.last.DistilledContext.CurrentTask))
	return b.String()
}

func runWatch(cmd *cobra.Command, args []string) error {
	id, err := planID(args)
	if err != nil {
		return err
	}

	events := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	go subscribeEvents(ctx, models.PlanId(id), events)

	m := watchModel{ctx: ctx, id: models.PlanId(id), events: events}
	_, err = tea.NewProgram(m).Run()
	return err
}

// subscribeEvents consumes the server's SSE stream directly (rather than
// through apiclient, which only speaks the JSON envelope protocol) and
// forwards a notification for every "event: update" line, grounded on
// internal/httpapi/sse.go's wire format.
func subscribeEvents(ctx context.Context, id models.PlanId, out chan<- struct{}) {
	base := viper.GetString("cli.server")
	if base == "" {
		base = apiclient.DefaultBaseURL
	}
	url := fmt.Sprintf("%s/ui/events/%d", base, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "event: update") {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}
	close(out)
}
