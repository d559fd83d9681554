package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-eka-mr/models"
)

// waitFunc runs the polling loop, reporting every non-terminal poll through
// onPoll, and returns the terminal result.
type waitFunc func(onPoll func(models.DocumentResult)) (models.DocumentResult, error)

type waitStatusMsg struct {
	status string
}

type waitDoneMsg struct {
	result models.DocumentResult
	err    error
}

// waitModel is the bubbletea model shown while polling on a TTY: a spinner,
// the last reported status, and the elapsed time.
type waitModel struct {
	spinner  spinner.Model
	fileName string
	status   string
	start    time.Time

	result models.DocumentResult
	err    error
}

func newWaitModel(fileName string) waitModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return waitModel{
		spinner:  s,
		fileName: fileName,
		status:   models.StatusPending,
		start:    time.Now(),
	}
}

func (m waitModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case waitStatusMsg:
		m.status = msg.status
		return m, nil
	case waitDoneMsg:
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = context.Canceled
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m waitModel) View() string {
	elapsed := time.Since(m.start).Round(time.Second)
	return fmt.Sprintf("%s Waiting for %s to finish processing... %s\n",
		m.spinner.View(),
		titleStyle.Render(m.fileName),
		faintStyle.Render(fmt.Sprintf("(%s, %s)", m.status, elapsed)))
}

// waitWithSpinner drives wait under a bubbletea program so the user sees a
// live spinner instead of a frozen terminal. Returns the terminal result of
// the wait, or context.Canceled when the user hits Ctrl-C.
func waitWithSpinner(ctx context.Context, fileName string, wait waitFunc) (models.DocumentResult, error) {
	p := tea.NewProgram(newWaitModel(fileName), tea.WithContext(ctx), tea.WithOutput(os.Stdout))

	go func() {
		result, err := wait(func(r models.DocumentResult) {
			p.Send(waitStatusMsg{status: r.Status})
		})
		p.Send(waitDoneMsg{result: result, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return models.DocumentResult{}, ctx.Err()
		}
		return models.DocumentResult{}, fmt.Errorf("progress ui: %w", err)
	}

	m, ok := final.(waitModel)
	if !ok {
		return models.DocumentResult{}, errors.New("unexpected progress model type")
	}
	return m.result, m.err
}

// waitWithDots is the non-TTY fallback: one progress dot per poll, the way
// the classic CLI did it.
func waitWithDots(out *os.File, wait waitFunc) (models.DocumentResult, error) {
	result, err := wait(func(models.DocumentResult) {
		fmt.Fprint(out, ".")
	})
	fmt.Fprintln(out)
	return result, err
}
