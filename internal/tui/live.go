package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/pedrodamas1/chemeq/internal/experiment"
	"github.com/pedrodamas1/chemeq/internal/viz"
)

// RunLive steps a titration sweep point by point inside a bubbletea
// program, redrawing the pH curve after every converged solve.
func RunLive(exp *experiment.Experiment, t experiment.Titration) error {
	if t.Points < 2 {
		return fmt.Errorf("live titration needs at least 2 points, got %d", t.Points)
	}
	m := liveModel{exp: exp, sweep: t}
	_, err := tea.NewProgram(m).Run()
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(60*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type liveModel struct {
	exp   *experiment.Experiment
	sweep experiment.Titration

	point int
	ph    []float64
	guess []float64
	err   error
	done  bool
}

func (m liveModel) Init() tea.Cmd { return tick() }

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		if m.done || m.err != nil {
			return m, nil
		}
		m = m.step()
		if m.done || m.err != nil {
			return m, nil
		}
		return m, tick()
	}
	return m, nil
}

func (m liveModel) step() liveModel {
	span := m.sweep.To - m.sweep.From
	target := m.sweep.From + span*float64(m.point)/float64(m.sweep.Points-1)

	sys := m.exp.System()
	if err := sys.SetTarget(m.sweep.Token, target); err != nil {
		m.err = err
		return m
	}
	res, err := sys.Solve(m.guess)
	if err != nil {
		m.err = fmt.Errorf("point %d (target %g): %w", m.point, target, err)
		return m
	}

	if ph, ok := res.PH(); ok {
		m.ph = append(m.ph, ph)
	}
	m.guess = res.Concentrations
	m.point++
	if m.point >= m.sweep.Points {
		m.done = true
	}
	return m
}

func (m liveModel) View() string {
	header := viz.Title.Render(fmt.Sprintf("titrating %s: %s %g to %g",
		m.exp.Config().Name, m.sweep.Token, m.sweep.From, m.sweep.To))

	body := "waiting for first point..."
	if len(m.ph) >= 2 {
		body = asciigraph.Plot(m.ph, asciigraph.Width(70), asciigraph.Height(14), asciigraph.Caption("pH"))
	}

	status := viz.Dim.Render(fmt.Sprintf("point %d/%d  (q to quit)", m.point, m.sweep.Points))
	if m.err != nil {
		status = viz.Bad.Render(m.err.Error())
	} else if m.done {
		status = viz.Good.Render(fmt.Sprintf("done: %d points  (q to quit)", m.point))
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n", header, body, status)
}
