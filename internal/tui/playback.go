// Package tui plays a computed rollout back in the terminal.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skodra/quatdmp/internal/dmp"
	"github.com/skodra/quatdmp/internal/quat"
)

const (
	canvasW = 56
	canvasH = 18
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type playback struct {
	traj   *dmp.Trajectory
	times  []float64
	idx    int
	paused bool
	canvas [][]rune
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func newPlayback(tr *dmp.Trajectory, times []float64) *playback {
	canvas := make([][]rune, canvasH)
	for i := range canvas {
		canvas[i] = make([]rune, canvasW)
	}
	return &playback{traj: tr, times: times, canvas: canvas}
}

func (p *playback) Init() tea.Cmd { return tick() }

func (p *playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.paused = !p.paused
		case "r":
			p.idx = 0
		}
	case tickMsg:
		if !p.paused && p.idx < p.traj.Len()-1 {
			p.idx++
		}
		return p, tick()
	}
	return p, nil
}

func (p *playback) View() string {
	p.clear()
	p.drawFrame(p.traj.Orientations[p.idx])

	var b strings.Builder
	b.WriteString(cyan.Render("quatdmp rollout") + "  ")
	b.WriteString(dim.Render(fmt.Sprintf("t=%.2fs  step %d/%d", p.times[p.idx], p.idx+1, p.traj.Len())))
	if p.paused {
		b.WriteString("  " + yellow.Render("paused"))
	}
	b.WriteString("\n" + dim.Render(strings.Repeat("-", canvasW)) + "\n")

	for _, row := range p.canvas {
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString(dim.Render(strings.Repeat("-", canvasW)) + "\n")

	q := p.traj.Orientations[p.idx]
	v := p.traj.Velocities[p.idx]
	b.WriteString(green.Render(fmt.Sprintf("q=(%.3f %.3f %.3f %.3f)", q.X, q.Y, q.Z, q.W)))
	b.WriteString(dim.Render(fmt.Sprintf("  |w|=%.3f rad/s", v.Norm())))
	b.WriteString("\n" + dim.Render("space pause  r restart  q quit") + "\n")
	return b.String()
}

func (p *playback) clear() {
	for y := range p.canvas {
		for x := range p.canvas[y] {
			p.canvas[y][x] = ' '
		}
	}
}

// drawFrame projects the rotated body axes onto the canvas: screen x is
// world x, screen y is world z, depth (world y) picks the stroke rune.
func (p *playback) drawFrame(q quat.Quaternion) {
	cx, cy := canvasW/2, canvasH/2
	arm := float64(canvasH) / 2.5

	axes := []struct {
		dir  quat.Vec
		tip  rune
		near rune
		far  rune
	}{
		{quat.Vec{1, 0, 0}, 'X', '=', '-'},
		{quat.Vec{0, 1, 0}, 'Y', '#', '+'},
		{quat.Vec{0, 0, 1}, 'Z', '|', ':'},
	}

	for _, a := range axes {
		r := q.Rotate(a.dir)
		// Terminal cells are taller than wide; stretch x to compensate.
		tx := cx + int(2*arm*r[0])
		ty := cy - int(arm*r[2])
		stroke := a.far
		if r[1] >= 0 {
			stroke = a.near
		}
		p.line(cx, cy, tx, ty, stroke)
		p.set(tx, ty, a.tip)
	}
	p.set(cx, cy, 'o')
}

func (p *playback) set(x, y int, c rune) {
	if x >= 0 && x < canvasW && y >= 0 && y < canvasH {
		p.canvas[y][x] = c
	}
}

func (p *playback) line(x1, y1, x2, y2 int, c rune) {
	dx := int(math.Abs(float64(x2 - x1)))
	dy := int(math.Abs(float64(y2 - y1)))
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		p.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Run plays the trajectory until the user quits.
func Run(tr *dmp.Trajectory, times []float64) error {
	_, err := tea.NewProgram(newPlayback(tr, times)).Run()
	return err
}
