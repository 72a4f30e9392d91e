// Package menu runs the interactive numbered menu shown when the CLI is
// started without a subcommand.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// titleStyle for the menu header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted helper text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// numberStyle for item numbers
	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")).
			Bold(true)

	// errorStyle for invalid selections
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// headerBoxStyle for the menu banner
	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// Item is one selectable menu entry.
type Item struct {
	Label string
	Run   func(ctx context.Context) error
}

// Menu is an interactive numbered menu loop.
type Menu struct {
	title string
	items []Item
	in    *bufio.Reader
	out   io.Writer
}

// New creates a menu reading selections from in and writing to out.
func New(title string, items []Item, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		title: title,
		items: items,
		in:    bufio.NewReader(in),
		out:   out,
	}
}

// Run shows the menu until the user quits, the input ends, or the context
// is canceled. An item returning an error prints it and keeps the loop
// alive.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.render()

		line, err := m.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("failed to read selection: %w", err)
		}

		choice := strings.TrimSpace(line)
		switch choice {
		case "", "q", "Q", "0":
			fmt.Fprintln(m.out, dimStyle.Render("종료합니다."))
			return nil
		}

		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(m.items) {
			fmt.Fprintln(m.out, errorStyle.Render(fmt.Sprintf("잘못된 선택: %s", choice)))
			continue
		}

		if err := m.items[n-1].Run(ctx); err != nil {
			fmt.Fprintln(m.out, errorStyle.Render(fmt.Sprintf("오류: %v", err)))
		}
	}
}

func (m *Menu) render() {
	fmt.Fprintln(m.out, headerBoxStyle.Render(titleStyle.Render(m.title)))
	for i, item := range m.items {
		fmt.Fprintf(m.out, "  %s %s\n", numberStyle.Render(fmt.Sprintf("%d.", i+1)), item.Label)
	}
	fmt.Fprintf(m.out, "  %s 종료\n", numberStyle.Render("0."))
	fmt.Fprint(m.out, dimStyle.Render("선택: "))
}
