package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybridge/internal/mapper"
	"github.com/dshills/keybridge/internal/termkey"
)

// cmdInspect runs a tcell screen that echoes each key press, its
// request form, and how it resolves under the loaded layout. Escape
// (unmodified) exits.
func cmdInspect(m *mapper.Mapper) int {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	lines := []string{
		"keybridge inspect — press keys to see their resolution, Esc to quit",
		"",
	}
	draw(screen, lines)

	for {
		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw(screen, lines)
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEsc && ev.Modifiers() == 0 {
				return 0
			}
			lines = append(lines, describe(m, ev)...)
			// Keep the tail on screen.
			_, h := screen.Size()
			if len(lines) > h {
				lines = lines[len(lines)-h:]
			}
			draw(screen, lines)
		}
	}
}

// describe renders one key event as output lines.
func describe(m *mapper.Mapper, ev *tcell.EventKey) []string {
	req, ok := termkey.FromEvent(ev)
	if !ok {
		return []string{fmt.Sprintf("%-24s (no logical key)", ev.Name())}
	}

	presses := m.ResolveSimple(req)
	if len(presses) == 0 {
		return []string{fmt.Sprintf("%-24s %-24s not producible on this layout", ev.Name(), req)}
	}

	out := make([]string, 0, len(presses))
	for i, kp := range presses {
		kb := m.Keybinding(mapper.Combination{First: kp})
		out = append(out, fmt.Sprintf("%-24s %-24s #%d %-22s %s", ev.Name(), req, i+1, kp, kb.Label()))
	}
	return out
}

// draw paints the line buffer onto the screen.
func draw(screen tcell.Screen, lines []string) {
	screen.Clear()
	for y, line := range lines {
		x := 0
		for _, r := range line {
			screen.SetContent(x, y, r, nil, tcell.StyleDefault)
			x++
		}
	}
	screen.Show()
}
