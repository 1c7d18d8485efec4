package engine

import (
	"context"
	"log"
	"time"

	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/core"
	"github.com/lixenwraith/simon/input"
	"github.com/lixenwraith/simon/render"
)

// Menu is the top-level screen dispatching to a game or the help screens
type Menu struct {
	icons    *render.IconRenderer
	input    input.Source
	session  *Session
	clock    Clock
	interval time.Duration
}

// NewMenu creates the menu loop; interval is the idle gap between input checks
func NewMenu(icons *render.IconRenderer, src input.Source, session *Session, clock Clock, interval time.Duration) *Menu {
	return &Menu{
		icons:    icons,
		input:    src,
		session:  session,
		clock:    clock,
		interval: interval,
	}
}

// Run loops until ctx is done: A starts a game, B shows help
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.draw()

		if b, ok := m.input.Poll(); ok {
			switch b {
			case core.ButtonA:
				started := m.clock.Now()
				result, err := m.session.Play(ctx)
				if err != nil {
					return err
				}
				log.Printf("menu: game over, %v at level %d after %d rounds in %v",
					result.Outcome, result.Level, result.Rounds, m.clock.Now().Sub(started))
			case core.ButtonB:
				if err := m.Help(ctx); err != nil {
					return err
				}
			}
			// Buttons are only read here; presses made during the game or help do not count
			m.input.Flush()
		}

		if err := m.clock.Sleep(ctx, m.interval); err != nil {
			return err
		}
	}
}

func (m *Menu) draw() {
	s := m.icons.Surface()
	s.SetPen(render.PenText)
	s.Text(constants.TextTitle, 0, 0, constants.MenuWrap, constants.MenuScale)
	s.Text(constants.TextBegin, 0, 50, constants.MenuWrap, constants.MenuScale)
	s.Text(constants.TextHelp, 0, 100, constants.MenuWrap, constants.MenuScale)
	s.Update()
}

// Help shows every icon with its tone, then the instructions
func (m *Menu) Help(ctx context.Context) error {
	m.icons.Clear()
	if err := m.icons.Message(ctx, constants.TextHelpIcons, constants.HelpIntroHoldUnits); err != nil {
		return err
	}

	m.icons.Legend()
	for _, icon := range core.Icons {
		if err := m.icons.Show(ctx, icon, constants.HelpIconUnits); err != nil {
			return err
		}
	}
	m.icons.Clear()

	if err := m.icons.Message(ctx, constants.TextHelpMemorize, constants.HelpTextHoldUnits); err != nil {
		return err
	}
	return m.icons.Message(ctx, constants.TextHelpButtons, constants.HelpTextHoldUnits)
}
