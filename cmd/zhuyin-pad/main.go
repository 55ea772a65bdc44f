// zhuyin-pad is a small desktop scratch pad for trying keyboard
// arrangements: keys typed into the entry line are replayed through a
// Composer and the slot contents plus every rendering are shown live.
package main

import (
	"flag"
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"zhuyind/internal/composer"
	"zhuyind/internal/config"
	zlayout "zhuyind/internal/layout"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	layoutName := flag.String("layout", "", "keyboard arrangement (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	name := cfg.Input.Layout
	if *layoutName != "" {
		name = *layoutName
	}
	arrange, err := zlayout.Parse(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pad := newPad(arrange, cfg.Input.Correction)

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Zhuyin Pad"))
		w.Option(app.Size(unit.Dp(640), unit.Dp(420)))

		if err := pad.loop(w); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// pad owns the editor line and the composer it drives.
type pad struct {
	theme    *material.Theme
	editor   widget.Editor
	composer *composer.Composer
	lastText string
}

func newPad(arrange zlayout.Layout, correction bool) *pad {
	p := &pad{
		theme:    material.NewTheme(),
		composer: composer.New("", arrange, correction),
	}
	p.editor.SingleLine = true
	return p
}

func (p *pad) loop(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			p.update()
			p.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

// update replays the editor contents whenever they change. Replaying the
// whole line keeps backspace and mid-line edits consistent with the
// engine's own ordering rules.
func (p *pad) update() {
	text := p.editor.Text()
	if text == p.lastText {
		return
	}
	p.lastText = text
	p.composer.ReceiveSequence(text, false)
}

func (p *pad) layout(gtx layout.Context) layout.Dimensions {
	row := func(label, value string) layout.FlexChild {
		return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					l := material.Body1(p.theme, label)
					return l.Layout(gtx)
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					v := material.Body1(p.theme, value)
					return v.Layout(gtx)
				}),
			)
		})
	}

	return layout.UniformInset(unit.Dp(16)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				title := material.H6(p.theme, "Arrangement: "+p.composer.Layout().String())
				return title.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				ed := material.Editor(p.theme, &p.editor, "type keys here")
				return ed.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Height: unit.Dp(24)}.Layout),
			row("bopomofo:   ", p.composer.Composition(false, false)),
			row("textbook:   ", p.composer.Composition(false, true)),
			row("pinyin:     ", p.composer.Composition(true, false)),
			row("diacritic:  ", p.composer.Composition(true, true)),
			layout.Rigid(layout.Spacer{Height: unit.Dp(16)}.Layout),
			row("raw value:  ", p.composer.Value()),
		)
	})
}
