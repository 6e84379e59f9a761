package main

import (
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/inpututil"

	"github.com/zucenko/xenosweep/model"
)

// PointerSource is a device that can press the on-screen reset button.
type PointerSource interface {
	Position() (int, int)
}

// MouseSource is a PointerSource implementation of mouse.
type MouseSource struct{}

func (m *MouseSource) Position() (int, int) {
	return ebiten.CursorPosition()
}

// TouchSource is a PointerSource implementation of touch.
type TouchSource struct {
	ID int
}

func (t *TouchSource) Position() (int, int) {
	return ebiten.TouchPosition(t.ID)
}

// JustPressed lists the pointers pressed in this frame.
func JustPressed() []PointerSource {
	var presses []PointerSource
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		presses = append(presses, &MouseSource{})
	}
	for _, id := range inpututil.JustPressedTouchIDs() {
		presses = append(presses, &TouchSource{ID: id})
	}
	return presses
}

var keyActions = []struct {
	key    ebiten.Key
	action model.Action
}{
	{ebiten.KeyUp, model.MoveUp},
	{ebiten.KeyDown, model.MoveDown},
	{ebiten.KeyLeft, model.MoveLeft},
	{ebiten.KeyRight, model.MoveRight},
	{ebiten.KeyEnter, model.Reveal},
	{ebiten.KeyKPEnter, model.Reveal},
	{ebiten.KeySpace, model.Flag},
	{ebiten.KeyR, model.Reset},
}

// KeyActions maps the keys pressed in this frame to game actions, in table order.
func KeyActions() []model.Action {
	var actions []model.Action
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			actions = append(actions, ka.action)
		}
	}
	return actions
}
