package host

import "github.com/leterax/citywalk/pkg/control"

// StickFeed forwards analog stick samples to a handler and centers the
// stick once when the gamepad goes away, so a disconnect mid-deflection
// does not leave the handler moving.
type StickFeed struct {
	active bool
}

// Feed sends one stick sample, x right and y forward
func (s *StickFeed) Feed(ih control.InputHandler, x, y float32) {
	ai, ok := ih.(control.AnalogInput)
	if !ok {
		return
	}
	ai.AnalogMove(x, y)
	s.active = true
}

// Lost reports that no usable gamepad was found this frame
func (s *StickFeed) Lost(ih control.InputHandler) {
	if !s.active {
		return
	}
	s.active = false
	if ai, ok := ih.(control.AnalogInput); ok {
		ai.AnalogMove(0, 0)
	}
}
