package glfwhost

import (
	"errors"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/citywalk/pkg/control"
)

func TestMapKey(t *testing.T) {
	testCases := map[string]struct {
		key      glfw.Key
		expected control.Key
	}{
		"Up":     {key: glfw.KeyUp, expected: control.KeyArrowUp},
		"Down":   {key: glfw.KeyDown, expected: control.KeyArrowDown},
		"Left":   {key: glfw.KeyLeft, expected: control.KeyArrowLeft},
		"Right":  {key: glfw.KeyRight, expected: control.KeyArrowRight},
		"Escape": {key: glfw.KeyEscape, expected: control.KeyEscape},
		"W":      {key: glfw.KeyW, expected: control.KeyUnknown},
	}

	for name, tt := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := mapKey(tt.key); got != tt.expected {
				t.Errorf("Expected: %v, got: %v", tt.expected, got)
			}
		})
	}
}

func TestNoWindowCannotCapture(t *testing.T) {
	h := New(nil)
	if err := h.RequestCapture(); !errors.Is(err, control.ErrNoCaptureTarget) {
		t.Fatalf("Expected ErrNoCaptureTarget, got %v", err)
	}
	if h.Captured() {
		t.Fatal("host without window reports capture")
	}
	// must not panic
	h.ExitCapture()
	h.SetInputHandler(control.NewController())
	h.SetInputHandler(nil)
}
