package constants

import "testing"

func TestVirtualButtonNames(t *testing.T) {
	tests := []struct {
		button VirtualButton
		want   string
	}{
		{VirtualButtonUp, "Up"},
		{VirtualButtonA, "A"},
		{VirtualButtonMenu, "Menu"},
		{VirtualButton(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.button.GetName(); got != tc.want {
			t.Errorf("VirtualButton(%d).GetName() = %q, want %q", tc.button, got, tc.want)
		}
	}
}

func TestIsDirectional(t *testing.T) {
	for _, b := range []VirtualButton{VirtualButtonUp, VirtualButtonDown, VirtualButtonLeft, VirtualButtonRight} {
		if !b.IsDirectional() {
			t.Errorf("%s should be directional", b.GetName())
		}
	}
	for _, b := range []VirtualButton{VirtualButtonA, VirtualButtonStart, VirtualButtonUnassigned} {
		if b.IsDirectional() {
			t.Errorf("%s should not be directional", b.GetName())
		}
	}
}
