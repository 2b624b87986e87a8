package clui

import (
	"testing"

	"github.com/gogpu/clui/geom"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.host != nil {
		t.Errorf("host = %v, want nil", o.host)
	}
	if o.viewport != DefaultViewport {
		t.Errorf("viewport = %v, want %v", o.viewport, DefaultViewport)
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	tk := New(WithViewport(10, 20), WithViewport(30, 40))
	if tk.viewport != geom.Sz(30, 40) {
		t.Errorf("viewport = %v, want {30 40}", tk.viewport)
	}
}

func TestWithHostNil(t *testing.T) {
	tk := New(WithHost(nil))
	if tk.Host().ElapsedTime() != 0 {
		t.Error("nil host should behave as unregistered")
	}
}

func TestWithHostFuncs(t *testing.T) {
	calls := 0
	tk := New(WithHost(HostFuncs{ElapsedTimeFunc: func() float64 {
		calls++
		return 3
	}}))
	if got := tk.Host().ElapsedTime(); got != 3 || calls != 1 {
		t.Errorf("ElapsedTime() = %v after %d calls", got, calls)
	}
}
