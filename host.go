package clui

// Host is the set of platform services a toolkit may rely on: a clock,
// a log sink and a file loader.
//
// The core never calls these itself. They are stored so that drawing and
// text subsystems built on top of a Toolkit can query time or load
// resources without depending on a concrete platform. Implementations may
// block; callers must not assume otherwise.
type Host interface {
	// ElapsedTime returns seconds since an arbitrary fixed point.
	ElapsedTime() float64

	// LogMessage hands msg to the host and reports whether it was accepted.
	LogMessage(msg string) bool

	// ReadFile returns the contents of the named resource.
	ReadFile(name string) ([]byte, error)
}

// HostFuncs adapts plain functions to the Host interface.
// A nil function behaves as an unregistered handler: ElapsedTime returns 0,
// LogMessage returns false and ReadFile returns ErrNoHandler.
type HostFuncs struct {
	ElapsedTimeFunc func() float64
	LogMessageFunc  func(msg string) bool
	ReadFileFunc    func(name string) ([]byte, error)
}

var _ Host = HostFuncs{}

// ElapsedTime calls ElapsedTimeFunc.
func (h HostFuncs) ElapsedTime() float64 {
	if h.ElapsedTimeFunc == nil {
		return 0
	}
	return h.ElapsedTimeFunc()
}

// LogMessage calls LogMessageFunc.
func (h HostFuncs) LogMessage(msg string) bool {
	if h.LogMessageFunc == nil {
		return false
	}
	return h.LogMessageFunc(msg)
}

// ReadFile calls ReadFileFunc.
func (h HostFuncs) ReadFile(name string) ([]byte, error) {
	if h.ReadFileFunc == nil {
		return nil, ErrNoHandler
	}
	return h.ReadFileFunc(name)
}

// hostFuncsOf splits h into its methods so they can be replaced one by one.
func hostFuncsOf(h Host) HostFuncs {
	if h == nil {
		return HostFuncs{}
	}
	if f, ok := h.(HostFuncs); ok {
		return f
	}
	return HostFuncs{
		ElapsedTimeFunc: h.ElapsedTime,
		LogMessageFunc:  h.LogMessage,
		ReadFileFunc:    h.ReadFile,
	}
}
