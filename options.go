package clui

import "github.com/gogpu/clui/geom"

// DefaultViewport is the viewport given to new layers unless WithViewport
// overrides it.
var DefaultViewport = geom.Sz(800, 600)

// Option configures a Toolkit during creation.
//
// Example:
//
//	tk := clui.New(
//	    clui.WithHost(platformHost),
//	    clui.WithViewport(1280, 720),
//	)
type Option func(*options)

// options holds optional configuration for Toolkit creation.
type options struct {
	host     Host
	viewport geom.Size
}

// defaultOptions returns the default toolkit options.
func defaultOptions() options {
	return options{
		host:     nil, // no callbacks until the host registers them
		viewport: DefaultViewport,
	}
}

// WithHost injects the platform callbacks. Individual callbacks can later be
// replaced with the Set*Handler methods.
func WithHost(h Host) Option {
	return func(o *options) {
		o.host = h
	}
}

// WithViewport sets the initial viewport of layers created by the toolkit.
func WithViewport(width, height geom.Scalar) Option {
	return func(o *options) {
		o.viewport = geom.Sz(width, height)
	}
}
