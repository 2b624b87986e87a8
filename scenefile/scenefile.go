// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scenefile loads declarative window layouts and applies them to a
// clui.Toolkit.
//
// A scene lists layers, each with an optional viewport and a set of windows.
// Windows may name a parent by id within the same layer; a window with a
// parent is positioned relative to it unless position is set to "absolute".
//
// YAML:
//
//	layers:
//	  - viewport: {width: 640, height: 480}
//	    windows:
//	      - id: panel
//	        x: 20
//	        y: 20
//	        width: 300
//	        height: 200
//	        color: "#334455"
//	      - id: button
//	        parent: panel
//	        x: 10
//	        y: 150
//	        width: 80
//	        height: 30
//	        color: "#e0a030"
//	        z: 1
//
// TOML uses the same keys with [[layers]] and [[layers.windows]] tables.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/clui"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for a file extension or Format value that
	// has no decoder.
	ErrUnknownFormat = errors.New("scenefile: unknown format")

	// ErrUnknownParent is returned when a window names a parent id that does
	// not exist in its layer.
	ErrUnknownParent = errors.New("scenefile: unknown parent")

	// ErrInvalidScene is returned for values that decode but cannot be
	// applied: malformed colors, duplicate ids, unknown position modes.
	ErrInvalidScene = errors.New("scenefile: invalid scene")
)

// Format selects the scene file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf picks the format from the extension of name.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Scene is a decoded scene file.
type Scene struct {
	Layers []Layer `yaml:"layers" toml:"layers"`
}

// Layer describes one clui.Layer.
type Layer struct {
	// Viewport overrides the toolkit default when set.
	Viewport *Size    `yaml:"viewport,omitempty" toml:"viewport,omitempty"`
	Windows  []Window `yaml:"windows" toml:"windows"`
}

// Size is a viewport size in pixels.
type Size struct {
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`
}

// Window describes one clui.Window.
type Window struct {
	ID     string  `yaml:"id,omitempty" toml:"id,omitempty"`
	Parent string  `yaml:"parent,omitempty" toml:"parent,omitempty"`
	X      float32 `yaml:"x" toml:"x"`
	Y      float32 `yaml:"y" toml:"y"`
	Width  float32 `yaml:"width" toml:"width"`
	Height float32 `yaml:"height" toml:"height"`

	// Color is a hex color as accepted by clui.Hex. Empty means transparent.
	Color string `yaml:"color,omitempty" toml:"color,omitempty"`
	Z     int32  `yaml:"z,omitempty" toml:"z,omitempty"`

	// Position is "absolute" or "relative". Empty selects relative when
	// Parent is set and absolute otherwise.
	Position string `yaml:"position,omitempty" toml:"position,omitempty"`
}

// Parse decodes and validates a scene. Unknown keys are errors.
func Parse(data []byte, f Format) (*Scene, error) {
	s := &Scene{}
	switch f {
	case FormatYAML:
		if err := decodeStrictYAML(data, s); err != nil {
			return nil, fmt.Errorf("scenefile: decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), s)
		if err != nil {
			return nil, fmt.Errorf("scenefile: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("scenefile: decode toml: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Load reads and parses the scene file at path, choosing the format from
// its extension.
func Load(path string) (*Scene, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: %w", err)
	}
	return Parse(data, f)
}

// LoadHost reads name through the host file loader and parses it.
func LoadHost(h clui.Host, name string) (*Scene, error) {
	f, err := FormatOf(name)
	if err != nil {
		return nil, err
	}
	data, err := h.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %q: %w", name, err)
	}
	return Parse(data, f)
}

func decodeStrictYAML(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}
