// SPDX-License-Identifier: MIT

// Package transform: functional configuration for the coordinate
// conventions. This file defines:
//   - Handedness and ClipRange enums,
//   - documented defaults (constants),
//   - WithX constructors that panic on values outside the enums,
//   - gatherOptions helper (internal).
package transform

import "fmt"

// Handedness selects the orientation of view space.
type Handedness int

const (
	// RightHanded looks down -Z with +Y up (OpenGL convention).
	RightHanded Handedness = iota
	// LeftHanded looks down +Z with +Y up (Direct3D convention).
	LeftHanded
)

// ClipRange selects the depth range of normalized device coordinates.
type ClipRange int

const (
	// NegativeOneToOne maps near..far to -1..1 (OpenGL).
	NegativeOneToOne ClipRange = iota
	// ZeroToOne maps near..far to 0..1 (Direct3D, Vulkan, Metal).
	ZeroToOne
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultHandedness is used when no WithHandedness option is given.
	DefaultHandedness = RightHanded

	// DefaultClipRange is used when no WithClipRange option is given.
	DefaultClipRange = NegativeOneToOne
)

const (
	panicHandednessInvalid = "transform: WithHandedness: unknown handedness %d"
	panicClipRangeInvalid  = "transform: WithClipRange: unknown clip range %d"
)

// String returns the constant name, or Handedness(n) for unknown values.
func (h Handedness) String() string {
	switch h {
	case RightHanded:
		return "RightHanded"
	case LeftHanded:
		return "LeftHanded"
	default:
		return fmt.Sprintf("Handedness(%d)", int(h))
	}
}

// String returns the constant name, or ClipRange(n) for unknown values.
func (c ClipRange) String() string {
	switch c {
	case NegativeOneToOne:
		return "NegativeOneToOne"
	case ZeroToOne:
		return "ZeroToOne"
	default:
		return fmt.Sprintf("ClipRange(%d)", int(c))
	}
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on values outside the declared enums.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	handedness Handedness // DefaultHandedness
	clipRange  ClipRange  // DefaultClipRange
}

// WithHandedness selects the view-space orientation.
//
// Errors:
//   - Panics with a stable message when h is neither RightHanded nor LeftHanded.
func WithHandedness(h Handedness) Option {
	if h != RightHanded && h != LeftHanded {
		panic(fmt.Sprintf(panicHandednessInvalid, int(h)))
	}
	return func(o *Options) { o.handedness = h }
}

// WithClipRange selects the depth range produced by projections and
// consumed by Project/Unproject.
//
// Errors:
//   - Panics with a stable message when c is neither NegativeOneToOne nor ZeroToOne.
func WithClipRange(c ClipRange) Option {
	if c != NegativeOneToOne && c != ZeroToOne {
		panic(fmt.Sprintf(panicClipRangeInvalid, int(c)))
	}
	return func(o *Options) { o.clipRange = c }
}

// gatherOptions applies user setters over the defaults in order
// (last writer wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		handedness: DefaultHandedness,
		clipRange:  DefaultClipRange,
	}
	for _, set := range user {
		set(&o)
	}
	return o
}

// Handedness reports the resolved view-space orientation.
func (o Options) Handedness() Handedness { return o.handedness }

// ClipRange reports the resolved depth range.
func (o Options) ClipRange() ClipRange { return o.clipRange }

// Resolve returns the effective configuration for opts. It lets callers
// that build their own matrices honour the same conventions.
func Resolve(opts ...Option) Options { return gatherOptions(opts...) }
