// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WallVertexShader is the vertex shader for the folding wall.
//
//go:embed wall.vert
var WallVertexShader string

// WallFragmentShader is the fragment shader for the folding wall.
//
//go:embed wall.frag
var WallFragmentShader string

// BackdropVertexShader is the vertex shader for the gradient backdrop.
//
//go:embed backdrop.vert
var BackdropVertexShader string

// BackdropFragmentShader is the fragment shader for the gradient backdrop.
//
//go:embed backdrop.frag
var BackdropFragmentShader string

// LineVertexShader is the vertex shader for debug line rendering.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader is the fragment shader for debug line rendering.
//
//go:embed line.frag
var LineFragmentShader string

// HUDVertexShader is the vertex shader for HUD quads.
//
//go:embed hud.vert
var HUDVertexShader string

// HUDFragmentShader is the fragment shader for HUD quads.
//
//go:embed hud.frag
var HUDFragmentShader string
