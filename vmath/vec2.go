package vmath

import "math"

// Vec2 is a continuous position or offset in grid units
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the euclidean magnitude
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the heading of v in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Cell returns the grid cell containing v (floor of each component)
func (v Vec2) Cell() (x, y int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// FromAngle returns a vector of length mag pointing along angle
func FromAngle(angle, mag float64) Vec2 {
	return Vec2{math.Cos(angle) * mag, math.Sin(angle) * mag}
}

// Center returns the center point of cell (x, y)
func Center(x, y int) Vec2 {
	return Vec2{float64(x) + 0.5, float64(y) + 0.5}
}

// Distance returns euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
