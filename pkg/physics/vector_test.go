// pkg/physics/vector_test.go
package physics

import (
	"math"
	"testing"
)

func TestVector2D_AddSub(t *testing.T) {
	tests := []struct {
		name    string
		v1      Vector2D
		v2      Vector2D
		wantAdd Vector2D
		wantSub Vector2D
	}{
		{
			name:    "positive_vectors",
			v1:      Vector2D{X: 3, Y: 4},
			v2:      Vector2D{X: 1, Y: 2},
			wantAdd: Vector2D{X: 4, Y: 6},
			wantSub: Vector2D{X: 2, Y: 2},
		},
		{
			name:    "mixed_signs",
			v1:      Vector2D{X: 5, Y: -3},
			v2:      Vector2D{X: -2, Y: 7},
			wantAdd: Vector2D{X: 3, Y: 4},
			wantSub: Vector2D{X: 7, Y: -10},
		},
		{
			name:    "zero_vector",
			v1:      Vector2D{},
			v2:      Vector2D{X: 5, Y: -3},
			wantAdd: Vector2D{X: 5, Y: -3},
			wantSub: Vector2D{X: -5, Y: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v1.Add(tt.v2); got != tt.wantAdd {
				t.Errorf("Add() = %v, expected %v", got, tt.wantAdd)
			}
			if got := tt.v1.Sub(tt.v2); got != tt.wantSub {
				t.Errorf("Sub() = %v, expected %v", got, tt.wantSub)
			}
		})
	}
}

func TestVector2D_Length(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		expected float64
	}{
		{"unit_x", Vector2D{X: 1}, 1},
		{"pythagorean", Vector2D{X: 3, Y: 4}, 5},
		{"zero", Vector2D{}, 0},
		{"negative_components", Vector2D{X: -3, Y: -4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Length() = %v, expected %v", got, tt.expected)
			}
			if got := tt.v.LengthSquared(); math.Abs(got-tt.expected*tt.expected) > 1e-9 {
				t.Errorf("LengthSquared() = %v, expected %v", got, tt.expected*tt.expected)
			}
		})
	}
}

func TestVector2D_NormalizeOr(t *testing.T) {
	fallback := Vector2D{X: 1}

	v := Vector2D{X: 0, Y: 10}.NormalizeOr(fallback)
	if math.Abs(v.Y-1) > 1e-9 || math.Abs(v.X) > 1e-9 {
		t.Errorf("NormalizeOr() = %v, expected unit +Y", v)
	}

	z := Vector2D{}.NormalizeOr(fallback)
	if z != fallback {
		t.Errorf("NormalizeOr() on zero vector = %v, expected fallback %v", z, fallback)
	}
}

func TestVector2D_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector2D
		normal   Vector2D
		expected Vector2D
	}{
		{
			name:     "head_on",
			v:        Vector2D{X: -5, Y: 0},
			normal:   Vector2D{X: 1, Y: 0},
			expected: Vector2D{X: 5, Y: 0},
		},
		{
			name:     "grazing",
			v:        Vector2D{X: 0, Y: 3},
			normal:   Vector2D{X: 1, Y: 0},
			expected: Vector2D{X: 0, Y: 3},
		},
		{
			name:     "diagonal",
			v:        Vector2D{X: -2, Y: 3},
			normal:   Vector2D{X: 1, Y: 0},
			expected: Vector2D{X: 2, Y: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Reflect(tt.normal)
			if math.Abs(got.X-tt.expected.X) > 1e-9 || math.Abs(got.Y-tt.expected.Y) > 1e-9 {
				t.Errorf("Reflect() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 10)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-10) > 1e-9 {
		t.Errorf("FromAngle(pi/2, 10) = %v, expected (0, 10)", v)
	}
}
