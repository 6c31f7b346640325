// Copyright 2025 lanevec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lane

import "testing"

func TestArithOps(t *testing.T) {
	a := New[int32, [4]int32]([4]int32{10, 20, 30, 40})
	b := New[int32, [4]int32]([4]int32{1, 2, 3, 4})

	tests := []struct {
		name string
		got  [4]int32
		want [4]int32
	}{
		{"Add", Add(a, b).Array(), [4]int32{11, 22, 33, 44}},
		{"Sub", Sub(a, b).Array(), [4]int32{9, 18, 27, 36}},
		{"Mul", Mul(a, b).Array(), [4]int32{10, 40, 90, 160}},
		{"Div", Div(a, b).Array(), [4]int32{10, 10, 10, 10}},
		{"Rem", Rem(a, New[int32, [4]int32]([4]int32{3, 7, 11, 13})).Array(), [4]int32{1, 6, 8, 1}},
		{"Min", Min(a, b).Array(), [4]int32{1, 2, 3, 4}},
		{"Max", Max(a, b).Array(), [4]int32{10, 20, 30, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestNeg(t *testing.T) {
	v := New[int32, [4]int32]([4]int32{1, -2, 3, -4})
	got := Neg(v).Array()
	want := [4]int32{-1, 2, -3, 4}
	if got != want {
		t.Errorf("Neg: got %v, want %v", got, want)
	}
}

func TestAbs(t *testing.T) {
	v := New[int32, [4]int32]([4]int32{1, -2, 3, -4})
	got := Abs(v).Array()
	want := [4]int32{1, 2, 3, 4}
	if got != want {
		t.Errorf("Abs: got %v, want %v", got, want)
	}
}

func TestBitwiseOps(t *testing.T) {
	a := New[uint8, [4]uint8]([4]uint8{0b1100, 0b1010, 0b1111, 0b0000})
	b := New[uint8, [4]uint8]([4]uint8{0b1010, 0b1100, 0b0000, 0b1111})

	if got, want := BitAnd(a, b).Array(), [4]uint8{0b1000, 0b1000, 0, 0}; got != want {
		t.Errorf("BitAnd: got %v, want %v", got, want)
	}
	if got, want := BitOr(a, b).Array(), [4]uint8{0b1110, 0b1110, 0b1111, 0b1111}; got != want {
		t.Errorf("BitOr: got %v, want %v", got, want)
	}
	if got, want := BitXor(a, b).Array(), [4]uint8{0b0110, 0b0110, 0b1111, 0b1111}; got != want {
		t.Errorf("BitXor: got %v, want %v", got, want)
	}
	if got, want := Not(New[uint8, [2]uint8]([2]uint8{0, 0xFF})).Array(), [2]uint8{0xFF, 0}; got != want {
		t.Errorf("Not: got %v, want %v", got, want)
	}
}

func TestShifts(t *testing.T) {
	v := New[uint32, [4]uint32]([4]uint32{1, 2, 4, 8})
	bits := Splat[uint32, [4]uint32](2)

	if got, want := Shl(v, bits).Array(), [4]uint32{4, 8, 16, 32}; got != want {
		t.Errorf("Shl: got %v, want %v", got, want)
	}
	if got, want := Shr(v, bits).Array(), [4]uint32{0, 0, 1, 2}; got != want {
		t.Errorf("Shr: got %v, want %v", got, want)
	}
}

func TestFma(t *testing.T) {
	a := New[float32, [4]float32]([4]float32{1, 2, 3, 4})
	b := New[float32, [4]float32]([4]float32{2, 2, 2, 2})
	c := New[float32, [4]float32]([4]float32{1, 1, 1, 1})

	got := Fma(a, b, c).Array()
	want := [4]float32{3, 5, 7, 9}
	if got != want {
		t.Errorf("Fma: got %v, want %v", got, want)
	}
}

func TestFmaIntegerBase(t *testing.T) {
	a := New[int32, [2]int32]([2]int32{3, 4})
	b := New[int32, [2]int32]([2]int32{5, 6})
	c := New[int32, [2]int32]([2]int32{1, 1})

	got := Fma(a, b, c).Array()
	want := [2]int32{16, 25}
	if got != want {
		t.Errorf("Fma: got %v, want %v", got, want)
	}
}
