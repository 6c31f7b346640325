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

func TestU32x4MinMax(t *testing.T) {
	a := NewU32x4([4]uint32{1, 4, 8, 9})
	b := NewU32x4([4]uint32{3, 3, 5, 11})

	if got, want := a.Min(b).Array(), [4]uint32{1, 3, 5, 9}; got != want {
		t.Errorf("Min: got %v, want %v", got, want)
	}
	if got, want := a.Max(b).Array(), [4]uint32{3, 4, 8, 11}; got != want {
		t.Errorf("Max: got %v, want %v", got, want)
	}
}

func TestF32x4Arithmetic(t *testing.T) {
	a := NewF32x4([4]float32{1, 2, 3, 4})
	b := SplatF32x4(10)

	if got, want := a.Add(b).Array(), [4]float32{11, 12, 13, 14}; got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Neg().Array(), [4]float32{-1, -2, -3, -4}; got != want {
		t.Errorf("Neg: got %v, want %v", got, want)
	}
}

func TestI32x4Comparison(t *testing.T) {
	a := NewI32x4([4]int32{1, 2, 3, 4})
	b := SplatI32x4(3)

	mask := a.Lt(b)
	if got, want := mask.CountTrue(), 2; got != want {
		t.Errorf("CountTrue: got %d, want %d", got, want)
	}

	blended := a.BlendWith(mask, SplatI32x4(-1))
	if got, want := blended.Array(), [4]int32{-1, -1, 3, 4}; got != want {
		t.Errorf("BlendWith: got %v, want %v", got, want)
	}
}

func TestU8x16BitwiseAndShift(t *testing.T) {
	a := NewU8x16([16]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	ones := SplatU8x16(1)

	got := a.Shl(ones).At(0)
	if want := uint8(2); got != want {
		t.Errorf("Shl: got %v, want %v", got, want)
	}

	if got, want := a.BitAnd(SplatU8x16(1)).At(1), uint8(0); got != want {
		t.Errorf("BitAnd: got %v, want %v", got, want)
	}
}

func TestF64x2HorizontalReduce(t *testing.T) {
	v := NewF64x2([2]float64{3, 4})
	if got, want := v.HorizontalSum(), 7.0; got != want {
		t.Errorf("HorizontalSum: got %v, want %v", got, want)
	}
	if got, want := v.HorizontalProduct(), 12.0; got != want {
		t.Errorf("HorizontalProduct: got %v, want %v", got, want)
	}
}

func TestIPtrx4ArithmeticAndCompare(t *testing.T) {
	a := NewIPtrx4([4]int{1, -2, 3, -4})
	b := SplatIPtrx4(1)

	if got, want := a.Add(b).Array(), [4]int{2, -1, 4, -3}; got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Abs().Array(), [4]int{1, 2, 3, 4}; got != want {
		t.Errorf("Abs: got %v, want %v", got, want)
	}

	mask := a.Lt(SplatIPtrx4(0))
	if got, want := mask.CountTrue(), 2; got != want {
		t.Errorf("Lt/CountTrue: got %d, want %d", got, want)
	}
}

func TestUPtrx2BitwiseAndHorizontalSum(t *testing.T) {
	a := NewUPtrx2([2]uint{6, 3})
	ones := SplatUPtrx2(1)

	if got, want := a.BitAnd(ones).Array(), [2]uint{0, 1}; got != want {
		t.Errorf("BitAnd: got %v, want %v", got, want)
	}
	if got, want := a.HorizontalSum(), uint(9); got != want {
		t.Errorf("HorizontalSum: got %v, want %v", got, want)
	}
}

func TestMSizex4Predicates(t *testing.T) {
	m := MSizex4(New[MaskSize, [4]MaskSize]([4]MaskSize{MaskTrueSize, MaskFalseSize, MaskTrueSize, MaskTrueSize}))
	if m.All() {
		t.Error("All: want false")
	}
	if got, want := m.CountTrue(), 3; got != want {
		t.Errorf("CountTrue: got %d, want %d", got, want)
	}
}

func TestM32x4Predicates(t *testing.T) {
	m := M32x4(New[Mask32, [4]Mask32]([4]Mask32{MaskTrue32, MaskTrue32, MaskFalse32, MaskTrue32}))
	if m.All() {
		t.Error("All: want false")
	}
	if !m.Any() {
		t.Error("Any: want true")
	}
	if got, want := m.CountTrue(), 3; got != want {
		t.Errorf("CountTrue: got %d, want %d", got, want)
	}
	if got, want := m.Not().CountTrue(), 1; got != want {
		t.Errorf("Not: CountTrue got %d, want %d", got, want)
	}
}
