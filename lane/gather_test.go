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

func TestGather(t *testing.T) {
	base := []float32{10, 20, 30, 40, 50}
	idx := New[int32, [4]int32]([4]int32{4, 0, 2, 1})

	got := Gather[float32, [4]float32](base, idx).Array()
	want := [4]float32{50, 10, 30, 20}
	if got != want {
		t.Errorf("Gather: got %v, want %v", got, want)
	}
}

func TestGatherOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Gather: expected panic for out-of-range index")
		}
	}()
	base := []float32{1, 2, 3}
	idx := New[int32, [4]int32]([4]int32{0, 1, 2, 9})
	Gather[float32, [4]float32](base, idx)
}

func TestGatherMasked(t *testing.T) {
	base := []float32{10, 20, 30}
	idx := New[int32, [4]int32]([4]int32{0, 999, 2, 999})
	mask := New[Mask32, [4]Mask32]([4]Mask32{MaskTrue32, MaskFalse32, MaskTrue32, MaskFalse32})
	fallback := Splat[float32, [4]float32](-1)

	got := GatherMasked[float32, [4]float32](base, idx, mask, fallback).Array()
	want := [4]float32{10, -1, 30, -1}
	if got != want {
		t.Errorf("GatherMasked: got %v, want %v (out-of-range indices under a FALSE mask must not be dereferenced)", got, want)
	}
}

func TestScatter(t *testing.T) {
	base := make([]float32, 5)
	idx := New[int32, [4]int32]([4]int32{4, 0, 2, 1})
	v := New[float32, [4]float32]([4]float32{1, 2, 3, 4})

	Scatter[float32, [4]float32](base, idx, v)
	want := []float32{2, 4, 3, 0, 1}
	for i := range want {
		if base[i] != want[i] {
			t.Errorf("Scatter: got %v, want %v", base, want)
			break
		}
	}
}

func TestScatterOutOfRangeLeavesBaseUntouched(t *testing.T) {
	base := []float32{1, 2, 3}
	orig := append([]float32(nil), base...)
	idx := New[int32, [4]int32]([4]int32{0, 1, 2, 9})
	v := New[float32, [4]float32]([4]float32{10, 20, 30, 40})

	func() {
		defer func() { recover() }()
		Scatter[float32, [4]float32](base, idx, v)
	}()

	for i := range orig {
		if base[i] != orig[i] {
			t.Errorf("Scatter: base was partially written before the panic: got %v, want untouched %v", base, orig)
		}
	}
}

func TestScatterMasked(t *testing.T) {
	base := []float32{1, 2, 3, 4}
	idx := New[int32, [4]int32]([4]int32{0, 999, 2, 999})
	mask := New[Mask32, [4]Mask32]([4]Mask32{MaskTrue32, MaskFalse32, MaskTrue32, MaskFalse32})
	v := New[float32, [4]float32]([4]float32{100, 200, 300, 400})

	ScatterMasked[float32, [4]float32](base, idx, mask, v)
	want := []float32{100, 2, 300, 4}
	for i := range want {
		if base[i] != want[i] {
			t.Errorf("ScatterMasked: got %v, want %v", base, want)
			break
		}
	}
}

func TestGatherMaskedWithNativeBoolMask(t *testing.T) {
	// bool is part of MaskElem alongside the width-matched integer masks;
	// GatherMasked accepts a Vector[bool, A] built by hand, with no
	// comparison needed to produce it.
	base := []float32{10, 20, 30}
	idx := New[int32, [4]int32]([4]int32{0, 999, 2, 999})
	mask := New[bool, [4]bool]([4]bool{true, false, true, false})
	fallback := Splat[float32, [4]float32](-1)

	got := GatherMasked[float32, [4]float32](base, idx, mask, fallback).Array()
	want := [4]float32{10, -1, 30, -1}
	if got != want {
		t.Errorf("GatherMasked with bool mask: got %v, want %v", got, want)
	}
}
