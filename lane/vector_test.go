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

func TestNewAndArray(t *testing.T) {
	v := New[uint32, [4]uint32]([4]uint32{1, 2, 3, 4})
	if v.Array() != [4]uint32{1, 2, 3, 4} {
		t.Errorf("Array: got %v", v.Array())
	}
}

func TestSplat(t *testing.T) {
	v := Splat[float32, [8]float32](3.5)
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != 3.5 {
			t.Errorf("Splat: lane %d: got %v, want 3.5", i, v.At(i))
		}
	}
}

func TestZero(t *testing.T) {
	v := Zero[int32, [4]int32]()
	for i := 0; i < v.Len(); i++ {
		if v.At(i) != 0 {
			t.Errorf("Zero: lane %d: got %v, want 0", i, v.At(i))
		}
	}
}

func TestLoad(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		v := Load[uint8, [4]uint8]([]uint8{10, 20, 30, 40})
		if v.Array() != [4]uint8{10, 20, 30, 40} {
			t.Errorf("Load: got %v", v.Array())
		}
	})

	t.Run("longer slice panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Load: expected panic for oversized slice")
			}
		}()
		Load[uint8, [2]uint8]([]uint8{1, 2, 3, 4})
	})

	t.Run("shorter slice panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Load: expected panic for undersized slice")
			}
		}()
		Load[uint8, [4]uint8]([]uint8{1, 2})
	})
}

func TestWithAndAt(t *testing.T) {
	v := Zero[int16, [4]int16]()
	v = v.With(2, 99)

	if got := v.At(2); got != 99 {
		t.Errorf("With/At: got %v, want 99", got)
	}
	if got := v.At(0); got != 0 {
		t.Errorf("With/At: lane 0 should be untouched, got %v", got)
	}
}

func TestStore(t *testing.T) {
	t.Run("exact length", func(t *testing.T) {
		v := New[int32, [4]int32]([4]int32{7, 8, 9, 10})
		dst := make([]int32, 4)
		v.Store(dst)
		if dst[0] != 7 || dst[1] != 8 || dst[2] != 9 || dst[3] != 10 {
			t.Errorf("Store: got %v", dst)
		}
	})

	t.Run("shorter slice panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Store: expected panic for undersized destination")
			}
		}()
		New[int32, [4]int32]([4]int32{1, 2, 3, 4}).Store(make([]int32, 3))
	})

	t.Run("longer slice panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Store: expected panic for oversized destination")
			}
		}()
		New[int32, [4]int32]([4]int32{1, 2, 3, 4}).Store(make([]int32, 5))
	})
}

func TestMap(t *testing.T) {
	v := New[int32, [4]int32]([4]int32{1, 2, 3, 4})
	got := Map(v, func(x int32) int32 { return x * x })
	want := [4]int32{1, 4, 9, 16}
	if got.Array() != want {
		t.Errorf("Map: got %v, want %v", got.Array(), want)
	}
}

func TestMap2(t *testing.T) {
	a := New[int32, [4]int32]([4]int32{1, 2, 3, 4})
	b := New[int32, [4]int32]([4]int32{10, 20, 30, 40})
	got := Map2(a, b, func(x, y int32) int32 { return x + y })
	want := [4]int32{11, 22, 33, 44}
	if got.Array() != want {
		t.Errorf("Map2: got %v, want %v", got.Array(), want)
	}
}
