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

func TestVectorize2(t *testing.T) {
	a := []int32{1, 2, 3, 4}
	b := []int32{10, 20, 30, 40}
	it := Vectorize2[int32, [4]int32](a, b)

	if got, want := it.Len(), 1; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	x, y, ok := it.Next()
	if !ok {
		t.Fatal("expected an item")
	}
	if got, want := Add(x, y).Array(), [4]int32{11, 22, 33, 44}; got != want {
		t.Errorf("Add(x,y): got %v, want %v", got, want)
	}
	if _, _, ok := it.Next(); ok {
		t.Error("expected exhausted iterator")
	}
}

func TestVectorize2MismatchedLengthsPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for mismatched slice lengths")
		}
	}()
	Vectorize2[int32, [4]int32]([]int32{1, 2, 3, 4}, []int32{1, 2, 3})
}

func TestVectorize3(t *testing.T) {
	a := []float32{1, 2}
	b := []float32{3, 4}
	c := []float32{5, 6}
	it := Vectorize3[float32, [2]float32](a, b, c)

	x, y, z, ok := it.Next()
	if !ok {
		t.Fatal("expected an item")
	}
	sum := Add(Add(x, y), z).Array()
	if want := [2]float32{9, 12}; sum != want {
		t.Errorf("sum: got %v, want %v", sum, want)
	}
}

func TestVectorize4(t *testing.T) {
	a := []int32{1, 1}
	b := []int32{2, 2}
	c := []int32{3, 3}
	d := []int32{4, 4}
	it := Vectorize4[int32, [2]int32](a, b, c, d)

	w, x, y, z, ok := it.Next()
	if !ok {
		t.Fatal("expected an item")
	}
	sum := Add(Add(w, x), Add(y, z)).Array()
	if want := [2]int32{10, 10}; sum != want {
		t.Errorf("sum: got %v, want %v", sum, want)
	}
}

func TestVectorizeSlices(t *testing.T) {
	slices := [][]int32{
		{1, 2, 3, 4},
		{10, 20, 30, 40},
		{100, 200, 300, 400},
	}
	it := VectorizeSlices[int32, [4]int32](slices)

	var out []Vector[int32, [4]int32]
	batch, ok := it.Next(out)
	if !ok {
		t.Fatal("expected a batch")
	}
	if len(batch) != 3 {
		t.Fatalf("batch length: got %d, want 3", len(batch))
	}
	if got, want := batch[0].Array(), [4]int32{1, 2, 3, 4}; got != want {
		t.Errorf("batch[0]: got %v, want %v", got, want)
	}
	if got, want := batch[2].Array(), [4]int32{100, 200, 300, 400}; got != want {
		t.Errorf("batch[2]: got %v, want %v", got, want)
	}

	if _, ok := it.Next(out); ok {
		t.Error("expected exhausted iterator")
	}
}
