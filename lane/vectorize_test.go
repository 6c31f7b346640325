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

func TestVectorizeExact(t *testing.T) {
	s := []uint16{1, 2, 3, 4, 5, 6, 7, 8}
	it := Vectorize[uint16, [4]uint16](s)

	if got, want := it.Len(), 2; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	v1, ok := it.Next()
	if !ok || v1.Array() != [4]uint16{1, 2, 3, 4} {
		t.Errorf("first chunk: got %v, ok=%v", v1.Array(), ok)
	}
	v2, ok := it.Next()
	if !ok || v2.Array() != [4]uint16{5, 6, 7, 8} {
		t.Errorf("second chunk: got %v, ok=%v", v2.Array(), ok)
	}
	if _, ok := it.Next(); ok {
		t.Error("expected exhausted iterator")
	}
	// Fused: calling Next again must keep reporting false, not panic.
	if _, ok := it.Next(); ok {
		t.Error("expected iterator to stay exhausted (fused)")
	}
}

func TestVectorizeNonMultiplePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for slice length not a multiple of the lane width")
		}
	}()
	Vectorize[uint16, [4]uint16]([]uint16{1, 2, 3})
}

func TestVectorizePadSum(t *testing.T) {
	// 11 elements over 4-lane u16 vectors: two full chunks plus one
	// partial, padded with zero. Sum should equal sum(1..=11) = 66.
	s := make([]uint16, 11)
	for i := range s {
		s[i] = uint16(i + 1)
	}
	it := VectorizePad[uint16, [4]uint16](s, Zero[uint16, [4]uint16]())

	if got, want := it.Len(), 3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}

	var total uint16
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		total += HorizontalSum(v)
	}
	if want := uint16(66); total != want {
		t.Errorf("sum: got %d, want %d", total, want)
	}
}

func TestVectorizePadDoubleEndedYieldsPartialFirstFromBack(t *testing.T) {
	s := []uint32{1, 2, 3, 4, 5}
	it := VectorizePad[uint32, [4]uint32](s, Zero[uint32, [4]uint32]())

	last, ok := it.NextBack()
	if !ok {
		t.Fatal("NextBack: expected an item")
	}
	want := [4]uint32{5, 0, 0, 0}
	if last.Array() != want {
		t.Errorf("NextBack: padded tail should come first from the back: got %v, want %v", last.Array(), want)
	}

	first, ok := it.Next()
	if !ok || first.Array() != [4]uint32{1, 2, 3, 4} {
		t.Errorf("Next: got %v, ok=%v", first.Array(), ok)
	}

	if _, ok := it.Next(); ok {
		t.Error("expected exhausted iterator")
	}
}

func TestVectorizeCountLastNth(t *testing.T) {
	s := []int32{1, 2, 3, 4, 5, 6, 7, 8}

	t.Run("Count", func(t *testing.T) {
		it := Vectorize[int32, [4]int32](s)
		if got, want := it.Count(), 2; got != want {
			t.Errorf("Count: got %d, want %d", got, want)
		}
		if _, ok := it.Next(); ok {
			t.Error("Count should consume the iterator")
		}
	})

	t.Run("Last", func(t *testing.T) {
		it := Vectorize[int32, [4]int32](s)
		v, ok := it.Last()
		if !ok || v.Array() != [4]int32{5, 6, 7, 8} {
			t.Errorf("Last: got %v, ok=%v", v.Array(), ok)
		}
	})

	t.Run("Nth", func(t *testing.T) {
		it := Vectorize[int32, [4]int32](s)
		v, ok := it.Nth(1)
		if !ok || v.Array() != [4]int32{5, 6, 7, 8} {
			t.Errorf("Nth(1): got %v, ok=%v", v.Array(), ok)
		}
		if _, ok := it.Next(); ok {
			t.Error("Nth should consume everything up to and including its result")
		}
	})
}

func TestVectorizeAll(t *testing.T) {
	s := []int32{1, 2, 3, 4, 5, 6}
	it := VectorizePad[int32, [2]int32](s, Zero[int32, [2]int32]())

	var chunks [][2]int32
	for v := range it.All() {
		chunks = append(chunks, v.Array())
	}
	want := [][2]int32{{1, 2}, {3, 4}, {5, 6}}
	if len(chunks) != len(want) {
		t.Fatalf("All: got %d chunks, want %d", len(chunks), len(want))
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("All: chunk %d: got %v, want %v", i, chunks[i], want[i])
		}
	}
}

func TestVectorizeMutIncrement(t *testing.T) {
	s := make([]uint32, 33)
	for i := range s {
		s[i] = uint32(i)
	}

	it := VectorizeMutPad[uint32, [8]uint32](s, Splat[uint32, [8]uint32](0))
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		for i := 0; i < p.Len(); i++ {
			p.Set(i, p.At(i)+1)
		}
		p.Commit()
	}

	for i, v := range s {
		if want := uint32(i + 1); v != want {
			t.Errorf("s[%d]: got %d, want %d", i, v, want)
		}
	}
}

func TestMutIterCountLastNth(t *testing.T) {
	newIter := func() *MutIter[int32, [4]int32] {
		s := make([]int32, 8)
		for i := range s {
			s[i] = int32(i)
		}
		return VectorizeMut[int32, [4]int32](s)
	}

	t.Run("Count", func(t *testing.T) {
		it := newIter()
		if got, want := it.Count(), 2; got != want {
			t.Errorf("Count: got %d, want %d", got, want)
		}
		if _, ok := it.Next(); ok {
			t.Error("Count should consume the iterator")
		}
	})

	t.Run("Last", func(t *testing.T) {
		it := newIter()
		p, ok := it.Last()
		if !ok || p.Vector().Array() != [4]int32{4, 5, 6, 7} {
			t.Errorf("Last: got %v, ok=%v", p.Vector().Array(), ok)
		}
		if _, ok := it.Next(); ok {
			t.Error("Last should consume the iterator")
		}
	})

	t.Run("Nth", func(t *testing.T) {
		it := newIter()
		p, ok := it.Nth(1)
		if !ok || p.Vector().Array() != [4]int32{4, 5, 6, 7} {
			t.Errorf("Nth(1): got %v, ok=%v", p.Vector().Array(), ok)
		}
		if _, ok := it.Next(); ok {
			t.Error("Nth should consume everything up to and including its result")
		}
	})
}

func TestVectorizeMutPadOnlyCommitsRealLanes(t *testing.T) {
	s := []uint32{1, 2, 3}
	it := VectorizeMutPad[uint32, [4]uint32](s, Splat[uint32, [4]uint32](0xDEAD))

	p, ok := it.Next()
	if !ok {
		t.Fatal("expected one partial item")
	}
	if got, want := p.RealLen(), 3; got != want {
		t.Errorf("RealLen: got %d, want %d", got, want)
	}
	if got, want := p.Len(), 4; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}

	for i := 0; i < p.Len(); i++ {
		p.Set(i, p.At(i)*10)
	}
	p.Commit()

	want := []uint32{10, 20, 30}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("s[%d]: got %d, want %d", i, s[i], want[i])
		}
	}
}
