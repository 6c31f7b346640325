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

// Vectorize2, Vectorize3 and Vectorize4 walk two, three or four
// same-length slices in lockstep, yielding a tuple of lane vectors per
// step. The source this package is modeled on generates these for tuple
// arities up to 8 with a macro; Go has neither macros nor variadic
// generics, so only the arities actually useful for typical reductions
// (pairs, triples, quads — e.g. zipping x/y/z coordinate slices) are
// hand-written. A caller needing more inputs can always drive several
// matched [Iter] values side by side instead.
//
// All input slices must have the same length. VectorizePad2/3/4 accept a
// pad vector per slice instead and pick up any remainder the same way
// [VectorizePad] does.

// Vectorize2 walks a and b in lockstep. It panics if they differ in
// length, or if that length is not a multiple of the lane count.
func Vectorize2[B any, A Arr[B]](a, b []B) *TupleIter2[B, A] {
	mustSameLen(len(a), len(b))
	return &TupleIter2[B, A]{a: Vectorize[B, A](a), b: Vectorize[B, A](b)}
}

// VectorizePad2 is the padded counterpart of Vectorize2.
func VectorizePad2[B any, A Arr[B]](a, b []B, padA, padB Vector[B, A]) *TupleIter2[B, A] {
	mustSameLen(len(a), len(b))
	return &TupleIter2[B, A]{a: VectorizePad(a, padA), b: VectorizePad(b, padB)}
}

// TupleIter2 yields matched lane vectors from two slices at a time.
type TupleIter2[B any, A Arr[B]] struct {
	a, b *Iter[B, A]
}

// Next returns the next pair of lane vectors, or ok=false if exhausted.
func (it *TupleIter2[B, A]) Next() (a, b Vector[B, A], ok bool) {
	a, ok = it.a.Next()
	if !ok {
		return Vector[B, A]{}, Vector[B, A]{}, false
	}
	b, _ = it.b.Next()
	return a, b, true
}

// Len returns the number of pairs remaining.
func (it *TupleIter2[B, A]) Len() int { return it.a.Len() }

// Vectorize3 walks a, b and c in lockstep. It panics if they differ in
// length, or if that length is not a multiple of the lane count.
func Vectorize3[B any, A Arr[B]](a, b, c []B) *TupleIter3[B, A] {
	mustSameLen(len(a), len(b), len(c))
	return &TupleIter3[B, A]{a: Vectorize[B, A](a), b: Vectorize[B, A](b), c: Vectorize[B, A](c)}
}

// VectorizePad3 is the padded counterpart of Vectorize3.
func VectorizePad3[B any, A Arr[B]](a, b, c []B, padA, padB, padC Vector[B, A]) *TupleIter3[B, A] {
	mustSameLen(len(a), len(b), len(c))
	return &TupleIter3[B, A]{a: VectorizePad(a, padA), b: VectorizePad(b, padB), c: VectorizePad(c, padC)}
}

// TupleIter3 yields matched lane vectors from three slices at a time.
type TupleIter3[B any, A Arr[B]] struct {
	a, b, c *Iter[B, A]
}

// Next returns the next triple of lane vectors, or ok=false if exhausted.
func (it *TupleIter3[B, A]) Next() (a, b, c Vector[B, A], ok bool) {
	a, ok = it.a.Next()
	if !ok {
		return Vector[B, A]{}, Vector[B, A]{}, Vector[B, A]{}, false
	}
	b, _ = it.b.Next()
	c, _ = it.c.Next()
	return a, b, c, true
}

// Len returns the number of triples remaining.
func (it *TupleIter3[B, A]) Len() int { return it.a.Len() }

// Vectorize4 walks a, b, c and d in lockstep. It panics if they differ in
// length, or if that length is not a multiple of the lane count.
func Vectorize4[B any, A Arr[B]](a, b, c, d []B) *TupleIter4[B, A] {
	mustSameLen(len(a), len(b), len(c), len(d))
	return &TupleIter4[B, A]{a: Vectorize[B, A](a), b: Vectorize[B, A](b), c: Vectorize[B, A](c), d: Vectorize[B, A](d)}
}

// VectorizePad4 is the padded counterpart of Vectorize4.
func VectorizePad4[B any, A Arr[B]](a, b, c, d []B, padA, padB, padC, padD Vector[B, A]) *TupleIter4[B, A] {
	mustSameLen(len(a), len(b), len(c), len(d))
	return &TupleIter4[B, A]{
		a: VectorizePad(a, padA),
		b: VectorizePad(b, padB),
		c: VectorizePad(c, padC),
		d: VectorizePad(d, padD),
	}
}

// TupleIter4 yields matched lane vectors from four slices at a time.
type TupleIter4[B any, A Arr[B]] struct {
	a, b, c, d *Iter[B, A]
}

// Next returns the next quadruple of lane vectors, or ok=false if
// exhausted.
func (it *TupleIter4[B, A]) Next() (a, b, c, d Vector[B, A], ok bool) {
	a, ok = it.a.Next()
	if !ok {
		return Vector[B, A]{}, Vector[B, A]{}, Vector[B, A]{}, Vector[B, A]{}, false
	}
	b, _ = it.b.Next()
	c, _ = it.c.Next()
	d, _ = it.d.Next()
	return a, b, c, d, true
}

// Len returns the number of quadruples remaining.
func (it *TupleIter4[B, A]) Len() int { return it.a.Len() }

func mustSameLen(ns ...int) {
	for _, n := range ns[1:] {
		if n != ns[0] {
			panic("lane: vectorized slices must have the same length")
		}
	}
}

// VectorizeSlices adapts a ragged set of same-length slices into an
// iterator of fixed-width vector batches, one per input slice, for the
// cases where the arity isn't known until runtime (the source this
// package is modeled on caps tuple arity at a fixed constant via macro
// expansion; this covers the "up to 16 inputs" case from the other end,
// with a length check instead of a compile-time arity).
// VectorizeSlices panics if the slices differ in length or that length
// is not a multiple of the lane count.
func VectorizeSlices[B any, A Arr[B]](slices [][]B) *SliceSetIter[B, A] {
	if len(slices) == 0 {
		panic("lane: VectorizeSlices: no slices given")
	}
	iters := make([]*Iter[B, A], len(slices))
	for i, s := range slices {
		mustSameLen(len(slices[0]), len(s))
		iters[i] = Vectorize[B, A](s)
	}
	return &SliceSetIter[B, A]{iters: iters}
}

// SliceSetIter yields one lane vector per input slice on each step, for a
// runtime-determined number of slices.
type SliceSetIter[B any, A Arr[B]] struct {
	iters []*Iter[B, A]
}

// Next returns the next batch of lane vectors (one per input slice), or
// ok=false if exhausted. The returned slice is reused on the next call to
// Next and should be copied if the caller needs to retain it.
func (it *SliceSetIter[B, A]) Next(out []Vector[B, A]) ([]Vector[B, A], bool) {
	out = out[:0]
	v, ok := it.iters[0].Next()
	if !ok {
		return out, false
	}
	out = append(out, v)
	for _, sub := range it.iters[1:] {
		v, _ := sub.Next()
		out = append(out, v)
	}
	return out, true
}

// Len returns the number of batches remaining.
func (it *SliceSetIter[B, A]) Len() int { return it.iters[0].Len() }
