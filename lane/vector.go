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

// Vector is a fixed-size lane vector: N elements of base type B, where N is
// fixed by the concrete array type A (see [Arr]). A Vector is a value type,
// copied like any other Go array — there is no hidden allocation or
// indirection.
//
// Vector has no alignment type parameter: its type is determined by B and A
// alone, and the Align tags in align.go are not part of it. Most callers use
// the generated types in aliases_gen.go (e.g. F32x8, U8x16) instead of
// naming Vector directly.
type Vector[B any, A Arr[B]] struct {
	data A
}

// New builds a Vector directly from an array value.
func New[B any, A Arr[B]](data A) Vector[B, A] {
	return Vector[B, A]{data: data}
}

// Splat builds a Vector with every lane set to v.
func Splat[B any, A Arr[B]](v B) Vector[B, A] {
	var data A
	for i := range data {
		data[i] = v
	}
	return Vector[B, A]{data: data}
}

// Zero returns the zero-valued Vector: every lane is the zero value of B.
func Zero[B any, A Arr[B]]() Vector[B, A] {
	var data A
	return Vector[B, A]{data: data}
}

// Load builds a Vector by copying the Len() elements of s. It panics if s's
// length differs from Len(), mirroring the source this type is modeled on,
// which treats a mismatched slice length as a programmer error rather than
// something to silently pad or truncate.
func Load[B any, A Arr[B]](s []B) Vector[B, A] {
	var data A
	if len(s) != len(data) {
		panic("lane: Load: slice length differs from vector width")
	}
	copy(data[:], s)
	return Vector[B, A]{data: data}
}

// Array returns v's lanes as a plain Go array, a value copy.
func (v Vector[B, A]) Array() A {
	return v.data
}

// Len returns the number of lanes in v. It is a compile-time constant for
// any given instantiation of Vector.
func (v Vector[B, A]) Len() int {
	return len(v.data)
}

// At returns the value of lane i. It panics if i is out of range.
func (v Vector[B, A]) At(i int) B {
	return v.data[i]
}

// With returns a copy of v with lane i set to x. It panics if i is out of
// range. Vector lanes are otherwise immutable from the outside; With is the
// only way to change one.
func (v Vector[B, A]) With(i int, x B) Vector[B, A] {
	v.data[i] = x
	return v
}

// Store copies v's lanes into dst. It panics if dst's length differs from
// Len().
func (v Vector[B, A]) Store(dst []B) {
	if len(dst) != len(v.data) {
		panic("lane: Store: slice length differs from vector width")
	}
	copy(dst, v.data[:])
}

// Map returns a new Vector with f applied independently to every lane.
func Map[B any, A Arr[B]](v Vector[B, A], f func(B) B) Vector[B, A] {
	var out A
	for i, x := range v.data {
		out[i] = f(x)
	}
	return Vector[B, A]{data: out}
}

// Map2 returns a new Vector combining the lanes of a and b pairwise with f.
func Map2[B any, A Arr[B]](a, b Vector[B, A], f func(x, y B) B) Vector[B, A] {
	var out A
	for i := range a.data {
		out[i] = f(a.data[i], b.data[i])
	}
	return Vector[B, A]{data: out}
}
