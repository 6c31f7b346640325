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

// Proxy is a mutable, write-back view of one lane vector's worth of a
// slice, produced by [VectorizeMut] / [VectorizeMutPad]. The source this
// package is modeled on used a Drop impl to copy the (possibly modified)
// lanes back to the slice automatically when the borrow went out of scope;
// Go has no destructors, so that write-back is instead the explicit
// Commit method below. Callers are expected to `defer p.Commit()`
// immediately after obtaining a Proxy, which is the same "do the cleanup
// right after acquiring the resource" idiom Go code already uses for
// files and locks.
//
// A Proxy that is never committed silently drops whatever was written to
// it; there is no finalizer to catch the mistake, so forgetting the defer
// is a correctness bug, not a leak.
type Proxy[B any, A Arr[B]] struct {
	data A
	dst  []B
}

// At returns the current value of lane i.
func (p *Proxy[B, A]) At(i int) B {
	return p.data[i]
}

// Set overwrites lane i with x. The change is only visible to the
// underlying slice once Commit is called.
func (p *Proxy[B, A]) Set(i int, x B) {
	p.data[i] = x
}

// Len returns the number of addressable lanes in p. For the final item of
// a padded mutable vectorization, this is the full lane width even though
// only the first few lanes correspond to real slice elements — see
// RealLen.
func (p *Proxy[B, A]) Len() int {
	return len(p.data)
}

// RealLen returns the number of lanes in p that are backed by real slice
// elements and will actually be written back on Commit. It equals Len()
// except for the padded tail item of a VectorizeMutPad iteration.
func (p *Proxy[B, A]) RealLen() int {
	return len(p.dst)
}

// Vector returns the proxy's current lanes as an ordinary, independent
// Vector value.
func (p *Proxy[B, A]) Vector() Vector[B, A] {
	return Vector[B, A]{data: p.data}
}

// SetVector overwrites every lane of p from v.
func (p *Proxy[B, A]) SetVector(v Vector[B, A]) {
	p.data = v.data
}

// Commit writes p's real lanes (see RealLen) back to the underlying slice.
// It is idempotent; calling it more than once just re-copies the same
// values.
func (p *Proxy[B, A]) Commit() {
	copy(p.dst, p.data[:len(p.dst)])
}
