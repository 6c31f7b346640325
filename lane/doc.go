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

// Package lane provides fixed-size, strongly-aligned numeric "lane vectors"
// and the slice-vectorization adapter used to stream them out of (and back
// into) ordinary slices.
//
// This package does not emit any SIMD instruction itself. Instead it
// structures code — fixed trip counts, array types instead of slices inside
// the hot loop, no aliasing, no partial-lane branches — so that the Go
// compiler has the invariants it would need to unroll and pack the
// resulting operations, on whatever architectures and builds its backend
// supports that for. Whether that actually happens is the compiler's
// business, not this package's; benchmark before relying on it.
//
// # Vectors
//
// [Vector] is a generic value type holding exactly N elements of a base
// type B, laid out identically to [N]B. Concrete, commonly used
// instantiations are predeclared in this package as named types, e.g.
// [F32x8] (8 lanes of float32) or [U32x4] (4 lanes of uint32); see
// aliases_gen.go for the full table. All arithmetic is lane-wise and
// expressed as methods, since Go has no operator overloading:
//
//	a := lane.NewU32x4([4]uint32{1, 2, 3, 4})
//	b := lane.SplatU32x4(10)
//	c := a.Add(b) // [11, 12, 13, 14]
//
// # Masks
//
// Comparisons (Eq, Lt, ...) return a mask vector: lane i is all-ones if the
// comparison held, all-zeros otherwise. Masks drive Blend, GatherMasked and
// ScatterMasked. See mask.go.
//
// # Vectorizing slices
//
// Rather than hand-chunk a slice into vectors, slices are adapted with
// [Vectorize] / [VectorizePad] (read) and [VectorizeMut] / [VectorizeMutPad]
// (write-back). These produce an [Iter] that yields one lane vector per
// step, or a [MutIter] that yields one write-back [Proxy] per step, with a
// final padded item from the Pad forms when the slice length isn't a
// multiple of the lane count.
package lane
