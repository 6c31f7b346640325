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

// Gather, Scatter and their masked variants panic on an out-of-range index
// rather than silently skipping or zero-filling the offending lane. An
// out-of-range index is a programmer error (a precondition violation), and
// this package's convention — shared with Load/Store — is to fail loudly
// and before any partial effect, not to paper over it.

// Gather builds a Vector by reading base[indices[i]] into lane i, for every
// i. It panics if any index is out of range for base.
func Gather[B any, A Arr[B], I Integer, IA Arr[I]](base []B, indices Vector[I, IA]) Vector[B, A] {
	var out A
	for i, idx := range indices.data {
		j := int(idx)
		if j < 0 || j >= len(base) {
			panic("lane: Gather: index out of range")
		}
		out[i] = base[j]
	}
	return Vector[B, A]{data: out}
}

// GatherMasked is like Gather, but lane i is only read (and validated)
// when mask lane i is TRUE; lanes where the mask is FALSE take their value
// from fallback instead, and their index is never dereferenced.
func GatherMasked[B any, A Arr[B], I Integer, IA Arr[I], M MaskElem, MA Arr[M]](base []B, indices Vector[I, IA], mask Vector[M, MA], fallback Vector[B, A]) Vector[B, A] {
	var out A
	fd := fallback.data
	for i, idx := range indices.data {
		if !MaskBoolAt(mask, i) {
			out[i] = fd[i]
			continue
		}
		j := int(idx)
		if j < 0 || j >= len(base) {
			panic("lane: GatherMasked: index out of range")
		}
		out[i] = base[j]
	}
	return Vector[B, A]{data: out}
}

// Scatter writes v.At(i) to base[indices[i]] for every i. Every index is
// validated before any write takes place, so a single out-of-range index
// leaves base entirely untouched rather than partially written.
func Scatter[B any, A Arr[B], I Integer, IA Arr[I]](base []B, indices Vector[I, IA], v Vector[B, A]) {
	for _, idx := range indices.data {
		j := int(idx)
		if j < 0 || j >= len(base) {
			panic("lane: Scatter: index out of range")
		}
	}
	for i, idx := range indices.data {
		base[int(idx)] = v.data[i]
	}
}

// ScatterMasked is like Scatter, but lane i is only written (and its index
// only validated) when mask lane i is TRUE.
func ScatterMasked[B any, A Arr[B], I Integer, IA Arr[I], M MaskElem, MA Arr[M]](base []B, indices Vector[I, IA], mask Vector[M, MA], v Vector[B, A]) {
	for i, idx := range indices.data {
		if !MaskBoolAt(mask, i) {
			continue
		}
		j := int(idx)
		if j < 0 || j >= len(base) {
			panic("lane: ScatterMasked: index out of range")
		}
	}
	for i, idx := range indices.data {
		if !MaskBoolAt(mask, i) {
			continue
		}
		base[int(idx)] = v.data[i]
	}
}
