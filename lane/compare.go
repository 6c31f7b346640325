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

// Comparisons need a "companion" mask vector type whose element width
// matches the base type being compared, but whose element type (Mask8,
// Mask16, ...) is otherwise unrelated to B. Go generic functions can't
// introduce that relationship implicitly — there's no associated-type
// mechanism like the Rust trait this package's design is modeled on uses —
// so M and its backing array MA are explicit, independent type parameters
// here. aliases_gen.go's per-alias Eq/Lt/... methods close over the right
// M/MA for each B so callers never have to spell this out themselves.

// Eq returns a mask with lane i TRUE iff a.At(i) == b.At(i).
func Eq[B comparable, A Arr[B], M MaskElem, MA Arr[M]](a, b Vector[B, A], mtrue, mfalse M) Vector[M, MA] {
	var out MA
	ad, bd := a.data, b.data
	for i := range ad {
		if ad[i] == bd[i] {
			out[i] = mtrue
		} else {
			out[i] = mfalse
		}
	}
	return Vector[M, MA]{data: out}
}

// Ne returns a mask with lane i TRUE iff a.At(i) != b.At(i).
func Ne[B comparable, A Arr[B], M MaskElem, MA Arr[M]](a, b Vector[B, A], mtrue, mfalse M) Vector[M, MA] {
	var out MA
	ad, bd := a.data, b.data
	for i := range ad {
		if ad[i] != bd[i] {
			out[i] = mtrue
		} else {
			out[i] = mfalse
		}
	}
	return Vector[M, MA]{data: out}
}

// Lt returns a mask with lane i TRUE iff a.At(i) < b.At(i).
func Lt[B Numeric, A Arr[B], M MaskElem, MA Arr[M]](a, b Vector[B, A], mtrue, mfalse M) Vector[M, MA] {
	var out MA
	ad, bd := a.data, b.data
	for i := range ad {
		if ad[i] < bd[i] {
			out[i] = mtrue
		} else {
			out[i] = mfalse
		}
	}
	return Vector[M, MA]{data: out}
}

// Le returns a mask with lane i TRUE iff a.At(i) <= b.At(i).
func Le[B Numeric, A Arr[B], M MaskElem, MA Arr[M]](a, b Vector[B, A], mtrue, mfalse M) Vector[M, MA] {
	var out MA
	ad, bd := a.data, b.data
	for i := range ad {
		if ad[i] <= bd[i] {
			out[i] = mtrue
		} else {
			out[i] = mfalse
		}
	}
	return Vector[M, MA]{data: out}
}

// Gt returns a mask with lane i TRUE iff a.At(i) > b.At(i).
func Gt[B Numeric, A Arr[B], M MaskElem, MA Arr[M]](a, b Vector[B, A], mtrue, mfalse M) Vector[M, MA] {
	var out MA
	ad, bd := a.data, b.data
	for i := range ad {
		if ad[i] > bd[i] {
			out[i] = mtrue
		} else {
			out[i] = mfalse
		}
	}
	return Vector[M, MA]{data: out}
}

// Ge returns a mask with lane i TRUE iff a.At(i) >= b.At(i).
func Ge[B Numeric, A Arr[B], M MaskElem, MA Arr[M]](a, b Vector[B, A], mtrue, mfalse M) Vector[M, MA] {
	var out MA
	ad, bd := a.data, b.data
	for i := range ad {
		if ad[i] >= bd[i] {
			out[i] = mtrue
		} else {
			out[i] = mfalse
		}
	}
	return Vector[M, MA]{data: out}
}

// Blend selects lane i from ifTrue where mask lane i is TRUE, and from
// ifFalse otherwise. mask must have the same lane count as ifTrue and
// ifFalse; this is enforced by construction (MA and A have the same
// length for any alias pairing aliases_gen.go actually generates) rather
// than checked at runtime.
func Blend[B any, A Arr[B], M MaskElem, MA Arr[M]](mask Vector[M, MA], ifTrue, ifFalse Vector[B, A]) Vector[B, A] {
	var out A
	td, fd := ifTrue.data, ifFalse.data
	for i := range td {
		if MaskBoolAt(mask, i) {
			out[i] = td[i]
		} else {
			out[i] = fd[i]
		}
	}
	return Vector[B, A]{data: out}
}
