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

// Signed is the set of signed integer base types a lane vector may hold,
// including the pointer-width int (Go's nearest equivalent of isize).
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Unsigned is the set of unsigned integer base types a lane vector may hold,
// including the pointer-width uint (Go's nearest equivalent of usize).
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integer is the set of all integer base types. Go's fixed-width integers
// already wrap silently on overflow, so there is no separate "wrapping"
// base type or alias anywhere in this package — a plain Integer already
// has the wrapping behavior a "checked"-less language needs.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point base types. Float16 and BFloat16 are
// deliberately absent: Go has no native half-precision float, and backing
// one with a uint16-and-conversion-functions struct would mean every
// arithmetic method falls back to manual bit-twiddling instead of a native
// Go operator, which defeats the point of a lane type. See DESIGN.md.
type Float interface {
	~float32 | ~float64
}

// Numeric is the full sealed registry of base types a [Vector] may be
// instantiated over: every signed and unsigned integer width from 8 to 64
// bits, plus float32 and float64. 128-bit integers are not part of the
// registry; Go has no native 128-bit integer type, and a struct-based
// emulation would need the same manual-arithmetic fallback as Float16
// above. See DESIGN.md.
type Numeric interface {
	Integer | Float
}

// Bool is the base type backing boolean mask lanes outside of the
// width-matched integer masks in mask.go; it exists for parity with
// scalar boolean reduction (see the Bool methods of Mask8 ... MaskSize).
// A Vector[bool, A] is accepted wherever a mask is (see MaskElem), but
// bool is not part of Numeric, so no arithmetic is defined over it.
type Bool = bool
