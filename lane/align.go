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

// Align is a tag type naming a target alignment in bytes. Go has no
// equivalent of #[repr(align(N))]: a Go array's alignment is always that of
// its element type, so no Align tag changes the memory layout of a Vector.
// [Vector] does not take an Align type parameter, so two vectors of the
// same base type and lane count have the same type whatever alignment a
// caller has in mind; the tags here are standalone values that nothing else
// in this package consumes.
type Align interface {
	Bytes() int
	name() string
}

// Align16 tags a [Vector] as targeting 16-byte (128-bit, SSE/NEON-class)
// alignment.
type Align16 struct{}

func (Align16) Bytes() int   { return 16 }
func (Align16) name() string { return "16" }

// Align32 tags a [Vector] as targeting 32-byte (256-bit, AVX2-class)
// alignment.
type Align32 struct{}

func (Align32) Bytes() int   { return 32 }
func (Align32) name() string { return "32" }

// Align64 tags a [Vector] as targeting 64-byte (512-bit, AVX-512/SVE-class)
// alignment.
type Align64 struct{}

func (Align64) Bytes() int   { return 64 }
func (Align64) name() string { return "64" }

// Natural tags a [Vector] as carrying no alignment requirement beyond its
// base type's natural alignment. The generated types in aliases_gen.go do
// not reference it or any other Align tag.
type Natural struct{}

func (Natural) Bytes() int   { return 0 }
func (Natural) name() string { return "natural" }
