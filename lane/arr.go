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

// Arr constrains the second type parameter of [Vector]: it must be a fixed
// size array of B. Go has no const generics, so the lane count N is not a
// type parameter in its own right; instead each supported N is named
// explicitly here as one array-type arm, and a [Vector][B, Arr] is only
// ever instantiated at one of these widths. len(Arr{}) is then a compile
// time constant the Go compiler can fold and unroll against, which is the
// whole point of fixing N ahead of time.
//
// 2, 4, 8, 16 and 32 lanes are supported, matching the widest registers in
// common use (AVX-512 / SVE at 32 lanes of a 16-bit base, or 8 lanes of a
// 64-bit base). Wider (or other) array lengths do not satisfy Arr, so an
// instantiation such as Vector[B, [64]B] does not compile.
type Arr[B any] interface {
	~[2]B | ~[4]B | ~[8]B | ~[16]B | ~[32]B
}
