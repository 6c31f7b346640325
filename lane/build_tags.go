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

import "golang.org/x/sys/cpu"

// PreferredLaneBytes reports a width, in bytes, that roughly matches the
// widest SIMD register the running CPU is known to support. It is purely
// informational: this package never reads it internally, never branches
// on it, and never swaps in an alternate code path based on it. There is
// no runtime dispatch here — every Vector instantiation is chosen at
// compile time by the caller. Callers that want to pick which alias to
// use at startup (e.g. a batch-processing job choosing between F32x4 and
// F32x8) can consult this as a hint; everyone else can ignore it.
func PreferredLaneBytes() int {
	switch {
	case cpu.X86.HasAVX512F:
		return 64
	case cpu.X86.HasAVX2:
		return 32
	case cpu.X86.HasSSE2, cpu.ARM64.HasASIMD:
		return 16
	default:
		return 8
	}
}
