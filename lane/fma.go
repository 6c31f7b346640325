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

import "math"

// fusedMulAdd computes x*y + z for a single generic lane. Float64 routes
// through math.FMA for a single correctly-rounded result; float32 widens to
// float64, where the product is exact and the sum is rounded to odd, so the
// conversion back to float32 is a single correct rounding of x*y + z (there
// is no math.FMA32).
// Integer bases have no separate fused form; x*y + z is already exact
// modulo the usual wraparound, so it is computed directly.
func fusedMulAdd[B Numeric](x, y, z B) B {
	switch v := any(x).(type) {
	case float64:
		return any(math.FMA(v, any(y).(float64), any(z).(float64))).(B)
	case float32:
		p, w := float64(v)*float64(any(y).(float32)), float64(any(z).(float32))
		s := p + w
		t := s - p
		if e := (p - (s - t)) + (w - t); (e > 0 || e < 0) && math.Float64bits(s)&1 == 0 {
			s = math.Nextafter(s, math.Copysign(math.Inf(1), e))
		}
		return any(float32(s)).(B)
	default:
		return x*y + z
	}
}
