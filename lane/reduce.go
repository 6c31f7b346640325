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

// HorizontalSum combines every lane of v with a balanced binary tree split
// at N/2 (rather than a left fold), so that e.g. a 4-lane vector sums as
// (v0+v1)+(v2+v3) and not ((v0+v1)+v2)+v3. This matches how the underlying
// hardware combines lanes, keeps the rounding order for float bases fixed
// regardless of N, and gives the Go compiler's own optimizer an
// associativity-friendly shape to work with instead of a dependency chain.
func HorizontalSum[B Numeric, A Arr[B]](v Vector[B, A]) B {
	return treeReduce(v.data[:], func(x, y B) B { return x + y })
}

// HorizontalProduct combines every lane of v with the same balanced-tree
// shape as HorizontalSum, but with multiplication.
func HorizontalProduct[B Numeric, A Arr[B]](v Vector[B, A]) B {
	return treeReduce(v.data[:], func(x, y B) B { return x * y })
}

// HorizontalMin returns the minimum lane of v, combined via the same
// balanced-tree shape as HorizontalSum.
func HorizontalMin[B Numeric, A Arr[B]](v Vector[B, A]) B {
	return treeReduce(v.data[:], func(x, y B) B {
		if x < y {
			return x
		}
		return y
	})
}

// HorizontalMax returns the maximum lane of v, combined via the same
// balanced-tree shape as HorizontalSum.
func HorizontalMax[B Numeric, A Arr[B]](v Vector[B, A]) B {
	return treeReduce(v.data[:], func(x, y B) B {
		if x > y {
			return x
		}
		return y
	})
}

// treeReduce combines s with op pairwise, splitting s at its midpoint and
// recursing on each half, rather than folding left to right. s must be
// nonempty; every Vector instantiation guarantees at least 2 lanes.
func treeReduce[B any](s []B, op func(x, y B) B) B {
	if len(s) == 1 {
		return s[0]
	}
	mid := len(s) / 2
	left := treeReduce(s[:mid], op)
	right := treeReduce(s[mid:], op)
	return op(left, right)
}
