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

import "testing"

func TestHorizontalSum(t *testing.T) {
	v := New[int32, [8]int32]([8]int32{1, 2, 3, 4, 5, 6, 7, 8})
	if got, want := HorizontalSum(v), int32(36); got != want {
		t.Errorf("HorizontalSum: got %v, want %v", got, want)
	}
}

func TestHorizontalProduct(t *testing.T) {
	v := New[int32, [4]int32]([4]int32{1, 2, 3, 4})
	if got, want := HorizontalProduct(v), int32(24); got != want {
		t.Errorf("HorizontalProduct: got %v, want %v", got, want)
	}
}

func TestHorizontalMinMax(t *testing.T) {
	v := New[int32, [4]int32]([4]int32{5, 1, 9, 3})
	if got, want := HorizontalMin(v), int32(1); got != want {
		t.Errorf("HorizontalMin: got %v, want %v", got, want)
	}
	if got, want := HorizontalMax(v), int32(9); got != want {
		t.Errorf("HorizontalMax: got %v, want %v", got, want)
	}
}

func TestTreeReduceShape(t *testing.T) {
	// A non-commutative op makes the tree-vs-left-fold grouping visible:
	// left fold of (((1-2)-3)-4) = -8; tree ((1-2)-(3-4)) = (-1)-(-1) = 0.
	v := New[int32, [4]int32]([4]int32{1, 2, 3, 4})
	got := treeReduce(v.data[:], func(x, y int32) int32 { return x - y })
	if want := int32(0); got != want {
		t.Errorf("treeReduce: got %v, want %v (balanced-tree grouping)", got, want)
	}
}
