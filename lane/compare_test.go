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

func TestComparisons(t *testing.T) {
	a := New[int32, [4]int32]([4]int32{1, 2, 3, 4})
	b := New[int32, [4]int32]([4]int32{2, 2, 2, 2})

	tests := []struct {
		name string
		got  [4]Mask32
		want [4]Mask32
	}{
		{"Eq", Eq[int32, [4]int32, Mask32, [4]Mask32](a, b, MaskTrue32, MaskFalse32).Array(),
			[4]Mask32{MaskFalse32, MaskTrue32, MaskFalse32, MaskFalse32}},
		{"Ne", Ne[int32, [4]int32, Mask32, [4]Mask32](a, b, MaskTrue32, MaskFalse32).Array(),
			[4]Mask32{MaskTrue32, MaskFalse32, MaskTrue32, MaskTrue32}},
		{"Lt", Lt[int32, [4]int32, Mask32, [4]Mask32](a, b, MaskTrue32, MaskFalse32).Array(),
			[4]Mask32{MaskTrue32, MaskFalse32, MaskFalse32, MaskFalse32}},
		{"Le", Le[int32, [4]int32, Mask32, [4]Mask32](a, b, MaskTrue32, MaskFalse32).Array(),
			[4]Mask32{MaskTrue32, MaskTrue32, MaskFalse32, MaskFalse32}},
		{"Gt", Gt[int32, [4]int32, Mask32, [4]Mask32](a, b, MaskTrue32, MaskFalse32).Array(),
			[4]Mask32{MaskFalse32, MaskFalse32, MaskTrue32, MaskTrue32}},
		{"Ge", Ge[int32, [4]int32, Mask32, [4]Mask32](a, b, MaskTrue32, MaskFalse32).Array(),
			[4]Mask32{MaskFalse32, MaskTrue32, MaskTrue32, MaskTrue32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	mask := New[Mask32, [4]Mask32]([4]Mask32{MaskTrue32, MaskFalse32, MaskTrue32, MaskFalse32})
	ifTrue := New[int32, [4]int32]([4]int32{1, 2, 3, 4})
	ifFalse := New[int32, [4]int32]([4]int32{10, 20, 30, 40})

	got := Blend(mask, ifTrue, ifFalse).Array()
	want := [4]int32{1, 20, 3, 40}
	if got != want {
		t.Errorf("Blend: got %v, want %v", got, want)
	}
}
