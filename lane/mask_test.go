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

func TestMaskBoolRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   bool
	}{
		{"true", true},
		{"false", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromBoolMask8(tt.in).Bool(); got != tt.in {
				t.Errorf("Mask8 round trip: got %v, want %v", got, tt.in)
			}
			if got := FromBoolMask16(tt.in).Bool(); got != tt.in {
				t.Errorf("Mask16 round trip: got %v, want %v", got, tt.in)
			}
			if got := FromBoolMask32(tt.in).Bool(); got != tt.in {
				t.Errorf("Mask32 round trip: got %v, want %v", got, tt.in)
			}
			if got := FromBoolMask64(tt.in).Bool(); got != tt.in {
				t.Errorf("Mask64 round trip: got %v, want %v", got, tt.in)
			}
		})
	}
}

func TestMaskAllAnyCount(t *testing.T) {
	t.Run("all true", func(t *testing.T) {
		v := Splat[Mask32, [4]Mask32](MaskTrue32)
		if !MaskAll(v) {
			t.Error("MaskAll: want true")
		}
		if !MaskAny(v) {
			t.Error("MaskAny: want true")
		}
		if got := MaskCountTrue(v); got != 4 {
			t.Errorf("MaskCountTrue: got %d, want 4", got)
		}
	})

	t.Run("all false", func(t *testing.T) {
		v := Splat[Mask32, [4]Mask32](MaskFalse32)
		if MaskAll(v) {
			t.Error("MaskAll: want false")
		}
		if MaskAny(v) {
			t.Error("MaskAny: want false")
		}
		if got := MaskCountTrue(v); got != 0 {
			t.Errorf("MaskCountTrue: got %d, want 0", got)
		}
	})

	t.Run("mixed", func(t *testing.T) {
		v := New[Mask32, [4]Mask32]([4]Mask32{MaskTrue32, MaskFalse32, MaskTrue32, MaskFalse32})
		if MaskAll(v) {
			t.Error("MaskAll: want false")
		}
		if !MaskAny(v) {
			t.Error("MaskAny: want true")
		}
		if got := MaskCountTrue(v); got != 2 {
			t.Errorf("MaskCountTrue: got %d, want 2", got)
		}
	})
}

func TestMaskBoolAt(t *testing.T) {
	v := New[Mask16, [4]Mask16]([4]Mask16{MaskTrue16, MaskFalse16, MaskTrue16, MaskFalse16})
	for i, want := range []bool{true, false, true, false} {
		if got := MaskBoolAt(v, i); got != want {
			t.Errorf("MaskBoolAt(%d): got %v, want %v", i, got, want)
		}
	}
}

func TestMaskBitwise(t *testing.T) {
	a := New[Mask8, [2]Mask8]([2]Mask8{MaskTrue8, MaskFalse8})
	b := New[Mask8, [2]Mask8]([2]Mask8{MaskTrue8, MaskTrue8})

	if got, want := BitAnd(a, b).Array(), [2]Mask8{MaskTrue8, MaskFalse8}; got != want {
		t.Errorf("mask BitAnd: got %v, want %v", got, want)
	}
	if got, want := BitOr(a, b).Array(), [2]Mask8{MaskTrue8, MaskTrue8}; got != want {
		t.Errorf("mask BitOr: got %v, want %v", got, want)
	}
	if got, want := Not(a).Array(), [2]Mask8{MaskFalse8, MaskTrue8}; got != want {
		t.Errorf("mask Not: got %v, want %v", got, want)
	}
}
