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

package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	assert.Equal(t, "U32x4", name("U32", 4))
	assert.Equal(t, "M8x16", name("M8", 16))
}

func TestMaskCodeOf(t *testing.T) {
	assert.Equal(t, "M32", maskCodeOf("Mask32"))
	assert.Equal(t, "M8", maskCodeOf("Mask8"))

	assert.PanicsWithValue(t, "lanegen: unknown mask base MaskWeird", func() {
		maskCodeOf("MaskWeird")
	})
}

func TestWriteVectorTypeEmitsExpectedShape(t *testing.T) {
	var buf bytes.Buffer
	bt := baseType{"U32", "uint32", []int{4}, kindUint}
	writeVectorType(&buf, bt, 4)

	src := buf.String()
	require.Contains(t, src, "type U32x4 Vector[uint32, [4]uint32]")
	assert.Contains(t, src, "func NewU32x4(data [4]uint32) U32x4")
	assert.Contains(t, src, "func (v U32x4) Add(w U32x4) U32x4")
	assert.Contains(t, src, "func (v U32x4) BitAnd(w U32x4) U32x4")
	assert.Contains(t, src, "func (v U32x4) Eq(w U32x4) M32x4")
	assert.Contains(t, src, "func (v U32x4) BlendWith(mask M32x4, other U32x4) U32x4")
	// Unsigned bases get no Neg/Abs.
	assert.NotContains(t, src, "Neg(v.vec())")
}

func TestWriteVectorTypeFloatHasNoBitops(t *testing.T) {
	var buf bytes.Buffer
	bt := baseType{"F32", "float32", []int{4}, kindFloat}
	writeVectorType(&buf, bt, 4)

	src := buf.String()
	assert.Contains(t, src, "func (v F32x4) Neg() F32x4")
	assert.Contains(t, src, "func (v F32x4) Abs() F32x4")
	assert.NotContains(t, src, "BitAnd")
	assert.NotContains(t, src, "func (v F32x4) Shl")
}

func TestGenerationIsDeterministic(t *testing.T) {
	render := func() string {
		var buf bytes.Buffer
		writeHeader(&buf)
		for _, bt := range baseTypes {
			for _, n := range bt.widths {
				writeVectorType(&buf, bt, n)
			}
		}
		for _, mt := range maskTypes {
			for _, n := range mt.widths {
				writeMaskType(&buf, mt, n)
			}
		}
		return buf.String()
	}

	first := render()
	second := render()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("generation is not deterministic (-first +second):\n%s", diff)
	}
}

func TestWriteMaskTypeEmitsExpectedShape(t *testing.T) {
	var buf bytes.Buffer
	mt := maskType{"Mask16", "M16", []int{8}}
	writeMaskType(&buf, mt, 8)

	src := buf.String()
	assert.Contains(t, src, "type M16x8 Vector[Mask16, [8]Mask16]")
	assert.Contains(t, src, "func (v M16x8) All() bool")
	assert.Contains(t, src, "func (v M16x8) CountTrue() int")
}
