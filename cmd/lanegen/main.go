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

// Command lanegen writes lane/aliases_gen.go: the concrete, named lane
// vector and mask types, and the per-type methods that forward to the
// generic free functions in the lane package. It plays the same role for
// this package that cmd/hwygen played for its C-derived SIMD backends:
// where that tool transpiled per-architecture C intrinsics into Go, this
// one expands a short table of (base type, lane counts) pairs into
// Go's nearest equivalent of per-instantiation impl blocks, since a
// generic method can't be narrowed to one instantiation the way a Rust
// impl<T> block can.
//
// Usage:
//
//	go run ./cmd/lanegen -out lane/aliases_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/tools/imports"
)

type kind int

const (
	kindUint kind = iota
	kindInt
	kindFloat
)

type baseType struct {
	code   string
	goType string
	widths []int
	kind   kind
}

var baseTypes = []baseType{
	{"U8", "uint8", []int{16, 32}, kindUint},
	{"U16", "uint16", []int{8, 16}, kindUint},
	{"U32", "uint32", []int{4, 8}, kindUint},
	{"U64", "uint64", []int{2, 4}, kindUint},
	{"I8", "int8", []int{16, 32}, kindInt},
	{"I16", "int16", []int{8, 16}, kindInt},
	{"I32", "int32", []int{4, 8}, kindInt},
	{"I64", "int64", []int{2, 4}, kindInt},
	{"F32", "float32", []int{4, 8}, kindFloat},
	{"F64", "float64", []int{2, 4}, kindFloat},
	// IPtr/UPtr back spec.md's isize/usize bases with Go's int/uint. Their
	// width is platform-dependent in general, but every architecture this
	// package targets (amd64, arm64) has a 64-bit int/uint, so they use the
	// 64-bit lane counts, with their own MaskSize mask (see maskOf) rather
	// than Mask64; see DESIGN.md.
	{"IPtr", "int", []int{2, 4}, kindInt},
	{"UPtr", "uint", []int{2, 4}, kindUint},
}

type maskType struct {
	goType string // Mask8, Mask16, Mask32, Mask64, MaskSize
	code   string // M8, M16, M32, M64, MSize
	widths []int
}

var maskTypes = []maskType{
	{"Mask8", "M8", []int{16, 32}},
	{"Mask16", "M16", []int{8, 16}},
	{"Mask32", "M32", []int{4, 8}},
	{"Mask64", "M64", []int{2, 4}},
	// MaskSize backs the pointer-width IPtr/UPtr bases; kept distinct from
	// Mask64 even though they share a representation on this package's
	// supported architectures (amd64, arm64). See DESIGN.md.
	{"MaskSize", "MSize", []int{2, 4}},
}

var maskOf = map[string]string{
	"uint8": "Mask8", "int8": "Mask8",
	"uint16": "Mask16", "int16": "Mask16",
	"uint32": "Mask32", "int32": "Mask32", "float32": "Mask32",
	"uint64": "Mask64", "int64": "Mask64", "float64": "Mask64",
	"uint": "MaskSize", "int": "MaskSize",
}

func main() {
	out := flag.String("out", "lane/aliases_gen.go", "output file path")
	flag.Parse()

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

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("lanegen: formatting generated source: %v", err)
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("lanegen: writing %s: %v", *out, err)
	}
}

func writeHeader(w *bytes.Buffer) {
	fmt.Fprint(w, `// Copyright 2025 lanevec Authors
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

// Code generated by cmd/lanegen; DO NOT EDIT BY HAND.

package lane

`)
}

func name(code string, n int) string {
	return fmt.Sprintf("%sx%d", code, n)
}

func writeVectorType(w *bytes.Buffer, bt baseType, n int) {
	nm := name(bt.code, n)
	g := bt.goType
	maskBase := maskOf[g]
	mname := name(maskCodeOf(maskBase), n)

	fmt.Fprintf(w, "type %s Vector[%s, [%d]%s]\n\n", nm, g, n, g)
	fmt.Fprintf(w, "func New%s(data [%d]%s) %s { return %s(New[%s, [%d]%s](data)) }\n\n", nm, n, g, nm, nm, g, n, g)
	fmt.Fprintf(w, "func Splat%s(v %s) %s { return %s(Splat[%s, [%d]%s](v)) }\n\n", nm, g, nm, nm, g, n, g)
	fmt.Fprintf(w, "func Zero%s() %s { return %s(Zero[%s, [%d]%s]()) }\n\n", nm, nm, nm, g, n, g)
	fmt.Fprintf(w, "func Load%s(s []%s) %s { return %s(Load[%s, [%d]%s](s)) }\n\n", nm, g, nm, nm, g, n, g)
	fmt.Fprintf(w, "func (v %s) vec() Vector[%s, [%d]%s] { return Vector[%s, [%d]%s](v) }\n\n", nm, g, n, g, g, n, g)
	fmt.Fprintf(w, "func (v %s) Len() int { return v.vec().Len() }\n\n", nm)
	fmt.Fprintf(w, "func (v %s) At(i int) %s { return v.vec().At(i) }\n\n", nm, g)
	fmt.Fprintf(w, "func (v %s) With(i int, x %s) %s { return %s(v.vec().With(i, x)) }\n\n", nm, g, nm, nm)
	fmt.Fprintf(w, "func (v %s) Store(dst []%s) { v.vec().Store(dst) }\n\n", nm, g)
	fmt.Fprintf(w, "func (v %s) Array() [%d]%s { return v.vec().Array() }\n\n", nm, n, g)

	for _, op := range []string{"Add", "Sub", "Mul", "Div"} {
		fmt.Fprintf(w, "func (v %s) %s(w %s) %s { return %s(%s(v.vec(), w.vec())) }\n\n", nm, op, nm, nm, nm, op)
	}
	fmt.Fprintf(w, "func (v %s) Min(w %s) %s { return %s(Min(v.vec(), w.vec())) }\n\n", nm, nm, nm, nm)
	fmt.Fprintf(w, "func (v %s) Max(w %s) %s { return %s(Max(v.vec(), w.vec())) }\n\n", nm, nm, nm, nm)
	if bt.kind == kindFloat {
		fmt.Fprintf(w, "func (v %s) Fma(w, x %s) %s { return %s(Fma(v.vec(), w.vec(), x.vec())) }\n\n", nm, nm, nm, nm)
	}

	if bt.kind != kindFloat {
		for _, op := range []string{"Rem", "BitAnd", "BitOr", "BitXor"} {
			fmt.Fprintf(w, "func (v %s) %s(w %s) %s { return %s(%s(v.vec(), w.vec())) }\n\n", nm, op, nm, nm, nm, op)
		}
		fmt.Fprintf(w, "func (v %s) Not() %s { return %s(Not(v.vec())) }\n\n", nm, nm, nm)
		fmt.Fprintf(w, "func (v %s) Shl(bits %s) %s { return %s(Shl(v.vec(), bits.vec())) }\n\n", nm, nm, nm, nm)
		fmt.Fprintf(w, "func (v %s) Shr(bits %s) %s { return %s(Shr(v.vec(), bits.vec())) }\n\n", nm, nm, nm, nm)
	}
	if bt.kind != kindUint {
		fmt.Fprintf(w, "func (v %s) Neg() %s { return %s(Neg(v.vec())) }\n\n", nm, nm, nm)
		fmt.Fprintf(w, "func (v %s) Abs() %s { return %s(Abs(v.vec())) }\n\n", nm, nm, nm)
	}

	fmt.Fprintf(w, "func (v %s) HorizontalSum() %s { return HorizontalSum(v.vec()) }\n\n", nm, g)
	fmt.Fprintf(w, "func (v %s) HorizontalProduct() %s { return HorizontalProduct(v.vec()) }\n\n", nm, g)
	fmt.Fprintf(w, "func (v %s) HorizontalMin() %s { return HorizontalMin(v.vec()) }\n\n", nm, g)
	fmt.Fprintf(w, "func (v %s) HorizontalMax() %s { return HorizontalMax(v.vec()) }\n\n", nm, g)

	for _, c := range []string{"Eq", "Ne", "Lt", "Le", "Gt", "Ge"} {
		fmt.Fprintf(w, "func (v %s) %s(w %s) %s {\n\treturn %s(%s[%s, [%d]%s, %s, [%d]%s](v.vec(), w.vec(), MaskTrue%s, MaskFalse%s))\n}\n\n",
			nm, c, nm, mname, mname, c, g, n, g, maskBase, n, maskBase, strings.TrimPrefix(maskBase, "Mask"), strings.TrimPrefix(maskBase, "Mask"))
	}

	// BlendWith follows the mask: mask lane TRUE takes other, FALSE keeps self.
	fmt.Fprintf(w, "func (v %s) BlendWith(mask %s, other %s) %s {\n\treturn %s(Blend[%s, [%d]%s, %s, [%d]%s](Vector[%s, [%d]%s](mask), other.vec(), v.vec()))\n}\n\n",
		nm, mname, nm, nm, nm, g, n, g, maskBase, n, maskBase, maskBase, n, maskBase)
}

func maskCodeOf(goType string) string {
	for _, mt := range maskTypes {
		if mt.goType == goType {
			return mt.code
		}
	}
	panic("lanegen: unknown mask base " + goType)
}

func writeMaskType(w *bytes.Buffer, mt maskType, n int) {
	nm := name(mt.code, n)
	g := mt.goType
	fmt.Fprintf(w, "type %s Vector[%s, [%d]%s]\n\n", nm, g, n, g)
	fmt.Fprintf(w, "func (v %s) vec() Vector[%s, [%d]%s] { return Vector[%s, [%d]%s](v) }\n\n", nm, g, n, g, g, n, g)
	fmt.Fprintf(w, "func (v %s) Len() int { return v.vec().Len() }\n\n", nm)
	fmt.Fprintf(w, "func (v %s) Not() %s { return %s(Not(v.vec())) }\n\n", nm, nm, nm)
	fmt.Fprintf(w, "func (v %s) And(w %s) %s { return %s(BitAnd(v.vec(), w.vec())) }\n\n", nm, nm, nm, nm)
	fmt.Fprintf(w, "func (v %s) Or(w %s) %s { return %s(BitOr(v.vec(), w.vec())) }\n\n", nm, nm, nm, nm)
	fmt.Fprintf(w, "func (v %s) Xor(w %s) %s { return %s(BitXor(v.vec(), w.vec())) }\n\n", nm, nm, nm, nm)
	fmt.Fprintf(w, "func (v %s) All() bool { return MaskAll(v.vec()) }\n\n", nm)
	fmt.Fprintf(w, "func (v %s) Any() bool { return MaskAny(v.vec()) }\n\n", nm)
	fmt.Fprintf(w, "func (v %s) CountTrue() int { return MaskCountTrue(v.vec()) }\n\n", nm)
	fmt.Fprintf(w, "func (v %s) At(i int) bool { return MaskBoolAt(v.vec(), i) }\n\n", nm)
}
