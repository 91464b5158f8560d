// SPDX-License-Identifier: EPL-2.0

package wdf

import (
	"github.com/elliotchance/orderedmap/v3"

	"github.com/cheminfo/wdf-parser/block"
	"github.com/cheminfo/wdf-parser/enum"
)

// Kinds returns the kind of every block, in file order.
func (f *File) Kinds() []enum.BlockKind {
	out := make([]enum.BlockKind, len(f.Blocks))
	for i, b := range f.Blocks {
		out[i] = b.Header.Kind
	}
	return out
}

// Census counts the blocks of each kind, keyed in order of first
// appearance.
func (f *File) Census() *orderedmap.OrderedMap[enum.BlockKind, int] {
	m := orderedmap.NewOrderedMap[enum.BlockKind, int]()
	for _, b := range f.Blocks {
		n, _ := m.Get(b.Header.Kind)
		m.Set(b.Header.Kind, n+1)
	}
	return m
}

// First returns the first block of the given kind.
func (f *File) First(kind enum.BlockKind) (*block.Block, bool) {
	for i := range f.Blocks {
		if f.Blocks[i].Header.Kind == kind {
			return &f.Blocks[i], true
		}
	}
	return nil, false
}

func (f *File) Data() *block.Data {
	b, ok := f.First(enum.KindData)
	if !ok {
		return nil
	}
	d, _ := b.Body.(*block.Data)
	return d
}

func (f *File) XList() *block.AxisList {
	return f.axisList(enum.KindXList)
}

// YList is nil when the y-list was skipped for holding a single value.
func (f *File) YList() *block.AxisList {
	return f.axisList(enum.KindYList)
}

func (f *File) axisList(kind enum.BlockKind) *block.AxisList {
	b, ok := f.First(kind)
	if !ok {
		return nil
	}
	l, _ := b.Body.(*block.AxisList)
	return l
}

func (f *File) Origin() *block.Origin {
	b, ok := f.First(enum.KindOrigin)
	if !ok {
		return nil
	}
	o, _ := b.Body.(*block.Origin)
	return o
}
