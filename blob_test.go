package rdat_test

import (
	"encoding/binary"

	"github.com/gpulab/rdat"
)

// u32s encodes values as little-endian u32s.
func u32s(vals ...uint32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return buf
}

// noRow is the wire-format sentinel for a function record that carries
// no index row.
const noRow uint32 = 0xFFFFFFFF

type testResource struct {
	class      rdat.ResourceClass
	kind       rdat.ResourceKind
	id         uint32
	space      uint32
	lowerBound uint32
	upperBound uint32
	name       uint32
	flags      uint32
}

type testFunction struct {
	name          uint32
	unmangledName uint32
	resources     uint32
	dependencies  uint32
	shaderKind    rdat.ShaderKind
	payloadSize   uint32
	attributeSize uint32
	featureLow    uint32
	featureHigh   uint32
	stageFlag     uint32
	minTarget     uint32
}

// blobBuilder assembles well-formed runtime data blobs for tests. The
// four tables are always emitted, in string, index, resource, function
// order, with offsets relative to the start of the blob.
type blobBuilder struct {
	strings   []byte
	index     []uint32
	resources []testResource
	functions []testFunction
}

// addString interns s and returns its byte offset.
func (b *blobBuilder) addString(s string) uint32 {
	off := uint32(len(b.strings))
	b.strings = append(b.strings, s...)
	b.strings = append(b.strings, 0)
	return off
}

// addIndexRow appends a [count, elems...] row and returns its row
// reference (the element offset of the count field).
func (b *blobBuilder) addIndexRow(elems ...uint32) uint32 {
	ref := uint32(len(b.index))
	b.index = append(b.index, uint32(len(elems)))
	b.index = append(b.index, elems...)
	return ref
}

func (b *blobBuilder) addResource(r testResource) uint32 {
	b.resources = append(b.resources, r)
	return uint32(len(b.resources) - 1)
}

func (b *blobBuilder) addFunction(f testFunction) uint32 {
	b.functions = append(b.functions, f)
	return uint32(len(b.functions) - 1)
}

func (b *blobBuilder) build() []byte {
	stringRegion := b.strings
	indexRegion := u32s(b.index...)

	var resourceRegion []byte
	for _, r := range b.resources {
		resourceRegion = append(resourceRegion, u32s(
			uint32(r.class), uint32(r.kind), r.id, r.space,
			r.lowerBound, r.upperBound, r.name, r.flags)...)
	}

	var functionRegion []byte
	for _, f := range b.functions {
		functionRegion = append(functionRegion, u32s(
			f.name, f.unmangledName, f.resources, f.dependencies,
			uint32(f.shaderKind), f.payloadSize, f.attributeSize,
			f.featureLow, f.featureHigh, f.stageFlag, f.minTarget)...)
	}

	headerSize := uint32(4 + 4*12)
	stringOff := headerSize
	indexOff := stringOff + uint32(len(stringRegion))
	resourceOff := indexOff + uint32(len(indexRegion))
	functionOff := resourceOff + uint32(len(resourceRegion))

	blob := u32s(4,
		rdat.TableString, uint32(len(stringRegion)), stringOff,
		rdat.TableIndex, uint32(len(indexRegion)), indexOff,
		rdat.TableResource, uint32(len(resourceRegion)), resourceOff,
		rdat.TableFunction, uint32(len(functionRegion)), functionOff,
	)
	blob = append(blob, stringRegion...)
	blob = append(blob, indexRegion...)
	blob = append(blob, resourceRegion...)
	blob = append(blob, functionRegion...)
	return blob
}
