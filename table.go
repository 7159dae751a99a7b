package rdat

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gpulab/rdat/errors"
)

// StringTable resolves byte offsets to NUL-terminated strings. It
// borrows a sub-range of the blob and never copies it; the returned
// strings are copied out on access.
type StringTable struct {
	data []byte
}

// Size returns the table's byte length.
func (t *StringTable) Size() uint32 {
	return uint32(len(t.data))
}

// Get returns the string beginning at offset and extending to the next
// NUL. Offsets inside the table are always valid after a successful
// decode has verified the table ends in NUL; arbitrary caller-supplied
// offsets are still bounds-checked here because the blob is untrusted.
func (t *StringTable) Get(offset uint32) (string, error) {
	if offset >= uint32(len(t.data)) {
		return "", errors.OutOfBounds(errors.PhaseResolve, "string", offset, 1, len(t.data))
	}
	end := bytes.IndexByte(t.data[offset:], 0)
	if end < 0 {
		return "", errors.MalformedTable("string", "run is not NUL-terminated")
	}
	return string(t.data[offset : int(offset)+end]), nil
}

// get is the resolution path used by views. Offsets embedded in records
// are validated during decode, so a failure here is a programmer error.
func (t *StringTable) get(offset uint32) string {
	s, err := t.Get(offset)
	if err != nil {
		panic(err)
	}
	return s
}

// IndexTable resolves row references to bounded sequences of u32
// elements. A row is encoded as [count, elem0..elemN-1]; a row
// reference is the element offset of the count field, not a sequential
// row number. Rows may overlap, sharing suffix storage.
type IndexTable struct {
	data []byte
}

// Elements returns the number of u32 elements in the table.
func (t *IndexTable) Elements() uint32 {
	return uint32(len(t.data) / 4)
}

func (t *IndexTable) elem(i uint32) uint32 {
	return binary.LittleEndian.Uint32(t.data[4*i:])
}

// Row reads the row at the given reference. The reference and the
// row's full extent are checked against the table length.
func (t *IndexTable) Row(ref uint32) (IndexRow, error) {
	n := t.Elements()
	if ref >= n {
		return IndexRow{}, errors.OutOfBounds(errors.PhaseResolve, "index", ref, 1, int(n))
	}
	count := t.elem(ref)
	if uint64(ref)+1+uint64(count) > uint64(n) {
		return IndexRow{}, errors.New(errors.PhaseResolve, errors.KindMalformedTable).
			Table("index").
			Detail("row at %d needs %d elements, table has %d", ref, count, n).
			Build()
	}
	return IndexRow{table: t, start: ref + 1, count: count}, nil
}

// IndexRow is a bounded view of one row's elements.
type IndexRow struct {
	table *IndexTable
	start uint32
	count uint32
}

// Count returns the number of elements in the row.
func (r IndexRow) Count() uint32 {
	return r.count
}

// At returns element i. Passing i >= Count is a programmer error.
func (r IndexRow) At(i uint32) uint32 {
	if i >= r.count {
		panic(fmt.Sprintf("rdat: index row element %d out of range (count %d)", i, r.count))
	}
	return r.table.elem(r.start + i)
}

// ResourceTable resolves record indices to resource views. Records are
// grouped contiguously by class in the fixed order CBuffer, Sampler,
// SRV, UAV; per-class counts are tallied once at decode time and the
// per-class getters compute base offsets from them.
type ResourceTable struct {
	data         []byte
	ctx          *Context
	cbufferCount uint32
	samplerCount uint32
	srvCount     uint32
	uavCount     uint32
}

// Count returns the total number of resource records.
func (t *ResourceTable) Count() uint32 {
	return uint32(len(t.data) / resourceRecordSize)
}

// Resource returns a view of record i. Passing i >= Count is a
// programmer error.
func (t *ResourceTable) Resource(i uint32) ResourceView {
	if i >= t.Count() {
		panic(fmt.Sprintf("rdat: resource index %d out of range (count %d)", i, t.Count()))
	}
	off := int(i) * resourceRecordSize
	return ResourceView{rec: t.data[off : off+resourceRecordSize], ctx: t.ctx}
}

// tally counts the records of each class. The groupedness of the table
// is verified separately during decode; the tally itself only counts.
func (t *ResourceTable) tally() {
	t.cbufferCount = 0
	t.samplerCount = 0
	t.srvCount = 0
	t.uavCount = 0
	for i := uint32(0); i < t.Count(); i++ {
		off := int(i) * resourceRecordSize
		switch ResourceClass(binary.LittleEndian.Uint32(t.data[off+resClassOff:])) {
		case ClassCBuffer:
			t.cbufferCount++
		case ClassSampler:
			t.samplerCount++
		case ClassSRV:
			t.srvCount++
		case ClassUAV:
			t.uavCount++
		}
	}
}

// CBufferCount returns the number of constant buffer records.
func (t *ResourceTable) CBufferCount() uint32 { return t.cbufferCount }

// CBuffer returns the i-th constant buffer. Passing i >= CBufferCount
// is a programmer error.
func (t *ResourceTable) CBuffer(i uint32) ResourceView {
	if i >= t.cbufferCount {
		panic(fmt.Sprintf("rdat: cbuffer index %d out of range (count %d)", i, t.cbufferCount))
	}
	return t.Resource(i)
}

// SamplerCount returns the number of sampler records.
func (t *ResourceTable) SamplerCount() uint32 { return t.samplerCount }

// Sampler returns the i-th sampler. Passing i >= SamplerCount is a
// programmer error.
func (t *ResourceTable) Sampler(i uint32) ResourceView {
	if i >= t.samplerCount {
		panic(fmt.Sprintf("rdat: sampler index %d out of range (count %d)", i, t.samplerCount))
	}
	return t.Resource(t.cbufferCount + i)
}

// SRVCount returns the number of shader resource view records.
func (t *ResourceTable) SRVCount() uint32 { return t.srvCount }

// SRV returns the i-th shader resource view. Passing i >= SRVCount is a
// programmer error.
func (t *ResourceTable) SRV(i uint32) ResourceView {
	if i >= t.srvCount {
		panic(fmt.Sprintf("rdat: srv index %d out of range (count %d)", i, t.srvCount))
	}
	return t.Resource(t.cbufferCount + t.samplerCount + i)
}

// UAVCount returns the number of unordered access view records.
func (t *ResourceTable) UAVCount() uint32 { return t.uavCount }

// UAV returns the i-th unordered access view. Passing i >= UAVCount is
// a programmer error.
func (t *ResourceTable) UAV(i uint32) ResourceView {
	if i >= t.uavCount {
		panic(fmt.Sprintf("rdat: uav index %d out of range (count %d)", i, t.uavCount))
	}
	return t.Resource(t.cbufferCount + t.samplerCount + t.srvCount + i)
}

// FunctionTable resolves record indices to function views.
type FunctionTable struct {
	data []byte
	ctx  *Context
}

// Count returns the number of function records.
func (t *FunctionTable) Count() uint32 {
	return uint32(len(t.data) / functionRecordSize)
}

// Function returns a view of record i. Passing i >= Count is a
// programmer error.
func (t *FunctionTable) Function(i uint32) FunctionView {
	if i >= t.Count() {
		panic(fmt.Sprintf("rdat: function index %d out of range (count %d)", i, t.Count()))
	}
	off := int(i) * functionRecordSize
	return FunctionView{rec: t.data[off : off+functionRecordSize], ctx: t.ctx}
}

// Context bundles the four table readers so that a view constructed
// from one table can resolve references into the others. Views carry
// one context pointer instead of four table pointers.
type Context struct {
	strings   *StringTable
	index     *IndexTable
	resources *ResourceTable
	functions *FunctionTable
}
