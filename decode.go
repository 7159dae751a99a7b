package rdat

import (
	"github.com/gpulab/rdat/errors"
	"github.com/gpulab/rdat/internal/binary"
)

// RuntimeData holds the four table readers decoded from one blob. It
// borrows the blob's storage; the blob must outlive it. All methods
// are read-only after Decode returns, so a RuntimeData may be shared
// across goroutines without synchronization.
type RuntimeData struct {
	strings   StringTable
	index     IndexTable
	resources ResourceTable
	functions FunctionTable
	ctx       Context
	ok        bool
}

// tableDesc is one header descriptor: which table, where, and how big.
type tableDesc struct {
	tableType uint32
	size      uint32
	offset    uint32
}

// Decode parses the table headers of a runtime data blob and
// constructs zero-copy readers over its table regions. Descriptors
// with unknown table types are skipped; any structural problem aborts
// the decode and no tables are exposed. The blob must remain valid and
// unmodified for as long as the returned RuntimeData is in use.
func Decode(blob []byte) (*RuntimeData, error) {
	r := binary.NewReader(blob)

	tableCount, err := r.ReadU32()
	if err != nil {
		return nil, errors.MalformedHeader("truncated table count", err)
	}
	if uint64(tableCount)*descriptorSize > uint64(r.Remaining()) {
		return nil, errors.MalformedHeader("table count exceeds header region", nil)
	}

	d := &RuntimeData{}
	seen := make(map[uint32]bool, 4)

	for i := uint32(0); i < tableCount; i++ {
		desc, err := readDescriptor(r)
		if err != nil {
			return nil, err
		}

		switch desc.tableType {
		case TableString, TableFunction, TableResource, TableIndex:
		default:
			// Unknown table types are tolerated so newer producers can
			// add tables without breaking older readers.
			continue
		}

		if seen[desc.tableType] {
			return nil, errors.DuplicateTable(tableName(desc.tableType))
		}
		seen[desc.tableType] = true

		region, err := r.Slice(desc.offset, desc.size)
		if err != nil {
			return nil, errors.OutOfBounds(errors.PhaseDecode,
				tableName(desc.tableType), desc.offset, desc.size, len(blob))
		}

		switch desc.tableType {
		case TableString:
			d.strings = StringTable{data: region}
		case TableIndex:
			if desc.size%4 != 0 {
				return nil, errors.SizeMismatch("index", desc.size, 4)
			}
			d.index = IndexTable{data: region}
		case TableResource:
			if desc.size%resourceRecordSize != 0 {
				return nil, errors.SizeMismatch("resource", desc.size, resourceRecordSize)
			}
			d.resources = ResourceTable{data: region}
		case TableFunction:
			if desc.size%functionRecordSize != 0 {
				return nil, errors.SizeMismatch("function", desc.size, functionRecordSize)
			}
			d.functions = FunctionTable{data: region}
		}
	}

	d.ctx = Context{
		strings:   &d.strings,
		index:     &d.index,
		resources: &d.resources,
		functions: &d.functions,
	}
	d.resources.ctx = &d.ctx
	d.functions.ctx = &d.ctx

	d.resources.tally()

	if err := d.validate(); err != nil {
		return nil, err
	}

	d.ok = true
	return d, nil
}

func readDescriptor(r *binary.Reader) (tableDesc, error) {
	var desc tableDesc
	var err error
	if desc.tableType, err = r.ReadU32(); err != nil {
		return desc, errors.MalformedHeader("truncated descriptor", err)
	}
	if desc.size, err = r.ReadU32(); err != nil {
		return desc, errors.MalformedHeader("truncated descriptor", err)
	}
	if desc.offset, err = r.ReadU32(); err != nil {
		return desc, errors.MalformedHeader("truncated descriptor", err)
	}
	return desc, nil
}

func (d *RuntimeData) mustInit() {
	if !d.ok {
		panic(errors.NotInitialized("runtime data"))
	}
}

// Functions returns the function table reader.
func (d *RuntimeData) Functions() *FunctionTable {
	d.mustInit()
	return &d.functions
}

// Resources returns the resource table reader.
func (d *RuntimeData) Resources() *ResourceTable {
	d.mustInit()
	return &d.resources
}

// Strings returns the string table reader.
func (d *RuntimeData) Strings() *StringTable {
	d.mustInit()
	return &d.strings
}
