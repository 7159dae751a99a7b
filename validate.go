package rdat

import (
	"github.com/gpulab/rdat/errors"
)

// validate checks the table contents so that every accessor reachable
// after a successful decode resolves without error. The producer is
// not trusted to uphold any of the format invariants.
func (d *RuntimeData) validate() error {
	if err := d.validateStringTable(); err != nil {
		return err
	}
	if err := d.validateResourceGrouping(); err != nil {
		return err
	}
	if err := d.validateResourceNames(); err != nil {
		return err
	}
	if err := d.validateFunctions(); err != nil {
		return err
	}
	return nil
}

func (d *RuntimeData) validateStringTable() error {
	data := d.strings.data
	if len(data) > 0 && data[len(data)-1] != 0 {
		return errors.MalformedTable("string", "table does not end in NUL")
	}
	return nil
}

// validateResourceGrouping rejects resource tables whose records are
// not grouped contiguously in CBuffer, Sampler, SRV, UAV order. The
// per-class getters derive base offsets from the class tally, so an
// out-of-order record would silently land in the wrong class range.
func (d *RuntimeData) validateResourceGrouping() error {
	lastRank := -1
	for i := uint32(0); i < d.resources.Count(); i++ {
		class := d.resources.Resource(i).Class()
		rank := partitionRank(class)
		if rank < 0 {
			return errors.New(errors.PhaseDecode, errors.KindMalformedTable).
				Table("resource").
				Detail("record %d has invalid class %d", i, uint32(class)).
				Build()
		}
		if rank < lastRank {
			return errors.New(errors.PhaseDecode, errors.KindMalformedTable).
				Table("resource").
				Detail("record %d (%s) violates class grouping order", i, class).
				Build()
		}
		lastRank = rank
	}
	return nil
}

// partitionRank maps a class to its position in the table's grouping
// order, which is unrelated to the numeric class values.
func partitionRank(class ResourceClass) int {
	switch class {
	case ClassCBuffer:
		return 0
	case ClassSampler:
		return 1
	case ClassSRV:
		return 2
	case ClassUAV:
		return 3
	default:
		return -1
	}
}

func (d *RuntimeData) validateResourceNames() error {
	for i := uint32(0); i < d.resources.Count(); i++ {
		off := int(i) * resourceRecordSize
		if err := d.checkStringRef(fieldU32(d.resources.data, off+resNameOff), "resource"); err != nil {
			return err
		}
	}
	return nil
}

func (d *RuntimeData) validateFunctions() error {
	for i := uint32(0); i < d.functions.Count(); i++ {
		off := int(i) * functionRecordSize
		rec := d.functions.data[off : off+functionRecordSize]

		if err := d.checkStringRef(fieldU32(rec, fnNameOff), "function"); err != nil {
			return err
		}
		if err := d.checkStringRef(fieldU32(rec, fnUnmangledNameOff), "function"); err != nil {
			return err
		}

		row, err := d.checkRowRef(fieldU32(rec, fnResourcesOff))
		if err != nil {
			return err
		}
		for j := uint32(0); j < row.Count(); j++ {
			if idx := row.At(j); idx >= d.resources.Count() {
				return errors.OutOfBounds(errors.PhaseDecode, "resource",
					idx, 1, int(d.resources.Count()))
			}
		}

		row, err = d.checkRowRef(fieldU32(rec, fnDependenciesOff))
		if err != nil {
			return err
		}
		for j := uint32(0); j < row.Count(); j++ {
			if err := d.checkStringRef(row.At(j), "index"); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkStringRef verifies that a string offset embedded in a record
// lands inside the string table.
func (d *RuntimeData) checkStringRef(offset uint32, table string) error {
	if offset >= d.strings.Size() {
		return errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Table(table).
			Detail("string offset %d exceeds string table size %d", offset, d.strings.Size()).
			Build()
	}
	return nil
}

// checkRowRef resolves a row-reference field, treating the absent
// sentinel as an empty row. Row resolution errors are reported in the
// decode phase since a bad reference makes the whole blob unusable.
func (d *RuntimeData) checkRowRef(ref uint32) (IndexRow, error) {
	if ref == rowAbsent {
		return IndexRow{}, nil
	}
	row, err := d.index.Row(ref)
	if err != nil {
		return IndexRow{}, errors.New(errors.PhaseDecode, errors.KindMalformedTable).
			Table("index").
			Cause(err).
			Detail("function row reference %d is unresolvable", ref).
			Build()
	}
	return row, nil
}
