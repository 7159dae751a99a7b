// Package rdat provides zero-copy decoding of shader runtime data blobs.
//
// A runtime data blob is a compact, self-describing binary container
// produced by a shader compiler. It stores reflection metadata for a
// shader library: the functions it defines, the resources each
// function binds, the names of the functions each function depends on,
// and an interned string table. The package decodes the container's
// table layout and resolves cross-table references on demand without
// copying the underlying buffer.
//
// # Layout
//
// All integers in the format are little-endian u32. The blob starts
// with a table count followed by that many descriptors of the form
// {tableType, size, offset}; offsets are relative to the start of the
// blob. Four table types are recognized:
//
//	string    raw bytes, every string NUL-terminated
//	index     u32 rows encoded as [count, elem0..elemN-1]
//	resource  fixed 32-byte records, grouped by class
//	function  fixed 44-byte records
//
// Descriptors with unrecognized types are skipped so newer producers
// remain readable; a duplicate descriptor for a known type fails the
// decode.
//
// # Decoding
//
// Decode validates the container structure up front and returns
// readers over the blob's table regions:
//
//	data, err := rdat.Decode(blob)
//	if err != nil {
//	    // treat as "no reflection data available"
//	}
//
//	funcs := data.Functions()
//	for i := uint32(0); i < funcs.Count(); i++ {
//	    fn := funcs.Function(i)
//	    fmt.Println(fn.Name(), fn.ShaderKind())
//	    res := fn.Resources()
//	    for j := uint32(0); j < res.Count(); j++ {
//	        fmt.Println("  ", res.Resource(j).Name())
//	    }
//	}
//
// Any structural problem (range outside the blob, duplicate table,
// table size not a record multiple, dangling string offset or row
// reference, resource records out of class grouping order) aborts the
// decode with a structured error; there is no partial result.
//
// # Views
//
// FunctionView and ResourceView are lightweight non-owning handles: a
// record sub-slice plus a context pointer. Fields are read lazily from
// the blob on each call. Views borrow the decoded tables and must not
// outlive them; copy scalar fields out to persist them. Because all
// references are verified during Decode, view accessors do not return
// errors: an out-of-range index passed by the caller is a programmer
// error and panics.
//
// Index rows have two interpretations depending on which record field
// referenced them: a function's resource row holds record indices into
// the resource table, while its dependency row holds byte offsets into
// the string table. The typed ResourceIndexList and StringRefList keep
// the two from being confused.
//
// # Concurrency
//
// Decode is a pure function of the blob. All readers and views are
// immutable after it returns, so any number of goroutines may read
// one RuntimeData concurrently without synchronization.
package rdat
