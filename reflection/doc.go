// Package reflection materializes decoded runtime data into an owned
// object graph.
//
// The zero-copy readers in package rdat borrow the blob they were
// decoded from and must not outlive it. For callers that keep
// reflection data around after the blob is released, this package
// copies everything out once:
//
//	lib, err := reflection.Load(blob)
//	if err != nil {
//	    // no reflection data available
//	}
//	for _, fn := range lib.Functions {
//	    fmt.Println(fn.UnmangledName, fn.ShaderKind)
//	}
//
// Functions binding the same resource share a single materialized
// Resource entry, mirroring the record sharing in the blob.
package reflection
