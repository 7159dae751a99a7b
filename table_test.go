package rdat_test

import (
	"errors"
	"testing"

	"github.com/gpulab/rdat"
	rdaterr "github.com/gpulab/rdat/errors"
)

func TestStringTableGet(t *testing.T) {
	var b blobBuilder
	first := b.addString("rayGen")
	second := b.addString("closestHit")

	d, err := rdat.Decode(b.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	got, err := d.Strings().Get(first)
	if err != nil {
		t.Fatalf("Get(%d): %v", first, err)
	}
	if got != "rayGen" {
		t.Errorf("Get(%d): got %q, want %q", first, got, "rayGen")
	}

	got, err = d.Strings().Get(second)
	if err != nil {
		t.Fatalf("Get(%d): %v", second, err)
	}
	if got != "closestHit" {
		t.Errorf("Get(%d): got %q, want %q", second, got, "closestHit")
	}

	// An offset into the middle of a run yields its suffix.
	got, err = d.Strings().Get(first + 3)
	if err != nil {
		t.Fatalf("Get(%d): %v", first+3, err)
	}
	if got != "Gen" {
		t.Errorf("Get(%d): got %q, want %q", first+3, got, "Gen")
	}
}

func TestStringTableGetOutOfRange(t *testing.T) {
	var b blobBuilder
	b.addString("a")

	d, err := rdat.Decode(b.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	_, err = d.Strings().Get(d.Strings().Size())
	if !errors.Is(err, &rdaterr.Error{Phase: rdaterr.PhaseResolve, Kind: rdaterr.KindOutOfBounds}) {
		t.Errorf("expected out_of_bounds, got %v", err)
	}
}

func TestIndexRows(t *testing.T) {
	var b blobBuilder
	name := b.addString("f")
	rowA := b.addIndexRow(5, 2, 9)
	rowB := b.addIndexRow(4)
	// Ten records with id == table index, so a resolved entry reveals
	// which record the row element selected.
	for i := uint32(0); i < 10; i++ {
		b.addResource(testResource{class: rdat.ClassUAV, id: i, name: name})
	}
	b.addFunction(testFunction{name: name, unmangledName: name, resources: rowA, dependencies: noRow})
	b.addFunction(testFunction{name: name, unmangledName: name, resources: rowB, dependencies: noRow})

	d, err := rdat.Decode(b.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	list := d.Functions().Function(0).Resources()
	if list.Count() != 3 {
		t.Fatalf("row A count: got %d, want 3", list.Count())
	}
	for i, want := range []uint32{5, 2, 9} {
		if got := list.Resource(uint32(i)).ID(); got != want {
			t.Errorf("row A element %d: got record id %d, want %d", i, got, want)
		}
	}

	fn := d.Functions().Function(1)
	if fn.ResourceCount() != 1 {
		t.Errorf("row B count: got %d, want 1", fn.ResourceCount())
	}
	if got := fn.Resource(0).ID(); got != 4 {
		t.Errorf("row B element 0: got record id %d, want 4", got)
	}
}

func TestIndexRowOverlap(t *testing.T) {
	// A one-element row nested in the tail of a three-element row: its
	// count field is row A's second element and its single element is
	// row A's last. Both rows must decode independently.
	var b blobBuilder
	name := b.addString("f")
	for i := 0; i < 10; i++ {
		b.addResource(testResource{class: rdat.ClassUAV, name: name})
	}
	rowA := b.addIndexRow(5, 1, 9) // elements [5 1 9] at refs 1,2,3
	rowB := rowA + 2               // reads count=1, elements [9]
	b.addFunction(testFunction{name: name, unmangledName: name, resources: rowA, dependencies: noRow})
	b.addFunction(testFunction{name: name, unmangledName: name, resources: rowB, dependencies: noRow})

	d, err := rdat.Decode(b.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	a := d.Functions().Function(0)
	if a.ResourceCount() != 3 {
		t.Errorf("row A count: got %d, want 3", a.ResourceCount())
	}

	bn := d.Functions().Function(1)
	if bn.ResourceCount() != 1 {
		t.Fatalf("row B count: got %d, want 1", bn.ResourceCount())
	}
}

func TestResourceClassPartition(t *testing.T) {
	var b blobBuilder
	names := []uint32{
		b.addString("cb0"), b.addString("cb1"),
		b.addString("samp"),
		b.addString("tex0"), b.addString("tex1"), b.addString("tex2"),
		b.addString("out"),
	}

	b.addResource(testResource{class: rdat.ClassCBuffer, kind: rdat.KindCBuffer, id: 0, name: names[0]})
	b.addResource(testResource{class: rdat.ClassCBuffer, kind: rdat.KindCBuffer, id: 1, name: names[1]})
	b.addResource(testResource{class: rdat.ClassSampler, kind: rdat.KindSampler, id: 0, name: names[2]})
	b.addResource(testResource{class: rdat.ClassSRV, kind: rdat.KindTexture2D, id: 0, name: names[3]})
	b.addResource(testResource{class: rdat.ClassSRV, kind: rdat.KindTexture2D, id: 1, name: names[4]})
	b.addResource(testResource{class: rdat.ClassSRV, kind: rdat.KindTexture2D, id: 2, name: names[5]})
	b.addResource(testResource{class: rdat.ClassUAV, kind: rdat.KindRawBuffer, id: 0, name: names[6]})

	d, err := rdat.Decode(b.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	res := d.Resources()
	if res.Count() != 7 {
		t.Fatalf("total count: got %d, want 7", res.Count())
	}
	if res.CBufferCount() != 2 {
		t.Errorf("cbuffer count: got %d, want 2", res.CBufferCount())
	}
	if res.SamplerCount() != 1 {
		t.Errorf("sampler count: got %d, want 1", res.SamplerCount())
	}
	if res.SRVCount() != 3 {
		t.Errorf("srv count: got %d, want 3", res.SRVCount())
	}
	if res.UAVCount() != 1 {
		t.Errorf("uav count: got %d, want 1", res.UAVCount())
	}

	// SRV(0) must be the fourth encoded record.
	srv := res.SRV(0)
	if srv.Name() != "tex0" {
		t.Errorf("SRV(0) name: got %q, want %q", srv.Name(), "tex0")
	}
	if srv.Class() != rdat.ClassSRV {
		t.Errorf("SRV(0) class: got %v, want srv", srv.Class())
	}

	if got := res.Sampler(0).Name(); got != "samp" {
		t.Errorf("Sampler(0) name: got %q, want %q", got, "samp")
	}
	if got := res.UAV(0).Name(); got != "out" {
		t.Errorf("UAV(0) name: got %q, want %q", got, "out")
	}
	if got := res.CBuffer(1).Name(); got != "cb1" {
		t.Errorf("CBuffer(1) name: got %q, want %q", got, "cb1")
	}
}

func TestResourceViewFields(t *testing.T) {
	var b blobBuilder
	name := b.addString("gOutput")
	b.addResource(testResource{
		class:      rdat.ClassUAV,
		kind:       rdat.KindRawBuffer,
		id:         3,
		space:      1,
		lowerBound: 4,
		upperBound: 7,
		name:       name,
		flags:      0x2,
	})

	d, err := rdat.Decode(b.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	v := d.Resources().Resource(0)
	if v.Class() != rdat.ClassUAV {
		t.Errorf("Class: got %v, want uav", v.Class())
	}
	if v.Kind() != rdat.KindRawBuffer {
		t.Errorf("Kind: got %v, want raw buffer", v.Kind())
	}
	if v.ID() != 3 || v.Space() != 1 {
		t.Errorf("ID/Space: got %d/%d, want 3/1", v.ID(), v.Space())
	}
	if v.LowerBound() != 4 || v.UpperBound() != 7 {
		t.Errorf("bounds: got [%d, %d], want [4, 7]", v.LowerBound(), v.UpperBound())
	}
	if v.Name() != "gOutput" {
		t.Errorf("Name: got %q, want %q", v.Name(), "gOutput")
	}
	if v.Flags() != 0x2 {
		t.Errorf("Flags: got %#x, want 0x2", v.Flags())
	}
}

func TestResourceIndexOutOfRangePanics(t *testing.T) {
	var b blobBuilder
	name := b.addString("r")
	b.addResource(testResource{class: rdat.ClassCBuffer, name: name})

	d, err := rdat.Decode(b.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range resource index")
		}
	}()
	d.Resources().Resource(1)
}

func TestPerClassIndexOutOfRangePanics(t *testing.T) {
	var b blobBuilder
	name := b.addString("r")
	b.addResource(testResource{class: rdat.ClassCBuffer, name: name})

	d, err := rdat.Decode(b.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range srv index")
		}
	}()
	d.Resources().SRV(0)
}
