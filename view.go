package rdat

import "encoding/binary"

// Byte offsets of the resource record fields.
const (
	resClassOff      = 0
	resKindOff       = 4
	resIDOff         = 8
	resSpaceOff      = 12
	resLowerBoundOff = 16
	resUpperBoundOff = 20
	resNameOff       = 24
	resFlagsOff      = 28
)

// Byte offsets of the function record fields.
const (
	fnNameOff          = 0
	fnUnmangledNameOff = 4
	fnResourcesOff     = 8
	fnDependenciesOff  = 12
	fnShaderKindOff    = 16
	fnPayloadSizeOff   = 20
	fnAttributeSizeOff = 24
	fnFeatureLowOff    = 28
	fnFeatureHighOff   = 32
	fnStageFlagOff     = 36
	fnMinTargetOff     = 40
)

func fieldU32(rec []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(rec[off:])
}

// ResourceView is a non-owning handle over one resource record. It
// holds the record's sub-slice and the context, and reads fields
// lazily; it must not outlive the decoded tables it borrows from.
type ResourceView struct {
	rec []byte
	ctx *Context
}

// Class returns the resource's bind-point class.
func (v ResourceView) Class() ResourceClass {
	return ResourceClass(fieldU32(v.rec, resClassOff))
}

// Kind returns the resource's shape within its class.
func (v ResourceView) Kind() ResourceKind {
	return ResourceKind(fieldU32(v.rec, resKindOff))
}

// ID returns the per-class resource identifier.
func (v ResourceView) ID() uint32 {
	return fieldU32(v.rec, resIDOff)
}

// Space returns the register space.
func (v ResourceView) Space() uint32 {
	return fieldU32(v.rec, resSpaceOff)
}

// LowerBound returns the first register of the bind range.
func (v ResourceView) LowerBound() uint32 {
	return fieldU32(v.rec, resLowerBoundOff)
}

// UpperBound returns the last register of the bind range.
func (v ResourceView) UpperBound() uint32 {
	return fieldU32(v.rec, resUpperBoundOff)
}

// Flags returns the resource flags.
func (v ResourceView) Flags() uint32 {
	return fieldU32(v.rec, resFlagsOff)
}

// Name resolves the resource name through the string table.
func (v ResourceView) Name() string {
	return v.ctx.strings.get(fieldU32(v.rec, resNameOff))
}

// FunctionView is a non-owning handle over one function record.
type FunctionView struct {
	rec []byte
	ctx *Context
}

// Name resolves the mangled function name through the string table.
func (v FunctionView) Name() string {
	return v.ctx.strings.get(fieldU32(v.rec, fnNameOff))
}

// UnmangledName resolves the unmangled function name through the
// string table.
func (v FunctionView) UnmangledName() string {
	return v.ctx.strings.get(fieldU32(v.rec, fnUnmangledNameOff))
}

// ShaderKind returns the pipeline stage the function targets.
func (v FunctionView) ShaderKind() ShaderKind {
	return ShaderKind(fieldU32(v.rec, fnShaderKindOff))
}

// PayloadSizeInBytes returns the ray payload size. Meaningful for any
// hit, closest hit and miss shaders; it shares storage with the
// callable parameter size, the two being mutually exclusive by shader
// kind.
func (v FunctionView) PayloadSizeInBytes() uint32 {
	return fieldU32(v.rec, fnPayloadSizeOff)
}

// ParameterSizeInBytes returns the callable shader parameter size. See
// PayloadSizeInBytes for the aliasing convention.
func (v FunctionView) ParameterSizeInBytes() uint32 {
	return fieldU32(v.rec, fnPayloadSizeOff)
}

// AttributeSizeInBytes returns the intersection attribute size for
// closest hit and any hit shaders.
func (v FunctionView) AttributeSizeInBytes() uint32 {
	return fieldU32(v.rec, fnAttributeSizeOff)
}

// FeatureFlagLow returns the low 32 bits of the feature bitmask.
func (v FunctionView) FeatureFlagLow() uint32 {
	return fieldU32(v.rec, fnFeatureLowOff)
}

// FeatureFlagHigh returns the high 32 bits of the feature bitmask.
func (v FunctionView) FeatureFlagHigh() uint32 {
	return fieldU32(v.rec, fnFeatureHighOff)
}

// FeatureFlag returns the full 64-bit capability bitmask.
func (v FunctionView) FeatureFlag() uint64 {
	return uint64(v.FeatureFlagHigh())<<32 | uint64(v.FeatureFlagLow())
}

// ShaderStageFlag returns the valid shader stage flags.
func (v FunctionView) ShaderStageFlag() uint32 {
	return fieldU32(v.rec, fnStageFlagOff)
}

// MinShaderTarget returns the minimum shader target.
func (v FunctionView) MinShaderTarget() uint32 {
	return fieldU32(v.rec, fnMinTargetOff)
}

// row resolves an index-row reference field, mapping the absent
// sentinel to an empty row. Row bounds were verified at decode time,
// so resolution cannot fail here.
func (v FunctionView) row(off int) IndexRow {
	ref := fieldU32(v.rec, off)
	if ref == rowAbsent {
		return IndexRow{}
	}
	r, err := v.ctx.index.Row(ref)
	if err != nil {
		panic(err)
	}
	return r
}

// Resources returns the function's resource list. The list is empty
// when the record carries no row.
func (v FunctionView) Resources() ResourceIndexList {
	return ResourceIndexList{row: v.row(fnResourcesOff), ctx: v.ctx}
}

// Dependencies returns the names of the functions this function
// depends on. The list is empty when the record carries no row.
func (v FunctionView) Dependencies() StringRefList {
	return StringRefList{row: v.row(fnDependenciesOff), ctx: v.ctx}
}

// ResourceCount returns the number of resources the function
// references.
func (v FunctionView) ResourceCount() uint32 {
	return v.row(fnResourcesOff).Count()
}

// Resource resolves the i-th referenced resource. Passing
// i >= ResourceCount is a programmer error.
func (v FunctionView) Resource(i uint32) ResourceView {
	return v.Resources().Resource(i)
}

// DependencyCount returns the number of function dependencies.
func (v FunctionView) DependencyCount() uint32 {
	return v.row(fnDependenciesOff).Count()
}

// Dependency resolves the i-th dependency name. Passing
// i >= DependencyCount is a programmer error.
func (v FunctionView) Dependency(i uint32) string {
	return v.Dependencies().At(i)
}

// ResourceIndexList is an index row whose elements are record indices
// into the resource table. It is distinct from StringRefList so the
// two interpretations of index rows cannot be confused.
type ResourceIndexList struct {
	row IndexRow
	ctx *Context
}

// Count returns the number of entries.
func (l ResourceIndexList) Count() uint32 {
	return l.row.Count()
}

// Index returns the raw resource-table index of entry i.
func (l ResourceIndexList) Index(i uint32) uint32 {
	return l.row.At(i)
}

// Resource resolves entry i into the resource table.
func (l ResourceIndexList) Resource(i uint32) ResourceView {
	return l.ctx.resources.Resource(l.row.At(i))
}

// StringRefList is an index row whose elements are byte offsets into
// the string table.
type StringRefList struct {
	row IndexRow
	ctx *Context
}

// Count returns the number of entries.
func (l StringRefList) Count() uint32 {
	return l.row.Count()
}

// At resolves entry i through the string table.
func (l StringRefList) At(i uint32) string {
	return l.ctx.strings.get(l.row.At(i))
}
