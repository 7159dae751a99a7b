package rdat

// Table type identifiers used in blob header descriptors.
// Unknown identifiers are skipped during decode for forward compatibility.
const (
	TableInvalid  uint32 = 0 // Never valid in a descriptor
	TableString   uint32 = 1 // String table (NUL-terminated bytes)
	TableFunction uint32 = 2 // Function table (fixed-size records)
	TableResource uint32 = 3 // Resource table (fixed-size records)
	TableIndex    uint32 = 4 // Index table (variable-length u32 rows)
)

// Fixed sizes of the on-disk structures, in bytes. Every field in the
// format is a little-endian u32.
const (
	descriptorSize     = 12 // tableType, size, offset
	resourceRecordSize = 32 // 8 fields
	functionRecordSize = 44 // 11 fields
)

// rowAbsent is the on-disk sentinel for "no index row". It is converted
// to an empty list during resolution and never escapes the package.
const rowAbsent uint32 = 0xFFFFFFFF

// ResourceClass identifies the bind-point class of a resource.
type ResourceClass uint32

// Resource classes. The resource table groups its records contiguously
// in the fixed order CBuffer, Sampler, SRV, UAV, which is unrelated to
// the numeric class values below.
const (
	ClassSRV     ResourceClass = 0
	ClassUAV     ResourceClass = 1
	ClassCBuffer ResourceClass = 2
	ClassSampler ResourceClass = 3
	ClassInvalid ResourceClass = 4
)

// String returns the lower-case class name.
func (c ResourceClass) String() string {
	switch c {
	case ClassSRV:
		return "srv"
	case ClassUAV:
		return "uav"
	case ClassCBuffer:
		return "cbuffer"
	case ClassSampler:
		return "sampler"
	default:
		return "invalid"
	}
}

// ResourceKind identifies the shape of a resource within its class.
type ResourceKind uint32

const (
	KindInvalid ResourceKind = iota
	KindTexture1D
	KindTexture2D
	KindTexture2DMS
	KindTexture3D
	KindTextureCube
	KindTexture1DArray
	KindTexture2DArray
	KindTexture2DMSArray
	KindTextureCubeArray
	KindTypedBuffer
	KindRawBuffer
	KindStructuredBuffer
	KindCBuffer
	KindSampler
	KindTBuffer
	KindRTAccelerationStructure
)

// ShaderKind identifies the pipeline stage a function targets.
type ShaderKind uint32

const (
	ShaderPixel ShaderKind = iota
	ShaderVertex
	ShaderGeometry
	ShaderHull
	ShaderDomain
	ShaderCompute
	ShaderLibrary
	ShaderRayGeneration
	ShaderIntersection
	ShaderAnyHit
	ShaderClosestHit
	ShaderMiss
	ShaderCallable
	ShaderMesh
	ShaderAmplification
	ShaderInvalid
)

// String returns the lower-case shader kind name.
func (k ShaderKind) String() string {
	switch k {
	case ShaderPixel:
		return "pixel"
	case ShaderVertex:
		return "vertex"
	case ShaderGeometry:
		return "geometry"
	case ShaderHull:
		return "hull"
	case ShaderDomain:
		return "domain"
	case ShaderCompute:
		return "compute"
	case ShaderLibrary:
		return "library"
	case ShaderRayGeneration:
		return "raygeneration"
	case ShaderIntersection:
		return "intersection"
	case ShaderAnyHit:
		return "anyhit"
	case ShaderClosestHit:
		return "closesthit"
	case ShaderMiss:
		return "miss"
	case ShaderCallable:
		return "callable"
	case ShaderMesh:
		return "mesh"
	case ShaderAmplification:
		return "amplification"
	default:
		return "invalid"
	}
}

// tableName returns the lower-case name used in error messages for a
// table type identifier.
func tableName(tableType uint32) string {
	switch tableType {
	case TableString:
		return "string"
	case TableFunction:
		return "function"
	case TableResource:
		return "resource"
	case TableIndex:
		return "index"
	default:
		return "unknown"
	}
}
