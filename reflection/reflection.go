package reflection

import (
	"go.uber.org/zap"

	"github.com/gpulab/rdat"
)

// Resource is an owned copy of one resource record with its name
// resolved.
type Resource struct {
	Class      rdat.ResourceClass
	Kind       rdat.ResourceKind
	ID         uint32
	Space      uint32
	LowerBound uint32
	UpperBound uint32
	Name       string
	Flags      uint32
}

// Function is an owned copy of one function record. Resources point
// into the owning Library's Resources slice, so two functions binding
// the same resource share one materialized entry.
type Function struct {
	Name          string
	UnmangledName string
	ShaderKind    rdat.ShaderKind
	Resources     []*Resource
	Dependencies  []string

	// PayloadSizeInBytes holds the ray payload size for any hit,
	// closest hit and miss shaders, and the parameter size for
	// callable shaders.
	PayloadSizeInBytes   uint32
	AttributeSizeInBytes uint32
	FeatureFlag          uint64
	ShaderStageFlag      uint32
	MinShaderTarget      uint32
}

// Library is a fully-owned reflection graph. Unlike the zero-copy
// readers in package rdat, it has no ties to the blob it was loaded
// from and may outlive it.
type Library struct {
	Functions []Function
	Resources []Resource
}

// Load decodes a runtime data blob and materializes it into an owned
// Library. Any decode failure means no reflection data is available.
func Load(blob []byte) (*Library, error) {
	data, err := rdat.Decode(blob)
	if err != nil {
		Logger().Debug("runtime data decode failed", zap.Error(err))
		return nil, err
	}
	return FromRuntimeData(data), nil
}

// FromRuntimeData materializes an owned Library from already-decoded
// tables. It cannot fail: every cross-table reference was verified
// when the blob was decoded.
func FromRuntimeData(data *rdat.RuntimeData) *Library {
	resources := data.Resources()
	functions := data.Functions()

	lib := &Library{
		Resources: make([]Resource, resources.Count()),
		Functions: make([]Function, functions.Count()),
	}

	for i := uint32(0); i < resources.Count(); i++ {
		v := resources.Resource(i)
		lib.Resources[i] = Resource{
			Class:      v.Class(),
			Kind:       v.Kind(),
			ID:         v.ID(),
			Space:      v.Space(),
			LowerBound: v.LowerBound(),
			UpperBound: v.UpperBound(),
			Name:       v.Name(),
			Flags:      v.Flags(),
		}
	}

	for i := uint32(0); i < functions.Count(); i++ {
		v := functions.Function(i)
		fn := Function{
			Name:                 v.Name(),
			UnmangledName:        v.UnmangledName(),
			ShaderKind:           v.ShaderKind(),
			PayloadSizeInBytes:   v.PayloadSizeInBytes(),
			AttributeSizeInBytes: v.AttributeSizeInBytes(),
			FeatureFlag:          v.FeatureFlag(),
			ShaderStageFlag:      v.ShaderStageFlag(),
			MinShaderTarget:      v.MinShaderTarget(),
		}

		res := v.Resources()
		if n := res.Count(); n > 0 {
			fn.Resources = make([]*Resource, n)
			for j := uint32(0); j < n; j++ {
				fn.Resources[j] = &lib.Resources[res.Index(j)]
			}
		}

		deps := v.Dependencies()
		if n := deps.Count(); n > 0 {
			fn.Dependencies = make([]string, n)
			for j := uint32(0); j < n; j++ {
				fn.Dependencies[j] = deps.At(j)
			}
		}

		lib.Functions[i] = fn
	}

	Logger().Debug("materialized runtime data blob",
		zap.Int("functions", len(lib.Functions)),
		zap.Int("resources", len(lib.Resources)))

	return lib
}

// Function returns the function with the given unmangled name, or nil.
func (l *Library) Function(name string) *Function {
	for i := range l.Functions {
		if l.Functions[i].UnmangledName == name || l.Functions[i].Name == name {
			return &l.Functions[i]
		}
	}
	return nil
}
