package gfx

import (
	"fmt"
	"reflect"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

type uniformKind int

const (
	uniformFloat uniformKind = iota
	uniformInt
	uniformUint
	uniformVec2
	uniformVec3
	uniformVec4
	uniformMat2
	uniformMat3
	uniformMat4
)

var uniformKinds = map[reflect.Type]uniformKind{
	reflect.TypeOf(float32(0)):   uniformFloat,
	reflect.TypeOf(int32(0)):     uniformInt,
	reflect.TypeOf(uint32(0)):    uniformUint,
	reflect.TypeOf(mgl32.Vec2{}): uniformVec2,
	reflect.TypeOf(mgl32.Vec3{}): uniformVec3,
	reflect.TypeOf(mgl32.Vec4{}): uniformVec4,
	reflect.TypeOf(mgl32.Mat2{}): uniformMat2,
	reflect.TypeOf(mgl32.Mat3{}): uniformMat3,
	reflect.TypeOf(mgl32.Mat4{}): uniformMat4,
}

type uniformField struct {
	name  string
	index int
	kind  uniformKind
	count int32
}

// parseUniforms lists the fields of a struct type tagged with `uniform:"name"`.
// Untagged fields are skipped; fixed arrays of a supported type upload as
// uniform arrays.
func parseUniforms(t reflect.Type) ([]uniformField, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("uniforms must be a struct, got %v", t)
	}

	var fields []uniformField
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name, ok := sf.Tag.Lookup("uniform")
		if !ok || name == "" || name == "-" {
			continue
		}

		ft := sf.Type
		count := int32(1)
		if _, natural := uniformKinds[ft]; !natural && ft.Kind() == reflect.Array {
			count = int32(ft.Len())
			ft = ft.Elem()
		}

		kind, ok := uniformKinds[ft]
		if !ok {
			return nil, fmt.Errorf("unsupported uniform type %v for %q", sf.Type, name)
		}

		fields = append(fields, uniformField{
			name:  name,
			index: i,
			kind:  kind,
			count: count,
		})
	}

	return fields, nil
}

// BindUniforms resolves the location of every tagged field of v.
// It fails if the program does not declare one of them.
func (p *ShaderProgram) BindUniforms(v any) error {
	fields, err := parseUniforms(reflect.TypeOf(v))
	if err != nil {
		return err
	}

	for _, f := range fields {
		if _, err := p.UniformLocation(f.name); err != nil {
			return err
		}
	}

	p.uniformFields = fields
	return nil
}

// SetUniforms uploads the tagged fields of v to the program, which must be
// in use. BindUniforms must have been called with the same type.
func (p *ShaderProgram) SetUniforms(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if !rv.CanAddr() {
		addressable := reflect.New(rv.Type()).Elem()
		addressable.Set(rv)
		rv = addressable
	}

	for _, f := range p.uniformFields {
		loc := p.uniforms[f.name]
		ptr := rv.Field(f.index).Addr().UnsafePointer()

		switch f.kind {
		case uniformFloat:
			gl.Uniform1fv(loc, f.count, (*float32)(ptr))
		case uniformInt:
			gl.Uniform1iv(loc, f.count, (*int32)(ptr))
		case uniformUint:
			gl.Uniform1uiv(loc, f.count, (*uint32)(ptr))
		case uniformVec2:
			gl.Uniform2fv(loc, f.count, (*float32)(ptr))
		case uniformVec3:
			gl.Uniform3fv(loc, f.count, (*float32)(ptr))
		case uniformVec4:
			gl.Uniform4fv(loc, f.count, (*float32)(ptr))
		case uniformMat2:
			gl.UniformMatrix2fv(loc, f.count, false, (*float32)(ptr))
		case uniformMat3:
			gl.UniformMatrix3fv(loc, f.count, false, (*float32)(ptr))
		case uniformMat4:
			gl.UniformMatrix4fv(loc, f.count, false, (*float32)(ptr))
		}
		checkError()
	}
}
