// Package variant provides a runtime-tagged holder for small numeric, vector,
// string, and boolean values, for passing arguments of mixed type through a
// single call signature.
package variant

import (
	cerrors "github.com/cockroachdb/errors"
	"github.com/pkg/errors"
)

// TypeMismatchError is the error returned from getters when the variant holds
// a value of a different type than the one requested
var TypeMismatchError error = errors.New("variant holds a different type")

// Type identifies which kind of value a Variant currently holds.
type Type uint32

const (
	TypeNone Type = iota
	TypeInt
	TypeInt3
	TypeInt4
	TypeFloat
	TypeFloat3
	TypeFloat4
	TypeFloat4x4
	TypeString
	TypeBoolean
)

var typeMapping = map[Type]string{
	TypeNone:     "TypeNone",
	TypeInt:      "TypeInt",
	TypeInt3:     "TypeInt3",
	TypeInt4:     "TypeInt4",
	TypeFloat:    "TypeFloat",
	TypeFloat3:   "TypeFloat3",
	TypeFloat4:   "TypeFloat4",
	TypeFloat4x4: "TypeFloat4x4",
	TypeString:   "TypeString",
	TypeBoolean:  "TypeBoolean",
}

func (t Type) String() string {
	return typeMapping[t]
}

// Variant stores one value and its runtime type tag. The zero value holds
// nothing (TypeNone). Setters replace the held value and tag; getters return
// TypeMismatchError when the held type differs from the requested one.
// Vector getters return copies, never interior pointers.
type Variant struct {
	kind    Type
	ints    [4]int32
	floats  [16]float32
	str     string
	boolean bool
}

// Kind returns the type of the currently held value.
func (v *Variant) Kind() Type {
	return v.kind
}

// Clear drops the held value and returns the variant to TypeNone.
func (v *Variant) Clear() {
	*v = Variant{}
}

func (v *Variant) SetInt(value int32) {
	v.Clear()
	v.kind = TypeInt
	v.ints[0] = value
}

func (v *Variant) Int() (int32, error) {
	if v.kind != TypeInt {
		return 0, v.mismatch(TypeInt)
	}
	return v.ints[0], nil
}

func (v *Variant) SetInt3(value1, value2, value3 int32) {
	v.Clear()
	v.kind = TypeInt3
	v.ints[0] = value1
	v.ints[1] = value2
	v.ints[2] = value3
}

func (v *Variant) Int3() ([3]int32, error) {
	if v.kind != TypeInt3 {
		return [3]int32{}, v.mismatch(TypeInt3)
	}
	return [3]int32{v.ints[0], v.ints[1], v.ints[2]}, nil
}

func (v *Variant) SetInt4(value1, value2, value3, value4 int32) {
	v.Clear()
	v.kind = TypeInt4
	v.ints[0] = value1
	v.ints[1] = value2
	v.ints[2] = value3
	v.ints[3] = value4
}

func (v *Variant) Int4() ([4]int32, error) {
	if v.kind != TypeInt4 {
		return [4]int32{}, v.mismatch(TypeInt4)
	}
	return v.ints, nil
}

func (v *Variant) SetFloat(value float32) {
	v.Clear()
	v.kind = TypeFloat
	v.floats[0] = value
}

func (v *Variant) Float() (float32, error) {
	if v.kind != TypeFloat {
		return 0, v.mismatch(TypeFloat)
	}
	return v.floats[0], nil
}

func (v *Variant) SetFloat3(value1, value2, value3 float32) {
	v.Clear()
	v.kind = TypeFloat3
	v.floats[0] = value1
	v.floats[1] = value2
	v.floats[2] = value3
}

func (v *Variant) Float3() ([3]float32, error) {
	if v.kind != TypeFloat3 {
		return [3]float32{}, v.mismatch(TypeFloat3)
	}
	return [3]float32{v.floats[0], v.floats[1], v.floats[2]}, nil
}

func (v *Variant) SetFloat4(value1, value2, value3, value4 float32) {
	v.Clear()
	v.kind = TypeFloat4
	v.floats[0] = value1
	v.floats[1] = value2
	v.floats[2] = value3
	v.floats[3] = value4
}

func (v *Variant) Float4() ([4]float32, error) {
	if v.kind != TypeFloat4 {
		return [4]float32{}, v.mismatch(TypeFloat4)
	}
	return [4]float32{v.floats[0], v.floats[1], v.floats[2], v.floats[3]}, nil
}

func (v *Variant) SetFloat4x4(values [16]float32) {
	v.Clear()
	v.kind = TypeFloat4x4
	v.floats = values
}

func (v *Variant) Float4x4() ([16]float32, error) {
	if v.kind != TypeFloat4x4 {
		return [16]float32{}, v.mismatch(TypeFloat4x4)
	}
	return v.floats, nil
}

func (v *Variant) SetString(value string) {
	v.Clear()
	v.kind = TypeString
	v.str = value
}

func (v *Variant) String() (string, error) {
	if v.kind != TypeString {
		return "", v.mismatch(TypeString)
	}
	return v.str, nil
}

func (v *Variant) SetBool(value bool) {
	v.Clear()
	v.kind = TypeBoolean
	v.boolean = value
}

func (v *Variant) Bool() (bool, error) {
	if v.kind != TypeBoolean {
		return false, v.mismatch(TypeBoolean)
	}
	return v.boolean, nil
}

// Equal reports whether both variants hold the same type and value.
func (v *Variant) Equal(other *Variant) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case TypeNone:
		return true
	case TypeInt:
		return v.ints[0] == other.ints[0]
	case TypeInt3:
		return v.ints[0] == other.ints[0] && v.ints[1] == other.ints[1] && v.ints[2] == other.ints[2]
	case TypeInt4:
		return v.ints == other.ints
	case TypeFloat:
		return v.floats[0] == other.floats[0]
	case TypeFloat3:
		return v.floats[0] == other.floats[0] && v.floats[1] == other.floats[1] && v.floats[2] == other.floats[2]
	case TypeFloat4:
		return v.floats[0] == other.floats[0] && v.floats[1] == other.floats[1] &&
			v.floats[2] == other.floats[2] && v.floats[3] == other.floats[3]
	case TypeFloat4x4:
		return v.floats == other.floats
	case TypeString:
		return v.str == other.str
	case TypeBoolean:
		return v.boolean == other.boolean
	}

	return false
}

func (v *Variant) mismatch(requested Type) error {
	return cerrors.Wrapf(TypeMismatchError, "requested %s, but this variant holds %s", requested, v.kind)
}
