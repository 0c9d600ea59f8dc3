// Package shapes defines Shape, the type of a tensor-shaped value: an
// element DType plus the dimensions of each axis.
//
// A shape may be unranked (the number of axes is unknown), and ranked shapes
// may have individual dimensions that are unknown (UnknownDimension).
package shapes

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/hlo2tf/dtypes"
	"github.com/pkg/errors"
)

// UnknownDimension marks a ranked axis whose size is not statically known.
const UnknownDimension = -1

// Shape is a minimalistic shape representation of a tensor.
//
// It is defined as a DType (the underlying data type, e.g.: F32, S64) and
// the dimensions on each axis of the tensor. If len(Dimensions) is 0 it
// represents a scalar -- unless the shape is unranked, in which case the
// dimensions carry no meaning at all.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int

	unranked bool
}

// Make returns a ranked Shape with the values given.
//
// Dimensions must be >= 0 or UnknownDimension; anything else is a defect in
// the caller and panics.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s, err := MakeOrError(dtype, dimensions...)
	if err != nil {
		exceptions.Panicf("shapes.Make(%s, %v): %v", dtype, dimensions, err)
	}
	return s
}

// MakeOrError is the same as Make, but returns an error instead of
// panicking on invalid dimensions.
func MakeOrError(dtype dtypes.DType, dimensions ...int) (Shape, error) {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 0 && dim != UnknownDimension {
			return Shape{}, errors.Errorf("cannot create a shape with an axis with dimension %d", dim)
		}
	}
	return s, nil
}

// MakeUnranked returns an unranked Shape of the given element type.
func MakeUnranked(dtype dtypes.DType) Shape {
	return Shape{DType: dtype, unranked: true}
}

// Invalid returns the zero, invalid Shape.
func Invalid() Shape { return Shape{} }

// Ok returns whether the shape holds a valid element type.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// IsRanked returns whether the number of axes of the shape is statically
// known.
func (s Shape) IsRanked() bool { return !s.unranked }

// IsScalar returns whether the Shape is ranked with zero axes.
func (s Shape) IsScalar() bool { return s.IsRanked() && s.Rank() == 0 }

// Rank of a shape is the number of axes, a shortcut to len(Shape.Dimensions).
// Scalar values have rank 0. The rank of an unranked shape is meaningless.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsStatic returns whether the shape is ranked and every dimension is known.
func (s Shape) IsStatic() bool {
	if !s.IsRanked() {
		return false
	}
	return !slices.Contains(s.Dimensions, UnknownDimension)
}

// Size returns the total number of elements of the shape. E.g.: a Shape of
// dimensions [3, 5] has size 15, a scalar has size 1. It returns
// UnknownDimension if any axis is unknown or the shape is unranked.
func (s Shape) Size() int {
	if !s.IsStatic() {
		return UnknownDimension
	}
	size := 1
	for _, dim := range s.Dimensions {
		size *= dim
	}
	return size
}

// Clone makes a deep copy of the given shape.
func (s Shape) Clone() Shape {
	newS := s
	newS.Dimensions = slices.Clone(s.Dimensions)
	return newS
}

// Equal returns whether the two shapes have the same ranked-ness, element
// type and dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.DType == other.DType &&
		s.unranked == other.unranked &&
		slices.Equal(s.Dimensions, other.Dimensions)
}

// String implements fmt.Stringer and pretty-prints the shape.
func (s Shape) String() string {
	if !s.IsRanked() {
		return fmt.Sprintf("(%s)[*]", s.DType)
	}
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)[]", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}

// ToMLIR returns the MLIR tensor-type representation of the shape, e.g.
// "tensor<2x3xf32>", "tensor<*xf32>" for unranked shapes.
func (s Shape) ToMLIR() string {
	var sb strings.Builder
	_ = s.WriteMLIR(&sb)
	return sb.String()
}

// WriteMLIR writes the MLIR tensor-type representation of the shape to the
// given writer.
func (s Shape) WriteMLIR(writer io.Writer) error {
	var err error
	w := func(format string, args ...any) {
		if err != nil {
			// No op if an error was encountered earlier
			return
		}
		_, err = fmt.Fprintf(writer, format, args...)
	}

	w("tensor<")
	if !s.IsRanked() {
		w("*x")
	} else {
		for _, dim := range s.Dimensions {
			if dim == UnknownDimension {
				w("?x")
			} else {
				w("%dx", dim)
			}
		}
	}
	w("%s>", s.DType.ToMLIR())
	return err
}
