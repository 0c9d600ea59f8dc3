package ir

import (
	"fmt"
	"slices"
	"strings"
)

// Attribute is an immutable typed constant attached to an Operation.
//
// It is a closed union: the variants below are the only implementations.
// Consumers that need a specific variant use the typed accessors on
// Operation (e.g. Operation.DenseIntAttr) instead of unchecked casts.
type Attribute interface {
	fmt.Stringer
	attribute()
}

// BoolAttr is a boolean scalar attribute, e.g. a transpose flag.
type BoolAttr bool

func (BoolAttr) attribute() {}

func (a BoolAttr) String() string {
	if a {
		return "true"
	}
	return "false"
}

// IntAttr is a 64-bit integer scalar attribute.
type IntAttr int64

func (IntAttr) attribute() {}

func (a IntAttr) String() string { return fmt.Sprintf("%d : i64", int64(a)) }

// FloatAttr is a 64-bit float scalar attribute.
type FloatAttr float64

func (FloatAttr) attribute() {}

func (a FloatAttr) String() string { return fmt.Sprintf("%e : f64", float64(a)) }

// StringAttr is a string attribute, e.g. a callee name.
type StringAttr string

func (StringAttr) attribute() {}

func (a StringAttr) String() string { return fmt.Sprintf("%q", string(a)) }

// DenseIntAttr is a rank-1 dense array of 64-bit integers, used for
// strides, start/limit indices, permutations and materialized shapes.
type DenseIntAttr struct {
	values []int64
}

func (*DenseIntAttr) attribute() {}

// NewDenseIntAttr creates a dense integer attribute with the given elements.
func NewDenseIntAttr(values ...int64) *DenseIntAttr {
	return &DenseIntAttr{values: slices.Clone(values)}
}

// NewDenseIntSplat creates a dense integer attribute with size copies of
// the same value.
func NewDenseIntSplat(value int64, size int) *DenseIntAttr {
	values := make([]int64, size)
	for i := range values {
		values[i] = value
	}
	return &DenseIntAttr{values: values}
}

// Len returns the number of elements.
func (a *DenseIntAttr) Len() int { return len(a.values) }

// Value returns the i-th element.
func (a *DenseIntAttr) Value(i int) int64 { return a.values[i] }

// Values returns a copy of the elements, preserving immutability.
func (a *DenseIntAttr) Values() []int64 { return slices.Clone(a.values) }

// IsSplat returns whether all elements hold the same value. An empty
// attribute is trivially a splat.
func (a *DenseIntAttr) IsSplat() bool {
	if len(a.values) == 0 {
		return true
	}
	for _, v := range a.values[1:] {
		if v != a.values[0] {
			return false
		}
	}
	return true
}

// SplatValue returns the repeated element of a splat attribute. It must
// only be called when IsSplat() is true and the attribute is not empty.
func (a *DenseIntAttr) SplatValue() int64 { return a.values[0] }

func (a *DenseIntAttr) String() string {
	var sb strings.Builder
	if len(a.values) > 0 && a.IsSplat() {
		fmt.Fprintf(&sb, "dense<%d>", a.values[0])
	} else {
		sb.WriteString("dense<[")
		for i, v := range a.values {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteString("]>")
	}
	fmt.Fprintf(&sb, " : tensor<%dxi64>", len(a.values))
	return sb.String()
}
