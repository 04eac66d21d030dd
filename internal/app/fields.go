// Package app holds the state behind the shape picker: which dimension
// fields a shape uses, what the user typed, and how that turns into a
// displayable scene.
package app

import (
	"fmt"

	"github.com/Faultbox/drawshape/pkg/geometry"
)

// Field identifies a dimension input.
type Field int

// Dimension fields.
const (
	FieldLength Field = iota
	FieldWidth
	FieldRadius
	FieldHeight
	FieldMinorRadius

	fieldCount
)

var fieldNames = [fieldCount]string{
	FieldLength:      "length",
	FieldWidth:       "width",
	FieldRadius:      "radius",
	FieldHeight:      "height",
	FieldMinorRadius: "minor-radius",
}

// String returns the field's flag name.
func (f Field) String() string {
	if f >= 0 && f < fieldCount {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Fields returns every dimension field in form order.
func Fields() []Field {
	return []Field{FieldLength, FieldWidth, FieldRadius, FieldHeight, FieldMinorRadius}
}

// shapeFields lists the inputs each shape enables.
var shapeFields = map[geometry.Kind][]Field{
	geometry.KindCircle:    {FieldRadius},
	geometry.KindSquare:    {FieldLength},
	geometry.KindTriangle:  {FieldLength},
	geometry.KindRectangle: {FieldLength, FieldWidth},
	geometry.KindSphere:    {FieldRadius},
	geometry.KindCube:      {FieldLength},
	geometry.KindCone:      {FieldRadius, FieldHeight},
	geometry.KindCylinder:  {FieldRadius, FieldHeight},
	geometry.KindTorus:     {FieldRadius, FieldMinorRadius},
}

// FieldsFor returns the inputs a shape uses. KindNone uses none.
func FieldsFor(kind geometry.Kind) []Field {
	return shapeFields[kind]
}
