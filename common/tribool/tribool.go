// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package tribool

// Tribool is a value of the strong Kleene three-valued logic.
// It can be either True, False or Unknown. The zero value is Unknown.
// Tribool values are comparable and may be freely copied.
type Tribool struct {
	value byte
}

const (
	unknownValue byte = iota
	trueValue
	falseValue
	numValues
)

var notTable = [numValues]byte{
	unknownValue: unknownValue,
	trueValue:    falseValue,
	falseValue:   trueValue,
}

// andTable[a][b] is the conjunction of a and b. False is absorbing.
var andTable = [numValues][numValues]byte{
	unknownValue: {unknownValue: unknownValue, trueValue: unknownValue, falseValue: falseValue},
	trueValue:    {unknownValue: unknownValue, trueValue: trueValue, falseValue: falseValue},
	falseValue:   {unknownValue: falseValue, trueValue: falseValue, falseValue: falseValue},
}

// orTable[a][b] is the disjunction of a and b. True is absorbing.
var orTable = [numValues][numValues]byte{
	unknownValue: {unknownValue: unknownValue, trueValue: trueValue, falseValue: unknownValue},
	trueValue:    {unknownValue: trueValue, trueValue: trueValue, falseValue: trueValue},
	falseValue:   {unknownValue: unknownValue, trueValue: trueValue, falseValue: falseValue},
}

var names = [numValues]string{
	unknownValue: "unknown",
	trueValue:    "true",
	falseValue:   "false",
}

// New creates a new Tribool with the given value.
// The result is never Unknown.
func New(value bool) Tribool {
	if value {
		return True()
	}
	return False()
}

// Unknown returns true if the value is unknown.
func (t Tribool) Unknown() bool {
	return t.value == unknownValue
}

// True returns true if the value is true.
func (t Tribool) True() bool {
	return t.value == trueValue
}

// False returns true if the value is false.
func (t Tribool) False() bool {
	return t.value == falseValue
}

// Not returns the negation of t. Unknown stays Unknown.
func (t Tribool) Not() Tribool {
	return Tribool{notTable[t.value]}
}

// And returns the conjunction of t and other. If either side is False
// the result is False, even if the other side is Unknown.
func (t Tribool) And(other Tribool) Tribool {
	return Tribool{andTable[t.value][other.value]}
}

// Or returns the disjunction of t and other. If either side is True
// the result is True, even if the other side is Unknown.
func (t Tribool) Or(other Tribool) Tribool {
	return Tribool{orTable[t.value][other.value]}
}

// String returns a string representation of the Tribool.
func (t Tribool) String() string {
	return names[t.value]
}

// Unknown creates a new Tribool with unknown value.
func Unknown() Tribool {
	return Tribool{}
}

// False creates a new Tribool with false value.
func False() Tribool {
	return Tribool{value: falseValue}
}

// True creates a new Tribool with true value.
func True() Tribool {
	return Tribool{value: trueValue}
}

// Values returns all three Tribool values.
func Values() []Tribool {
	return []Tribool{False(), True(), Unknown()}
}
