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

//go:generate mockgen -source condition.go -destination condition_mocks.go -package tribool

// Condition is a lazily evaluated Tribool. Implementations may be expensive
// to evaluate, e.g. when a proof has to be inspected to obtain the result.
type Condition interface {
	// Evaluate computes the value of this condition.
	Evaluate() Tribool
}

// ConditionFunc adapts a plain function to the Condition interface.
type ConditionFunc func() Tribool

func (f ConditionFunc) Evaluate() Tribool {
	return f()
}

// Constant returns a condition always evaluating to the given value.
func Constant(value Tribool) Condition {
	return constant(value)
}

type constant Tribool

func (c constant) Evaluate() Tribool {
	return Tribool(c)
}

// Negation returns a condition evaluating to the negation of the given one.
// The wrapped condition is only evaluated when the result is requested.
func Negation(c Condition) Condition {
	return ConditionFunc(func() Tribool {
		return c.Evaluate().Not()
	})
}

// AllOf computes the conjunction of the given conditions. Conditions are
// evaluated in order and evaluation stops at the first False result since
// no later result can change the outcome. An empty list is True.
func AllOf(conditions ...Condition) Tribool {
	res := True()
	for _, cur := range conditions {
		res = res.And(cur.Evaluate())
		if res.False() {
			return res
		}
	}
	return res
}

// AnyOf computes the disjunction of the given conditions. Evaluation stops
// at the first True result. An empty list is False.
func AnyOf(conditions ...Condition) Tribool {
	res := False()
	for _, cur := range conditions {
		res = res.Or(cur.Evaluate())
		if res.True() {
			return res
		}
	}
	return res
}
