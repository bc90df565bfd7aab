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

import (
	"testing"

	"go.uber.org/mock/gomock"
)

func TestCondition_ConstantEvaluatesToItsValue(t *testing.T) {
	for _, v := range Values() {
		if got, want := Constant(v).Evaluate(), v; got != want {
			t.Errorf("unexpected value, got %v, want %v", got, want)
		}
	}
}

func TestCondition_FuncIsCalledOnEvaluation(t *testing.T) {
	calls := 0
	cond := ConditionFunc(func() Tribool {
		calls++
		return True()
	})
	if calls != 0 {
		t.Fatalf("function should not be called before evaluation")
	}
	if got, want := cond.Evaluate(), True(); got != want {
		t.Errorf("unexpected value, got %v, want %v", got, want)
	}
	if calls != 1 {
		t.Errorf("unexpected number of calls, got %d, want 1", calls)
	}
}

func TestCondition_NegationIsLazy(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := NewMockCondition(ctrl)

	negated := Negation(inner)

	inner.EXPECT().Evaluate().Return(Unknown())
	if got, want := negated.Evaluate(), Unknown(); got != want {
		t.Errorf("unexpected value, got %v, want %v", got, want)
	}
	inner.EXPECT().Evaluate().Return(False())
	if got, want := negated.Evaluate(), True(); got != want {
		t.Errorf("unexpected value, got %v, want %v", got, want)
	}
}

func TestCondition_EmptyListsProduceIdentityElements(t *testing.T) {
	if got, want := AllOf(), True(); got != want {
		t.Errorf("unexpected result of empty conjunction, got %v, want %v", got, want)
	}
	if got, want := AnyOf(), False(); got != want {
		t.Errorf("unexpected result of empty disjunction, got %v, want %v", got, want)
	}
}

func TestCondition_AllOf_MatchesEagerConjunction(t *testing.T) {
	for _, a := range Values() {
		for _, b := range Values() {
			for _, c := range Values() {
				want := a.And(b).And(c)
				if got := AllOf(Constant(a), Constant(b), Constant(c)); got != want {
					t.Errorf("AllOf(%v, %v, %v) = %v, want %v", a, b, c, got, want)
				}
			}
		}
	}
}

func TestCondition_AnyOf_MatchesEagerDisjunction(t *testing.T) {
	for _, a := range Values() {
		for _, b := range Values() {
			for _, c := range Values() {
				want := a.Or(b).Or(c)
				if got := AnyOf(Constant(a), Constant(b), Constant(c)); got != want {
					t.Errorf("AnyOf(%v, %v, %v) = %v, want %v", a, b, c, got, want)
				}
			}
		}
	}
}

func TestCondition_AllOf_StopsAtFirstFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockCondition(ctrl)
	second := NewMockCondition(ctrl)
	third := NewMockCondition(ctrl)

	gomock.InOrder(
		first.EXPECT().Evaluate().Return(Unknown()),
		second.EXPECT().Evaluate().Return(False()),
	)
	// third must not be evaluated

	if got, want := AllOf(first, second, third), False(); got != want {
		t.Errorf("unexpected result, got %v, want %v", got, want)
	}
}

func TestCondition_AllOf_EvaluatesAllIfNoneIsFalse(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockCondition(ctrl)
	second := NewMockCondition(ctrl)

	first.EXPECT().Evaluate().Return(True())
	second.EXPECT().Evaluate().Return(Unknown())

	if got, want := AllOf(first, second), Unknown(); got != want {
		t.Errorf("unexpected result, got %v, want %v", got, want)
	}
}

func TestCondition_AnyOf_StopsAtFirstTrue(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockCondition(ctrl)
	second := NewMockCondition(ctrl)
	third := NewMockCondition(ctrl)

	gomock.InOrder(
		first.EXPECT().Evaluate().Return(Unknown()),
		second.EXPECT().Evaluate().Return(True()),
	)

	if got, want := AnyOf(first, second, third), True(); got != want {
		t.Errorf("unexpected result, got %v, want %v", got, want)
	}
}

func TestCondition_AnyOf_EvaluatesAllIfNoneIsTrue(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := NewMockCondition(ctrl)
	second := NewMockCondition(ctrl)

	first.EXPECT().Evaluate().Return(False())
	second.EXPECT().Evaluate().Return(False())

	if got, want := AnyOf(first, second), False(); got != want {
		t.Errorf("unexpected result, got %v, want %v", got, want)
	}
}
