// Copyright 2014 pendo.io
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexcompare

import (
	"github.com/stretchr/testify/mock"
	ck "gopkg.in/check.v1"
)

type attributeMock struct {
	mock.Mock
}

func (m *attributeMock) Age(p person) int {
	return m.Called(p).Int(0)
}

func (m *attributeMock) Before(a, b person) bool {
	return m.Called(a, b).Bool(0)
}

// manualLess is the hand written chain LessThan replaces.
func manualLess(lhs, rhs person) bool {
	if lhs.Surname != rhs.Surname {
		return lhs.Surname < rhs.Surname
	} else if lhs.Age != rhs.Age {
		return lhs.Age < rhs.Age
	}

	return lhs.Initial < rhs.Initial
}

func (lct *LexCompareTests) TestPersonScenario(c *ck.C) {
	for _, tc := range []struct {
		lhs, rhs int
		less     bool
	}{
		{0, 1, true},  // surname and age tie, 'B' < 'J'
		{2, 3, false}, // "Smith" > "Doe"
		{3, 4, true},  // surname ties, 19 < 43
		{4, 4, false}, // fully equal
	} {
		lhs, rhs := people[tc.lhs], people[tc.rhs]
		c.Check(LessThan(lhs, rhs, bySurname, byAge, byInitial), ck.Equals, tc.less,
			ck.Commentf("%v < %v", lhs, rhs))
	}

	for _, lhs := range people {
		for _, rhs := range people {
			c.Check(LessThan(lhs, rhs, bySurname, byAge, byInitial), ck.Equals, manualLess(lhs, rhs),
				ck.Commentf("%v < %v", lhs, rhs))
		}
	}
}

func (lct *LexCompareTests) TestCompare(c *ck.C) {
	c.Assert(Compare(people[0], people[1], bySurname, byAge, byInitial), ck.Equals, Less)
	c.Assert(Compare(people[1], people[0], bySurname, byAge, byInitial), ck.Equals, Greater)
	c.Assert(Compare(people[4], people[4], bySurname, byAge, byInitial), ck.Equals, Equivalent)

	// no selectors leaves every pair tied
	c.Assert(Compare(people[0], people[3]), ck.Equals, Equivalent)
}

func (lct *LexCompareTests) TestExhaustedSelectorsAreNotLess(c *ck.C) {
	a := person{"Doe", 19, 'B'}
	b := person{"Doe", 19, 'J'}

	c.Assert(LessThan(a, b, bySurname, byAge), ck.Equals, false)
	c.Assert(LessThan(b, a, bySurname, byAge), ck.Equals, false)
	c.Assert(LessThan(a, b, bySurname, byAge, byInitial), ck.Equals, true)
}

func (lct *LexCompareTests) TestShortCircuit(c *ck.C) {
	attrs := &attributeMock{}
	byMockedAge := Accessor("Age", attrs.Age)

	// surnames differ, so age is never looked at
	c.Assert(LessThan(people[3], people[0], bySurname, byMockedAge), ck.Equals, true)
	c.Assert(LessThan(people[0], people[3], bySurname, byMockedAge), ck.Equals, false)
	attrs.AssertNumberOfCalls(c, "Age", 0)

	attrs.On("Age", people[3]).Return(19)
	attrs.On("Age", people[4]).Return(43)
	c.Assert(LessThan(people[3], people[4], bySurname, byMockedAge), ck.Equals, true)
	attrs.AssertNumberOfCalls(c, "Age", 2)
	attrs.AssertExpectations(c)
}

func (lct *LexCompareTests) TestShortCircuitPredicate(c *ck.C) {
	attrs := &attributeMock{}
	byMockedOrder := Pred(attrs.Before)

	c.Assert(LessThan(people[3], people[0], bySurname, byMockedOrder), ck.Equals, true)
	attrs.AssertNumberOfCalls(c, "Before", 0)

	// the predicate is probed in both directions before moving on
	a, b := people[0], people[1]
	attrs.On("Before", a, b).Return(false).Once()
	attrs.On("Before", b, a).Return(false).Once()
	c.Assert(LessThan(a, b, byMockedOrder, byInitial), ck.Equals, true)
	attrs.AssertExpectations(c)

	// a decision in the first direction needs no second probe
	attrs.On("Before", b, a).Return(true).Once()
	c.Assert(LessThan(b, a, byMockedOrder, byInitial), ck.Equals, true)
	attrs.AssertNumberOfCalls(c, "Before", 3)
}

func (lct *LexCompareTests) TestTieBreaking(c *ck.C) {
	grid := personGrid()
	for _, a := range grid {
		for _, b := range grid {
			if a.Surname != b.Surname {
				continue
			}

			c.Check(LessThan(a, b, bySurname, byAge), ck.Equals, LessThan(a, b, byAge),
				ck.Commentf("%v < %v", a, b))
		}
	}
}

func (lct *LexCompareTests) TestPredicateMatchesField(c *ck.C) {
	byAgePred := Pred(func(a, b person) bool { return a.Age < b.Age })

	grid := personGrid()
	for _, a := range grid {
		for _, b := range grid {
			c.Check(LessThan(a, b, byAgePred), ck.Equals, LessThan(a, b, byAge))
			c.Check(LessThan(a, b, bySurname, byAgePred, byInitial), ck.Equals,
				LessThan(a, b, bySurname, byAge, byInitial))
		}
	}
}

func (lct *LexCompareTests) TestMultiKindChaining(c *ck.C) {
	byDecade := Accessor("Decade", person.Decade)
	bySurnameLength := Transform(func(p person) int { return len(p.Surname) })
	byInitialPred := Pred(func(a, b person) bool { return a.Initial < b.Initial })

	manual := func(a, b person) bool {
		if a.Surname < b.Surname {
			return true
		} else if b.Surname < a.Surname {
			return false
		} else if a.Decade() < b.Decade() {
			return true
		} else if b.Decade() < a.Decade() {
			return false
		} else if len(a.Surname) < len(b.Surname) {
			return true
		} else if len(b.Surname) < len(a.Surname) {
			return false
		}

		return a.Initial < b.Initial
	}

	grid := personGrid()
	for _, a := range grid {
		for _, b := range grid {
			c.Check(LessThan(a, b, bySurname, byDecade, bySurnameLength, byInitialPred), ck.Equals, manual(a, b),
				ck.Commentf("%v < %v", a, b))
		}
	}
}

func (lct *LexCompareTests) TestDesc(c *ck.C) {
	older := person{"Doe", 43, 'J'}
	younger := person{"Doe", 19, 'J'}

	c.Assert(LessThan(older, younger, bySurname, Desc(byAge)), ck.Equals, true)
	c.Assert(LessThan(younger, older, bySurname, Desc(byAge)), ck.Equals, false)
	c.Assert(LessThan(younger, older, bySurname, Desc(Desc(byAge))), ck.Equals, true)

	// only the wrapped level is reversed
	c.Assert(LessThan(people[3], people[0], bySurname, Desc(byAge)), ck.Equals, true)

	c.Assert(Desc(byAge).Kind(), ck.Equals, KindField)
	c.Assert(Desc(byAge).String(), ck.Equals, "desc(field(age))")
}

func (lct *LexCompareTests) TestFieldWith(c *ck.C) {
	type event struct {
		Name    string
		Payload []byte
		Urgent  bool
	}

	byUrgent := Desc(FieldWith("urgent", func(e event) bool { return e.Urgent }, BoolKeyHandler{}))
	byPayload := FieldWith("payload", func(e event) []byte { return e.Payload }, BytesKeyHandler{})

	a := event{"a", []byte("abc"), true}
	b := event{"b", []byte("abd"), false}
	d := event{"d", []byte("abd"), true}

	c.Assert(LessThan(a, b, byUrgent, byPayload), ck.Equals, true)
	c.Assert(LessThan(b, d, byUrgent, byPayload), ck.Equals, false)
	c.Assert(LessThan(a, d, byUrgent, byPayload), ck.Equals, true)
	c.Assert(Compare(event{Payload: nil}, event{Payload: []byte{}}, byPayload), ck.Equals, Equivalent)
	c.Assert(byPayload.String(), ck.Equals, "field(payload)")
}

func (lct *LexCompareTests) TestKinds(c *ck.C) {
	c.Assert(bySurname.Kind(), ck.Equals, KindField)
	c.Assert(Accessor("Decade", person.Decade).Kind(), ck.Equals, KindAccessor)
	c.Assert(Transform(func(p person) int { return p.Age * 2 }).Kind(), ck.Equals, KindTransform)
	c.Assert(Pred(manualLess).Kind(), ck.Equals, KindPredicate)

	c.Assert(bySurname.String(), ck.Equals, "field(surname)")
	c.Assert(Accessor("Decade", person.Decade).String(), ck.Equals, "accessor(Decade)")
	c.Assert(Transform(func(p person) int { return p.Age }).String(), ck.Equals, "transform")
	c.Assert(Pred(manualLess).String(), ck.Equals, "predicate")
	c.Assert(Kind(9).String(), ck.Equals, "Kind(9)")

	c.Assert(Less.String(), ck.Equals, "less")
	c.Assert(Equivalent.Reverse(), ck.Equals, Equivalent)
	c.Assert(Greater.Reverse(), ck.Equals, Less)
}

func (lct *LexCompareTests) TestNilFunctionsRejected(c *ck.C) {
	c.Assert(func() { Field[person, int]("age", nil) }, ck.PanicMatches, "lexcompare: Field requires a getter")
	c.Assert(func() { Accessor[person, int]("age", nil) }, ck.PanicMatches, "lexcompare: Accessor requires a method")
	c.Assert(func() { Transform[person, int](nil) }, ck.PanicMatches, "lexcompare: Transform requires a function")
	c.Assert(func() { Pred[person](nil) }, ck.PanicMatches, "lexcompare: Pred requires a less function")
}

func (lct *LexCompareTests) TestCallerPanicsPropagate(c *ck.C) {
	boom := Transform(func(p person) int { panic("boom") })

	c.Assert(func() { LessThan(people[0], people[1], bySurname, byAge, boom) }, ck.PanicMatches, "boom")

	// decided before reaching the panicking selector
	c.Assert(LessThan(people[3], people[0], bySurname, boom), ck.Equals, true)
}
