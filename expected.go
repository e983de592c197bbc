package pcomb

import (
	"slices"
	"strconv"
	"strings"
)

// Expected is the set of descriptions of what a parser was looking for at a
// failure position. Merging two sets is a union; the items are kept sorted so
// the rendering does not depend on the order alternatives were tried in.
//
// The zero value is the empty set.
type Expected struct {
	one  string   // the only item when the set has exactly one
	many []string // sorted and deduplicated, used once the set grows past one
}

// Expect returns the set holding the given descriptions. Empty strings are
// ignored.
func Expect(descs ...string) Expected {
	var e Expected
	for _, d := range descs {
		if d != "" {
			e = e.Merge(Expected{one: d})
		}
	}
	return e
}

// Merge returns the union of both sets.
func (e Expected) Merge(o Expected) Expected {
	switch {
	case o.IsEmpty():
		return e
	case e.IsEmpty():
		return o
	case e.many == nil && o.many == nil && e.one == o.one:
		return e
	}

	items := make([]string, 0, e.Len()+o.Len())
	items = append(items, e.items()...)
	items = append(items, o.items()...)
	slices.Sort(items)
	items = slices.Compact(items)
	if len(items) == 1 {
		return Expected{one: items[0]}
	}
	return Expected{many: items}
}

// IsEmpty reports whether the set has no descriptions.
func (e Expected) IsEmpty() bool {
	return e.one == "" && len(e.many) == 0
}

// Len returns the number of descriptions.
func (e Expected) Len() int {
	if e.many != nil {
		return len(e.many)
	}
	if e.one != "" {
		return 1
	}
	return 0
}

// Contains reports whether desc is one of the descriptions.
func (e Expected) Contains(desc string) bool {
	return slices.Contains(e.items(), desc)
}

// Items returns the descriptions in sorted order.
func (e Expected) Items() []string {
	return slices.Clone(e.items())
}

func (e Expected) items() []string {
	if e.many != nil {
		return e.many
	}
	if e.one != "" {
		return []string{e.one}
	}
	return nil
}

// String renders the set for diagnostics, e.g. "'false' or 'true'".
func (e Expected) String() string {
	items := e.items()
	switch len(items) {
	case 0:
		return "nothing"
	case 1:
		return items[0]
	case 2:
		return items[0] + " or " + items[1]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

///////////////////////////////////////////////////////////////////////////////
// Failure
///////////////////////////////////////////////////////////////////////////////

// Failure describes why a parse attempt did not match: the furthest position
// reached and what was expected there. Causes holds the errors of user code
// that rejected the input at that position, such as the conversion function
// of TryMap, ordered by message.
//
// The zero value means "no failure" and is the identity for Merge.
type Failure struct {
	At       int
	Expected Expected
	Causes   []error
}

// IsZero reports whether f carries no failure information.
func (f Failure) IsZero() bool {
	return f.Expected.IsEmpty() && len(f.Causes) == 0
}

// Merge combines two failures with the furthest-failure rule: the one at the
// greater position wins, and at equal positions the expectations and causes
// are united. The result is the same whichever failure is the receiver.
func (f Failure) Merge(o Failure) Failure {
	switch {
	case o.IsZero():
		return f
	case f.IsZero():
		return o
	case o.At > f.At:
		return o
	case o.At < f.At:
		return f
	}

	return Failure{
		At:       f.At,
		Expected: f.Expected.Merge(o.Expected),
		Causes:   mergeCauses(f.Causes, o.Causes),
	}
}

// mergeCauses unites two cause lists, sorted by message. Causes with the same
// message are kept once, so a conversion reached along two paths is not
// reported twice.
func mergeCauses(a, b []error) []error {
	switch {
	case len(b) == 0:
		return a
	case len(a) == 0:
		return b
	}
	causes := make([]error, 0, len(a)+len(b))
	causes = append(causes, a...)
	causes = append(causes, b...)
	slices.SortStableFunc(causes, func(x, y error) int {
		return strings.Compare(x.Error(), y.Error())
	})
	return slices.CompactFunc(causes, func(x, y error) bool {
		return x.Error() == y.Error()
	})
}

// quote renders s as a literal description: 'foo'.
func quote(s string) string {
	q := strconv.Quote(s)
	return "'" + strings.ReplaceAll(q[1:len(q)-1], `\"`, `"`) + "'"
}
