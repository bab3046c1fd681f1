package sorting

import "fmt"

// Tag is the presentational role of one element after the latest step.
type Tag int

const (
	Default Tag = iota
	Swapped
	InOrder
	Settled
	Inserted
	Pending
	Selected
	Finalized
	Merged
	Sorted
)

// Tags lists every tag, in declaration order.
var Tags = []Tag{Default, Swapped, InOrder, Settled, Inserted, Pending, Selected, Finalized, Merged, Sorted}

var tagNames = [...]string{
	Default:   "default",
	Swapped:   "swapped",
	InOrder:   "in_order",
	Settled:   "settled",
	Inserted:  "inserted",
	Pending:   "pending",
	Selected:  "selected",
	Finalized: "finalized",
	Merged:    "merged",
	Sorted:    "sorted",
}

func (t Tag) String() string {
	if t < 0 || int(t) >= len(tagNames) {
		return fmt.Sprintf("tag(%d)", int(t))
	}
	return tagNames[t]
}

func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(text []byte) error {
	for i, name := range tagNames {
		if name == string(text) {
			*t = Tag(i)
			return nil
		}
	}
	return fmt.Errorf("sorting: unknown tag %q", text)
}

func fill(tags []Tag, t Tag) {
	for i := range tags {
		tags[i] = t
	}
}
