package sorting

import (
	"fmt"
	"strings"
)

// Algorithm selects the sort being animated. The zero value is not a valid
// selection.
type Algorithm int

const (
	UnknownAlgorithm Algorithm = iota
	BubbleSort
	InsertionSort
	SelectionSort
	MergeSort
	QuickSort
)

// Algorithms lists every supported algorithm in menu order.
var Algorithms = []Algorithm{SelectionSort, BubbleSort, InsertionSort, MergeSort, QuickSort}

var algorithmNames = map[Algorithm]string{
	BubbleSort:    "bubble",
	InsertionSort: "insertion",
	SelectionSort: "selection",
	MergeSort:     "merge",
	QuickSort:     "quick",
}

var algorithmTitles = map[Algorithm]string{
	BubbleSort:    "Bubble Sort",
	InsertionSort: "Insertion Sort",
	SelectionSort: "Selection Sort",
	MergeSort:     "Merge Sort",
	QuickSort:     "Quick Sort",
}

var algorithmInfo = map[Algorithm]string{
	BubbleSort:    "one pass per step, largest value settles right",
	InsertionSort: "one insertion into the sorted prefix per step",
	SelectionSort: "one minimum scan and swap per step",
	MergeSort:     "merge sort over a prefix growing by one",
	QuickSort:     "lomuto quicksort, completes in a single step",
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// Title is the human readable name, e.g. "Bubble Sort".
func (a Algorithm) Title() string {
	if t, ok := algorithmTitles[a]; ok {
		return t
	}
	return "Unknown"
}

// TotalSteps is the number of Step calls a run over n values takes to
// reach Done.
func (a Algorithm) TotalSteps(n int) int {
	switch {
	case n <= 0 || !a.Valid():
		return 0
	case a == QuickSort:
		return 1
	case n == 1:
		return 0
	default:
		return n - 1
	}
}

// Description is a one line summary of how the algorithm is stepped.
func (a Algorithm) Description() string { return algorithmInfo[a] }

func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm accepts "bubble", "bubble_sort", "bubble-sort" and
// "Bubble Sort" style identifiers.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	key = strings.TrimSuffix(key, "sort")
	for a, n := range algorithmNames {
		if n == key {
			return a, nil
		}
	}
	return UnknownAlgorithm, fmt.Errorf("%w: %q", ErrInvalidAlgorithm, name)
}

// AlgorithmNames returns the canonical identifiers in menu order.
func AlgorithmNames() []string {
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = a.String()
	}
	return names
}
