package sorting

// routine is the per-algorithm step logic. advance performs one round of
// work on values/tags starting from cursor c and returns the new cursor.
type routine interface {
	start() int
	finished(c, n int) bool
	advance(values []int, tags []Tag, c int) int
}

var routines = map[Algorithm]routine{
	BubbleSort:    bubble{},
	InsertionSort: insertion{},
	SelectionSort: selection{},
	MergeSort:     merge{},
	QuickSort:     quick{},
}

type bubble struct{}

func (bubble) start() int { return 0 }
func (bubble) finished(c, n int) bool { return c >= n-1 }

func (bubble) advance(values []int, tags []Tag, c int) int {
	n := len(values)
	for j := 0; j < n-c-1; j++ {
		if values[j] > values[j+1] {
			values[j], values[j+1] = values[j+1], values[j]
			tags[j], tags[j+1] = Swapped, Swapped
		} else {
			tags[j], tags[j+1] = InOrder, InOrder
		}
	}
	tags[n-c-1] = Settled
	return c + 1
}

type insertion struct{}

func (insertion) start() int { return 1 }
func (insertion) finished(c, n int) bool { return c >= n }

func (insertion) advance(values []int, tags []Tag, c int) int {
	key := values[c]
	j := c - 1
	for j >= 0 && values[j] > key {
		values[j+1] = values[j]
		j--
	}
	values[j+1] = key

	fill(tags[:c+1], Inserted)
	fill(tags[c+1:], Pending)
	return c + 1
}

type selection struct{}

func (selection) start() int { return 0 }
func (selection) finished(c, n int) bool { return c >= n-1 }

func (selection) advance(values []int, tags []Tag, c int) int {
	minIdx := c
	for j := c + 1; j < len(values); j++ {
		if values[j] < values[minIdx] {
			minIdx = j
		}
	}
	if minIdx != c {
		values[c], values[minIdx] = values[minIdx], values[c]
		tags[c], tags[minIdx] = Selected, Selected
	}
	tags[c] = Finalized
	return c + 1
}

// merge re-sorts the prefix 0..c+1 from scratch on every step.
type merge struct{}

func (merge) start() int { return 0 }
func (merge) finished(c, n int) bool { return c >= n-1 }

func (merge) advance(values []int, tags []Tag, c int) int {
	end := c + 2
	prefix := make([]int, end)
	copy(prefix, values[:end])
	copy(values, mergeSort(prefix))

	fill(tags[:end], Merged)
	fill(tags[end:], Pending)
	return c + 1
}

func mergeSort(xs []int) []int {
	if len(xs) <= 1 {
		return xs
	}
	mid := len(xs) / 2
	return mergeRuns(mergeSort(xs[:mid]), mergeSort(xs[mid:]))
}

func mergeRuns(left, right []int) []int {
	out := make([]int, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] < right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	return append(out, right[j:]...)
}

// quick runs the whole sort in one step and jumps the cursor to n.
type quick struct{}

func (quick) start() int { return 0 }
func (quick) finished(c, n int) bool { return c >= n }

func (quick) advance(values []int, tags []Tag, c int) int {
	quickSort(values, 0, len(values)-1)
	fill(tags, Sorted)
	return len(values)
}

func quickSort(xs []int, low, high int) {
	if low < high {
		p := partition(xs, low, high)
		quickSort(xs, low, p-1)
		quickSort(xs, p+1, high)
	}
}

// partition is Lomuto's scheme with the last element as pivot.
func partition(xs []int, low, high int) int {
	pivot := xs[high]
	i := low - 1
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			i++
			xs[i], xs[j] = xs[j], xs[i]
		}
	}
	xs[i+1], xs[high] = xs[high], xs[i+1]
	return i + 1
}
