// Package sorting provides the step-driven core of the sort animator.
//
// A [Stepper] owns a sequence of distinct integers, an index-aligned
// coloring and a per-algorithm progress cursor. Each call to [Stepper.Step]
// performs one discrete unit of the selected [Algorithm]:
//
//   - BubbleSort: one full inner pass, settling the largest remaining value
//   - InsertionSort: one full insertion into the sorted prefix
//   - SelectionSort: one minimum scan and swap
//   - MergeSort: one merge sort of a prefix that grows by one element
//   - QuickSort: the whole sort in a single step
//
// # Example
//
//	s := sorting.NewStepper(rand.New(rand.NewSource(1)))
//	_ = s.Create(20)
//	_ = s.Begin(sorting.BubbleSort)
//	for {
//		res, _ := s.Step()
//		render(s.Frame())
//		if res == sorting.Done {
//			break
//		}
//	}
//
// # Thread Safety
//
// Stepper instances are NOT thread-safe. The animation package serializes
// access when a background driver is used.
package sorting
