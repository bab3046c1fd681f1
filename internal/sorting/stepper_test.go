package sorting_test

import (
	"math/rand"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/sorting"
)

func runToDone(s *sorting.Stepper) (calls int) {
	for {
		res, err := s.Step()
		Expect(err).NotTo(HaveOccurred())
		calls++
		f := s.Frame()
		Expect(f.Tags).To(HaveLen(len(f.Values)))
		if res == sorting.Done {
			return calls
		}
		Expect(calls).To(BeNumerically("<", 200), "stepper never finished")
	}
}

var _ = Describe("Stepper", func() {
	var s *sorting.Stepper

	BeforeEach(func() {
		s = sorting.NewStepper(rand.New(rand.NewSource(7)))
	})

	Describe("Create", func() {
		It("draws size distinct values from 1..99 with default tags", func() {
			Expect(s.Create(5)).To(Succeed())
			f := s.Frame()
			Expect(f.Values).To(HaveLen(5))
			Expect(f.Tags).To(Equal([]sorting.Tag{sorting.Default, sorting.Default, sorting.Default, sorting.Default, sorting.Default}))

			seen := map[int]bool{}
			for _, v := range f.Values {
				Expect(v).To(BeNumerically(">=", 1))
				Expect(v).To(BeNumerically("<=", 99))
				Expect(seen).NotTo(HaveKey(v))
				seen[v] = true
			}
		})

		It("accepts every size up to the pool", func() {
			for size := 1; size <= sorting.PoolSize; size++ {
				Expect(s.Create(size)).To(Succeed())
				Expect(s.Len()).To(Equal(size))
			}
			vals := s.Frame().Values
			sort.Ints(vals)
			Expect(vals[0]).To(Equal(1))
			Expect(vals[98]).To(Equal(99))
		})

		DescribeTable("rejects sizes outside the pool",
			func(size int) {
				Expect(s.Create(size)).To(MatchError(sorting.ErrInvalidSize))
				Expect(s.HasSequence()).To(BeFalse())
			},
			Entry("zero", 0),
			Entry("negative", -3),
			Entry("above pool", 100),
		)

		DescribeTable("Load rejects sequences outside the pool",
			func(values []int, want error) {
				Expect(s.Load([]int{2, 1})).To(Succeed())
				Expect(s.Load(values)).To(MatchError(want))
				Expect(s.Frame().Values).To(Equal([]int{2, 1}))
			},
			Entry("zero", []int{3, 0, 1}, sorting.ErrInvalidValues),
			Entry("above max", []int{3, 100, 1}, sorting.ErrInvalidValues),
			Entry("negative", []int{-7, 2}, sorting.ErrInvalidValues),
			Entry("duplicate", []int{5, 3, 5}, sorting.ErrInvalidValues),
			Entry("mixed", []int{0, 500, -7, 5, 5}, sorting.ErrInvalidValues),
			Entry("empty", []int{}, sorting.ErrInvalidSize),
		)

		It("loads the full pool in any order", func() {
			values := make([]int, sorting.PoolSize)
			for i := range values {
				values[i] = sorting.MaxValue - i
			}
			Expect(s.Load(values)).To(Succeed())
			Expect(sorting.ValidateValues(s.Frame().Values)).To(Succeed())
		})

		It("replaces the run state of an earlier sequence", func() {
			Expect(s.Load([]int{5, 3, 4, 1, 2})).To(Succeed())
			Expect(s.Begin(sorting.BubbleSort)).To(Succeed())
			_, _ = s.Step()
			Expect(s.Create(3)).To(Succeed())
			f := s.Frame()
			Expect(f.Steps).To(Equal(0))
			Expect(f.Algorithm).To(Equal(sorting.UnknownAlgorithm))
			Expect(f.Tags).To(HaveLen(3))
		})
	})

	Describe("Step", func() {
		It("fails without a sequence", func() {
			_, err := s.Step()
			Expect(err).To(MatchError(sorting.ErrNoSequence))
		})

		It("fails without an algorithm", func() {
			Expect(s.Create(4)).To(Succeed())
			_, err := s.Step()
			Expect(err).To(MatchError(sorting.ErrInvalidAlgorithm))
		})

		It("rejects an unknown algorithm at Begin", func() {
			Expect(s.Create(4)).To(Succeed())
			Expect(s.Begin(sorting.Algorithm(42))).To(MatchError(sorting.ErrInvalidAlgorithm))
		})

		DescribeTable("sorts [5,3,4,1,2] in the expected number of steps",
			func(a sorting.Algorithm, want int) {
				Expect(s.Load([]int{5, 3, 4, 1, 2})).To(Succeed())
				Expect(s.Begin(a)).To(Succeed())
				Expect(runToDone(s)).To(Equal(want))
				Expect(s.Frame().Values).To(Equal([]int{1, 2, 3, 4, 5}))
				Expect(s.Finished()).To(BeTrue())
			},
			Entry("bubble", sorting.BubbleSort, 4),
			Entry("insertion", sorting.InsertionSort, 4),
			Entry("selection", sorting.SelectionSort, 4),
			Entry("merge", sorting.MergeSort, 4),
			Entry("quick", sorting.QuickSort, 1),
		)

		DescribeTable("sorts random sequences of every size",
			func(a sorting.Algorithm, steps func(n int) int) {
				for _, n := range []int{2, 3, 10, 50, 99} {
					Expect(s.Create(n)).To(Succeed())
					Expect(s.Begin(a)).To(Succeed())
					Expect(runToDone(s)).To(Equal(steps(n)))
					Expect(sort.IntsAreSorted(s.Frame().Values)).To(BeTrue())
				}
			},
			Entry("bubble", sorting.BubbleSort, func(n int) int { return n - 1 }),
			Entry("insertion", sorting.InsertionSort, func(n int) int { return n - 1 }),
			Entry("selection", sorting.SelectionSort, func(n int) int { return n - 1 }),
			Entry("merge", sorting.MergeSort, func(n int) int { return n - 1 }),
			Entry("quick", sorting.QuickSort, func(int) int { return 1 }),
		)

		It("keeps the cursor non-decreasing", func() {
			Expect(s.Create(30)).To(Succeed())
			for _, a := range sorting.Algorithms {
				Expect(s.Begin(a)).To(Succeed())
				last := s.Cursor()
				for !s.Finished() {
					_, err := s.Step()
					Expect(err).NotTo(HaveOccurred())
					Expect(s.Cursor()).To(BeNumerically(">=", last))
					last = s.Cursor()
				}
			}
		})

		It("is a no-op once done", func() {
			Expect(s.Load([]int{2, 1})).To(Succeed())
			Expect(s.Begin(sorting.BubbleSort)).To(Succeed())
			res, err := s.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(sorting.Done))
			before := s.Frame()

			res, err = s.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(sorting.Done))
			Expect(s.Frame()).To(Equal(before))
		})

		It("reports done immediately for a single value", func() {
			Expect(s.Load([]int{42})).To(Succeed())
			for _, a := range sorting.Algorithms {
				Expect(s.Begin(a)).To(Succeed())
				res, err := s.Step()
				Expect(err).NotTo(HaveOccurred())
				Expect(res).To(Equal(sorting.Done))
				Expect(s.Frame().Values).To(Equal([]int{42}))
			}
		})
	})

	Describe("coloring", func() {
		BeforeEach(func() {
			Expect(s.Load([]int{5, 3, 4, 1, 2})).To(Succeed())
		})

		It("marks swapped pairs and the settled bubble", func() {
			Expect(s.Begin(sorting.BubbleSort)).To(Succeed())
			_, _ = s.Step()
			f := s.Frame()
			Expect(f.Values).To(Equal([]int{3, 4, 1, 2, 5}))
			Expect(f.Tags).To(Equal([]sorting.Tag{sorting.Swapped, sorting.Swapped, sorting.Swapped, sorting.Swapped, sorting.Settled}))
		})

		It("splits inserted prefix from pending suffix", func() {
			Expect(s.Begin(sorting.InsertionSort)).To(Succeed())
			_, _ = s.Step()
			f := s.Frame()
			Expect(f.Values).To(Equal([]int{3, 5, 4, 1, 2}))
			Expect(f.Tags).To(Equal([]sorting.Tag{sorting.Inserted, sorting.Inserted, sorting.Pending, sorting.Pending, sorting.Pending}))
		})

		It("marks the selected swap and finalizes the slot", func() {
			Expect(s.Begin(sorting.SelectionSort)).To(Succeed())
			_, _ = s.Step()
			f := s.Frame()
			Expect(f.Values).To(Equal([]int{1, 3, 4, 5, 2}))
			Expect(f.Tags).To(Equal([]sorting.Tag{sorting.Finalized, sorting.Default, sorting.Default, sorting.Selected, sorting.Default}))
		})

		It("colors the merged prefix", func() {
			Expect(s.Begin(sorting.MergeSort)).To(Succeed())
			_, _ = s.Step()
			f := s.Frame()
			Expect(f.Values).To(Equal([]int{3, 5, 4, 1, 2}))
			Expect(f.Tags).To(Equal([]sorting.Tag{sorting.Merged, sorting.Merged, sorting.Pending, sorting.Pending, sorting.Pending}))
		})

		It("colors everything sorted after quicksort", func() {
			Expect(s.Begin(sorting.QuickSort)).To(Succeed())
			res, err := s.Step()
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(sorting.Done))
			f := s.Frame()
			Expect(f.Values).To(Equal([]int{1, 2, 3, 4, 5}))
			Expect(f.Tags).To(HaveEach(sorting.Sorted))
			Expect(f.Cursor).To(Equal(5))
		})
	})

	Describe("Reset", func() {
		It("clears everything and is idempotent", func() {
			Expect(s.Create(10)).To(Succeed())
			Expect(s.Begin(sorting.SelectionSort)).To(Succeed())
			_, _ = s.Step()

			s.Reset()
			first := s.Frame()
			s.Reset()
			Expect(s.Frame()).To(Equal(first))
			Expect(first.Values).To(BeEmpty())
			Expect(first.Tags).To(BeEmpty())
			Expect(first.Cursor).To(BeZero())

			_, err := s.Step()
			Expect(err).To(MatchError(sorting.ErrNoSequence))
		})
	})

	Describe("Frame", func() {
		It("returns copies", func() {
			Expect(s.Load([]int{2, 1})).To(Succeed())
			f := s.Frame()
			f.Values[0] = 99
			f.Tags[0] = sorting.Sorted
			Expect(s.Frame().Values).To(Equal([]int{2, 1}))
			Expect(s.Frame().Tags[0]).To(Equal(sorting.Default))
		})
	})
})

var _ = Describe("ParseSize", func() {
	DescribeTable("input errors",
		func(text string) {
			_, err := sorting.ParseSize(text)
			Expect(err).To(MatchError(sorting.ErrInvalidInput))
			var ie *sorting.InputError
			Expect(err).To(BeAssignableToTypeOf(ie))
		},
		Entry("empty", ""),
		Entry("spaces", "   "),
		Entry("letters", "abc"),
		Entry("float", "3.5"),
	)

	DescribeTable("size errors",
		func(text string) {
			_, err := sorting.ParseSize(text)
			Expect(err).To(MatchError(sorting.ErrInvalidSize))
		},
		Entry("zero", "0"),
		Entry("negative", "-3"),
		Entry("too big", "100"),
		Entry("overflows int", "99999999999999999999"),
		Entry("negative overflow", "-99999999999999999999"),
	)

	It("parses trimmed integers", func() {
		Expect(sorting.ParseSize(" 12 ")).To(Equal(12))
	})
})
