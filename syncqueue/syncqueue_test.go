package syncqueue

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Queue", func() {
	var (
		q *Queue[int]
	)

	BeforeEach(func() {
		q = New[int]()
	})

	It("should be empty when created", func() {
		Expect(q.IsEmpty()).To(BeTrue())
		Expect(q.Size()).To(Equal(0))
		Expect(q.ToSlice()).To(BeEmpty())
	})

	It("should keep insertion order", func() {
		q.Put(1)
		q.Put(2)
		q.Put(3)

		Expect(q.Size()).To(Equal(3))
		Expect(q.ToSlice()).To(Equal([]int{1, 2, 3}))
	})

	It("should remove only the first match", func() {
		q.Put(1)
		q.Put(2)
		q.Put(1)

		Expect(q.Remove(1)).To(BeTrue())
		Expect(q.ToSlice()).To(Equal([]int{2, 1}))
	})

	It("should ignore removing an absent element", func() {
		q.Put(1)

		Expect(q.Remove(5)).To(BeFalse())
		Expect(q.ToSlice()).To(Equal([]int{1}))
	})

	It("should return a snapshot that is not affected by later changes", func() {
		q.Put(1)
		q.Put(2)

		snapshot := q.ToSlice()
		q.Remove(1)
		q.Put(3)

		Expect(snapshot).To(Equal([]int{1, 2}))
	})

	It("should clear", func() {
		q.Put(1)
		q.Put(2)

		q.Clear()

		Expect(q.IsEmpty()).To(BeTrue())
	})

	It("should allow the zero value to be used", func() {
		var zero Queue[string]

		zero.Put("a")

		Expect(zero.ToSlice()).To(Equal([]string{"a"}))
	})

	It("should stay consistent under concurrent puts and removes", func() {
		const n = 200

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)

			go func(v int) {
				defer wg.Done()

				q.Put(v)
				if v%2 == 0 {
					q.Remove(v)
				}
			}(i)
		}

		wg.Wait()

		Expect(q.Size()).To(Equal(n / 2))
		for _, v := range q.ToSlice() {
			Expect(v % 2).To(Equal(1))
		}
	})
})
