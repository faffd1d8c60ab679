// Command demo walks through every container in the toolkit,
// reproducing the classic scenarios: stack pop order, chained hash
// collisions, heap-sort extraction and an open-addressing resize.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/KnightChaser/datakit"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	demoVector()
	demoStack()
	demoList()
	demoDList()
	demoHeap()
	demoPriorityQueue()
	demoHashMap()
	demoHashSet()
}

func fatal(err error) {
	log.WithError(err).Error("demo failed")
	os.Exit(1)
}

func demoVector() {
	logger := log.WithFields(log.Fields{"container": "vector"})

	vec, err := datakit.NewVector[int](4)
	if err != nil {
		fatal(err)
	}

	for i := 1; i <= 10; i++ {
		vec.Append(i)
	}
	logger.WithFields(log.Fields{
		"size":     vec.Size(),
		"capacity": vec.Capacity(),
		"values":   vec.Values(),
	}).Info("appended 1..10")

	if i, ok := vec.Find(5); ok {
		logger.WithField("index", i).Info("found value 5")
	}

	if err := vec.Delete(3); err != nil {
		fatal(err)
	}
	logger.WithField("values", vec.Values()).Info("deleted value 3")
}

func demoStack() {
	logger := log.WithFields(log.Fields{"container": "stack"})

	s, err := datakit.NewStack[int](4)
	if err != nil {
		fatal(err)
	}

	for i := 1; i <= 10; i++ {
		s.Push(i)
	}
	logger.WithFields(log.Fields{
		"size":     s.Size(),
		"capacity": s.Capacity(),
	}).Info("pushed 1..10 onto capacity 4")

	popped := make([]int, 0, s.Size())
	for !s.IsEmpty() {
		v, err := s.Pop()
		if err != nil {
			fatal(err)
		}
		popped = append(popped, v)
	}
	logger.WithField("order", popped).Info("popped everything")
}

func demoList() {
	logger := log.WithFields(log.Fields{"container": "list"})

	released := 0
	l := datakit.NewList(datakit.WithRelease[int](func(int) {
		released++
	}))

	for i := 0; i < 5; i++ {
		l.Append(i)
	}

	if node, ok := l.Find(3); ok {
		logger.WithField("value", node.Value).Info("found")
	}
	if err := l.Remove(2); err != nil {
		fatal(err)
	}

	remaining := make([]int, 0, l.Len())
	for n := l.Front(); n != nil; n = n.Next() {
		remaining = append(remaining, n.Value)
	}
	logger.WithFields(log.Fields{
		"remaining": remaining,
		"released":  released,
	}).Info("removed value 2")

	l.Clear()
	logger.WithField("released", released).Info("cleared")
}

func demoDList() {
	logger := log.WithFields(log.Fields{"container": "dlist"})

	l := datakit.NewDList[int64]()
	l.PushBack(2)
	middle := l.PushBack(3)
	l.PushFront(1)

	if err := l.Remove(middle); err != nil {
		fatal(err)
	}

	forward := make([]int64, 0, l.Len())
	for n := l.Front(); n != nil; n = n.Next() {
		forward = append(forward, n.Value)
	}
	backward := make([]int64, 0, l.Len())
	for n := l.Back(); n != nil; n = n.Prev() {
		backward = append(backward, n.Value)
	}
	logger.WithFields(log.Fields{
		"forward":  forward,
		"backward": backward,
	}).Info("removed middle node by handle")
}

func demoHeap() {
	logger := log.WithFields(log.Fields{"container": "heap"})

	h, err := datakit.NewMaxHeap[int64](4)
	if err != nil {
		fatal(err)
	}

	for i := int64(1); i <= 10; i++ {
		v := i * (-2)
		if i%2 == 1 {
			v = i * 3
		}
		h.Push(v)
	}

	order := make([]int64, 0, h.Len())
	for !h.IsEmpty() {
		v, err := h.Pop()
		if err != nil {
			fatal(err)
		}
		order = append(order, v)
	}
	logger.WithField("descending", order).Info("heap sort")
}

func demoPriorityQueue() {
	logger := log.WithFields(log.Fields{"container": "pqueue"})

	pq, err := datakit.NewPriorityQueue(8, func(a, b int64) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	if err != nil {
		fatal(err)
	}

	for _, v := range []int64{5, 20, 110, 14, -21, -84, 3} {
		pq.Push(v)
	}

	top, err := pq.Peek()
	if err != nil {
		fatal(err)
	}
	logger.WithField("max", top).Info("peeked")

	order := make([]int64, 0, pq.Len())
	for !pq.IsEmpty() {
		v, err := pq.Pop()
		if err != nil {
			fatal(err)
		}
		order = append(order, v)
	}
	logger.WithField("order", order).Info("drained")
}

func demoHashMap() {
	logger := log.WithFields(log.Fields{"container": "hashmap"})

	m := datakit.NewHashMap[int64, int]()

	// 1, 17 and 33 collide in bucket 1 at the initial capacity of 16.
	m.Set(1, 100)
	m.Set(17, 1700)
	m.Set(33, 3300)

	for _, key := range []int64{1, 17, 33} {
		if v, ok := m.Get(key); ok {
			logger.WithFields(log.Fields{"key": key, "value": v}).Info("collision lookup")
		}
	}

	for i := int64(2); i <= 15; i++ {
		m.Set(i, int(i*10))
	}
	logger.WithFields(log.Fields{
		"size":     m.Len(),
		"capacity": m.Capacity(),
	}).Info("filled past the load factor")
}

func demoHashSet() {
	logger := log.WithFields(log.Fields{"container": "hashset"})

	s, err := datakit.NewHashSet[int64](10, 0.75)
	if err != nil {
		fatal(err)
	}

	for i := int64(0); i < 20; i++ {
		if err := s.Insert(i); err != nil {
			fatal(err)
		}
	}
	logger.WithFields(log.Fields{
		"size":     s.Len(),
		"capacity": s.Capacity(),
	}).Info("inserted 0..19 across a resize")

	if err := s.Insert(5); err != nil {
		logger.WithError(err).Info("duplicate insert rejected")
	}

	for i := int64(0); i < 20; i += 2 {
		if err := s.Remove(i); err != nil {
			fatal(err)
		}
	}
	logger.WithFields(log.Fields{
		"stats": s.Stats(),
	}).Info("removed the even keys")

	for i := int64(0); i < 20; i += 2 {
		if err := s.Insert(i); err != nil {
			fatal(err)
		}
	}
	logger.WithField("size", s.Len()).Info("reinserted the even keys over tombstones")
}
