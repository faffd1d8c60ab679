package datakit

import (
	"fmt"
	"math/rand"
	"testing"
)

var benchSizes = []int{
	1 << 10,
	1 << 16,
	1 << 20,
}

func benchKeys(n int) []int64 {
	rng := rand.New(rand.NewSource(42))
	keys := make([]int64, n)
	for i := range keys {
		keys[i] = rng.Int63()
	}
	return keys
}

func BenchmarkSetContains_Hit(b *testing.B) {
	for _, size := range benchSizes {
		keys := benchKeys(size)

		b.Run(fmt.Sprintf("variant=builtinMap/n=%d", size), func(b *testing.B) {
			m := make(map[int64]struct{}, size)
			for _, k := range keys {
				m[k] = struct{}{}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = m[keys[i%size]]
			}
		})

		b.Run(fmt.Sprintf("variant=hashSet/n=%d", size), func(b *testing.B) {
			s, err := NewHashSet[int64](size, 0.75)
			if err != nil {
				b.Fatal(err)
			}
			for _, k := range keys {
				_ = s.Insert(k)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Contains(keys[i%size])
			}
		})
	}
}

func BenchmarkSetContains_Miss(b *testing.B) {
	for _, size := range benchSizes {
		keys := benchKeys(size)

		b.Run(fmt.Sprintf("variant=builtinMap/n=%d", size), func(b *testing.B) {
			m := make(map[int64]struct{}, size)
			for _, k := range keys {
				m[k] = struct{}{}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = m[int64(-i)-1]
			}
		})

		b.Run(fmt.Sprintf("variant=hashSet/n=%d", size), func(b *testing.B) {
			s, err := NewHashSet[int64](size, 0.75)
			if err != nil {
				b.Fatal(err)
			}
			for _, k := range keys {
				_ = s.Insert(k)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Contains(int64(-i) - 1)
			}
		})
	}
}

func BenchmarkSetInsert(b *testing.B) {
	for _, size := range benchSizes {
		keys := benchKeys(size)

		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				s, err := NewHashSet[int64](size*2, 0.75)
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()

				for _, k := range keys {
					_ = s.Insert(k)
				}
			}
		})
	}
}
