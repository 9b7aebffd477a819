package queue

import (
	"math/rand"
	"testing"
)

func benchmarkPushBack(b *testing.B, n int) {
	b.ReportAllocs()
	for b.Loop() {
		d := NewDeque[int]()
		for i := range n {
			d.PushBack(i)
		}
	}
}

func benchmarkPushPopEnds(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(42))
	ops := make([]int, n)
	for i := range ops {
		ops[i] = rng.Intn(4)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		d := NewDeque[int]()
		for i, op := range ops {
			switch op {
			case 0:
				d.PushBack(i)
			case 1:
				d.PushFront(i)
			case 2:
				d.PopFront()
			case 3:
				d.PopBack()
			}
		}
	}
}

func BenchmarkDequePushBack_100(b *testing.B)   { benchmarkPushBack(b, 100) }
func BenchmarkDequePushBack_1000(b *testing.B)  { benchmarkPushBack(b, 1000) }
func BenchmarkDequePushBack_10000(b *testing.B) { benchmarkPushBack(b, 10000) }

func BenchmarkDequePushPopEnds_1000(b *testing.B)  { benchmarkPushPopEnds(b, 1000) }
func BenchmarkDequePushPopEnds_10000(b *testing.B) { benchmarkPushPopEnds(b, 10000) }
