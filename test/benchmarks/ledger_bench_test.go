package benchmarks

import (
	"fmt"
	"testing"

	"github.com/ammerola/fifo-ledger/internal/core/domain"
)

func BenchmarkAllocateFIFO(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		batches := makeBatches("BENCH", n, 100)
		// a sale spanning about half the open batches
		qty := int64(n) * 50

		b.Run(fmt.Sprintf("batches=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := domain.AllocateFIFO("BENCH", batches, qty); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAllocateFIFO_Insufficient(b *testing.B) {
	batches := makeBatches("BENCH", 500, 10)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = domain.AllocateFIFO("BENCH", batches, 5001)
	}
}

func BenchmarkInventoryStatus(b *testing.B) {
	batches := makeBatches("BENCH", 1000, 25)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = domain.NewInventoryStatus("BENCH", batches)
	}
}

func BenchmarkBuildLedger(b *testing.B) {
	for _, n := range []int{100, 1000} {
		batches := makeBatches("BENCH", n, 100)
		sales := makeSales("BENCH", n, 40)

		b.Run(fmt.Sprintf("rows=%d", 2*n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = domain.BuildLedger(batches, sales)
			}
		})
	}
}
