package balancing

import (
	"context"
	"testing"

	"github.com/vsinha/linebalance/pkg/domain/entities"
	testhelpers "github.com/vsinha/linebalance/pkg/infrastructure/testing"
)

func BenchmarkBalance_SimpleLine(b *testing.B) {
	ctx := context.Background()
	_, repo := testhelpers.BuildSimpleLineData()
	service := NewService()

	req := Request{
		OperatorCounts: map[entities.SectionName]int{"Front": 2, "Assembly": 1},
		Basis:          entities.BasisSMV,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.Balance(ctx, repo, req)
		if err != nil {
			b.Fatalf("Balance failed: %v", err)
		}
	}
}

func BenchmarkBalance_ShirtLine(b *testing.B) {
	ctx := context.Background()
	_, repo := testhelpers.BuildShirtLineData()
	service := NewService()

	req := Request{
		OperatorCounts: map[entities.SectionName]int{"Front": 2, "Sleeve": 2, "Assembly": 3},
		Basis:          entities.BasisSMV,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.Balance(ctx, repo, req)
		if err != nil {
			b.Fatalf("Balance failed: %v", err)
		}
	}
}

func BenchmarkBalance_WideLine(b *testing.B) {
	ctx := context.Background()
	sections, repo := testhelpers.BuildWideLineData(50, 20) // 50 sections, 1000 processes
	service := NewService()

	counts := make(map[entities.SectionName]int, len(sections))
	for _, section := range sections {
		counts[section.Name] = 4
	}
	req := Request{OperatorCounts: counts, Basis: entities.BasisSMV}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.Balance(ctx, repo, req)
		if err != nil {
			b.Fatalf("Balance failed: %v", err)
		}
	}
}

func BenchmarkTakt_WideLine(b *testing.B) {
	ctx := context.Background()
	_, repo := testhelpers.BuildWideLineData(50, 20)
	service := NewService()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := service.Takt(ctx, repo, 200, entities.BasisSMV)
		if err != nil {
			b.Fatalf("Takt failed: %v", err)
		}
	}
}
