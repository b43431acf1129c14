package causestats

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func storeWithCounts(counts []int) *fakeQueryAPI {
	items := make([]map[string]types.AttributeValue, 0, len(counts))
	for i, c := range counts {
		items = append(items, statItem("cause123", "desc", fmt.Sprintf("company%d", i), fmt.Sprintf("Company %d", i), c))
	}
	return &fakeQueryAPI{items: items, simulateStore: true}
}

func TestProperty_TopCompaniesBoundedAndOrdered(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("returns min(N,3) records", prop.ForAll(
		func(counts []int) bool {
			svc := NewService(storeWithCounts(counts), DefaultConfig())
			stats, err := svc.TopCompaniesByCause(context.Background(), "cause123")
			if err != nil {
				return false
			}
			return len(stats) == min(len(counts), DefaultLimit)
		},
		gen.SliceOf(gen.IntRange(0, 10000)),
	))

	properties.Property("counts are non-increasing and share the cause id", prop.ForAll(
		func(counts []int) bool {
			svc := NewService(storeWithCounts(counts), DefaultConfig())
			stats, err := svc.TopCompaniesByCause(context.Background(), "cause123")
			if err != nil {
				return false
			}
			for i := range stats {
				if stats[i].CauseID != "cause123" {
					return false
				}
				if i > 0 && stats[i].BoycottCount > stats[i-1].BoycottCount {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 10000)),
	))

	properties.Property("repeated lookups against an unchanged store are identical", prop.ForAll(
		func(counts []int) bool {
			svc := NewService(storeWithCounts(counts), DefaultConfig())
			first, err := svc.TopCompaniesByCause(context.Background(), "cause123")
			if err != nil {
				return false
			}
			second, err := svc.TopCompaniesByCause(context.Background(), "cause123")
			if err != nil {
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		gen.SliceOf(gen.IntRange(0, 10000)),
	))

	properties.TestingRun(t)
}
