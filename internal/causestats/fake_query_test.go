package causestats

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeQueryAPI returns canned items and records every QueryInput it receives.
// When simulateStore is set it orders by boycott_count and applies Limit the
// way a table keyed on (cause_id, boycott_count) would.
type fakeQueryAPI struct {
	mu            sync.Mutex
	items         []map[string]types.AttributeValue
	err           error
	simulateStore bool
	inputs        []*dynamodb.QueryInput
}

func (f *fakeQueryAPI) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}

	items := append([]map[string]types.AttributeValue(nil), f.items...)
	if f.simulateStore {
		sort.SliceStable(items, func(i, j int) bool {
			ci, cj := itemCount(items[i]), itemCount(items[j])
			if params.ScanIndexForward != nil && !*params.ScanIndexForward {
				return ci > cj
			}
			return ci < cj
		})
		if params.Limit != nil && len(items) > int(*params.Limit) {
			items = items[:*params.Limit]
		}
	}

	return &dynamodb.QueryOutput{Items: items, Count: int32(len(items))}, nil
}

func (f *fakeQueryAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inputs)
}

func itemCount(item map[string]types.AttributeValue) int {
	n, ok := item["boycott_count"].(*types.AttributeValueMemberN)
	if !ok {
		return 0
	}
	v, _ := strconv.Atoi(n.Value)
	return v
}

func statItem(causeID, causeDesc, companyID, companyName string, count int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"cause_id":      &types.AttributeValueMemberS{Value: causeID},
		"cause_desc":    &types.AttributeValueMemberS{Value: causeDesc},
		"company_id":    &types.AttributeValueMemberS{Value: companyID},
		"company_name":  &types.AttributeValueMemberS{Value: companyName},
		"boycott_count": &types.AttributeValueMemberN{Value: strconv.Itoa(count)},
	}
}
