package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCauseCompanyStatJSONFieldOrder(t *testing.T) {
	stats := []CauseCompanyStat{
		NewCauseCompanyStat("cause123", "cause_desc1", "company1", "Company One", 12),
		NewCauseCompanyStat("cause123", "cause_desc2", "company2", "Company Two", 10),
	}

	data, err := json.Marshal(stats)
	require.NoError(t, err)

	expected := `[{"cause_id":"cause123","cause_desc":"cause_desc1","company_id":"company1","company_name":"Company One","boycott_count":12},` +
		`{"cause_id":"cause123","cause_desc":"cause_desc2","company_id":"company2","company_name":"Company Two","boycott_count":10}]`
	assert.Equal(t, expected, string(data))
}

func TestCauseCompanyStatZeroValue(t *testing.T) {
	data, err := json.Marshal(CauseCompanyStat{CauseID: "cause123"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"cause_id":"cause123","cause_desc":"","company_id":"","company_name":"","boycott_count":0}`, string(data))
}
