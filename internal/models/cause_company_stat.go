package models

// CauseCompanyStat is one ranked (cause, company) row with its aggregate boycott count.
type CauseCompanyStat struct {
	CauseID      string `json:"cause_id"`
	CauseDesc    string `json:"cause_desc"`
	CompanyID    string `json:"company_id"`
	CompanyName  string `json:"company_name"`
	BoycottCount int    `json:"boycott_count"`
}

// NewCauseCompanyStat creates a CauseCompanyStat with the provided values
func NewCauseCompanyStat(causeID, causeDesc, companyID, companyName string, boycottCount int) CauseCompanyStat {
	return CauseCompanyStat{
		CauseID:      causeID,
		CauseDesc:    causeDesc,
		CompanyID:    companyID,
		CompanyName:  companyName,
		BoycottCount: boycottCount,
	}
}
