package restapi

import (
	"net/http"

	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/auth"
	"github.com/kesslersoftware/top-companies-by-cause-lambda/internal/utils"
)

func (api *RestAPI) topCompaniesHandler(w http.ResponseWriter, r *http.Request) {
	subject := auth.SubjectFromContext(r.Context())
	causeID := utils.ExtractParam(r, "cause_id")

	result := api.TopCompanies(r.Context(), subject, causeID)
	api.sendResponse(w, r, result.Status, result.Body)
}
