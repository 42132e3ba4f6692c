package dto

// BulkActionRequest selects an arbitrary set of records by internal id
type BulkActionRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,dive,gt=0"`
}

// BulkActionResponse reports how many records a bulk action touched
type BulkActionResponse struct {
	Affected int64 `json:"affected" example:"3"`
}

// PrepareEmailResponse carries the collected addresses of the selected alunos
type PrepareEmailResponse struct {
	Emails []string `json:"emails"`
	Count  int      `json:"count" example:"3"`
}
