package dto

// HomeResponse carries the dashboard aggregates, recomputed on every request
type HomeResponse struct {
	TotalCursos int64 `json:"totalCursos" example:"12"`
	TotalAlunos int64 `json:"totalAlunos" example:"340"`
}
