package dto

import "github.com/teachteam/backend/internal/app/models"

// CourseWithSelectedCandidates is one row of the per-course selection
// report: the course plus the distinct candidates selected by any lecturer
// assigned to it.
type CourseWithSelectedCandidates struct {
	Course             models.Course       `json:"course"`
	SelectedCandidates []*models.Candidate `json:"selectedCandidates"`
}

// SelectionClassification buckets candidates by how often lecturers
// selected them. Every candidate sharing the extreme count is included;
// when all non-zero counts are equal, neither extreme bucket is filled.
type SelectionClassification struct {
	MostSelected  []*models.CandidateSelectionCount `json:"mostSelected"`
	LeastSelected []*models.CandidateSelectionCount `json:"leastSelected"`
	NotSelected   []*models.Candidate               `json:"notSelected"`
}
