package dto

import "github.com/BruksfildServices01/salon-backend/internal/models"

type TechnicianDTO struct {
	ID       uint        `json:"id"`
	Account  AccountDTO  `json:"account"`
	Skills   []SkillDTO  `json:"skills"`
	Branches []BranchDTO `json:"branches"`
}

func Technician(t *models.Technician) TechnicianDTO {
	out := TechnicianDTO{
		ID:       t.ID,
		Account:  Account(&t.Account),
		Skills:   make([]SkillDTO, 0, len(t.Skills)),
		Branches: make([]BranchDTO, 0, len(t.Branches)),
	}
	for i := range t.Skills {
		out.Skills = append(out.Skills, Skill(&t.Skills[i]))
	}
	for i := range t.Branches {
		out.Branches = append(out.Branches, Branch(&t.Branches[i]))
	}
	return out
}
