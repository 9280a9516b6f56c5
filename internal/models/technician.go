package models

import "time"

// Technician is the staff profile of an Account. Skills and Branches are
// loaded by the repository from the explicit join tables below.
type Technician struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccountID uint    `gorm:"uniqueIndex;not null" json:"account_id"`
	Account   Account `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"account"`

	Skills   []Skill  `gorm:"-" json:"skills"`
	Branches []Branch `gorm:"-" json:"branches"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TechnicianSkill struct {
	TechnicianID uint       `gorm:"primaryKey;autoIncrement:false"`
	Technician   Technician `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	SkillID      uint       `gorm:"primaryKey;autoIncrement:false;index"`
	Skill        Skill      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	CreatedAt time.Time
}

type TechnicianBranch struct {
	TechnicianID uint       `gorm:"primaryKey;autoIncrement:false"`
	Technician   Technician `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	BranchID     uint       `gorm:"primaryKey;autoIncrement:false;index"`
	Branch       Branch     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	CreatedAt time.Time
}
