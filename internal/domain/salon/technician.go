package salon

// AccountFields is the account embedded in a technician payload.
type AccountFields struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Name     string `json:"name" binding:"max=255"`
	Password string `json:"password" binding:"omitempty,min=5"`
}

// AccountPatch carries the account fields of a partial technician update.
type AccountPatch struct {
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

// TechnicianInput is the create / full update payload.
type TechnicianInput struct {
	Account  *AccountFields  `json:"account" binding:"required"`
	Skills   *[]SkillFields  `json:"skills" binding:"omitempty,dive"`
	Branches *[]BranchFields `json:"branches" binding:"omitempty,dive"`
}

// TechnicianPatch is the partial update payload. A nil field is left
// untouched; a non-nil list replaces the whole association, so an empty
// list clears it.
type TechnicianPatch struct {
	Account  *AccountPatch   `json:"account"`
	Skills   *[]SkillFields  `json:"skills" binding:"omitempty,dive"`
	Branches *[]BranchFields `json:"branches" binding:"omitempty,dive"`
}

// Patch converts a full update into the partial form.
func (in TechnicianInput) Patch() TechnicianPatch {
	var acct *AccountPatch
	if in.Account != nil {
		acct = &AccountPatch{
			Email:    &in.Account.Email,
			Name:     &in.Account.Name,
			Password: &in.Account.Password,
		}
	}
	return TechnicianPatch{
		Account:  acct,
		Skills:   in.Skills,
		Branches: in.Branches,
	}
}

// TechnicianRef is a technician embedded in an appointment: either an
// existing technician by id, or an account resolved like a technician
// create that reuses an existing profile.
type TechnicianRef struct {
	ID       *uint           `json:"id"`
	Account  *AccountFields  `json:"account" binding:"required_without=ID"`
	Skills   *[]SkillFields  `json:"skills" binding:"omitempty,dive"`
	Branches *[]BranchFields `json:"branches" binding:"omitempty,dive"`
}
