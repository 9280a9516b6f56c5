package dto

import (
	"github.com/BruksfildServices01/salon-backend/internal/domain/salon"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

type AppointmentDTO struct {
	ID   uint   `json:"id"`
	Date string `json:"date"`
	Time string `json:"time"`

	Branch     BranchDTO     `json:"branch"`
	Client     ClientDTO     `json:"client"`
	Technician TechnicianDTO `json:"technician"`
	Service    ServiceDTO    `json:"service"`
	Payment    *PaymentDTO   `json:"payment"`
	Discount   *DiscountDTO  `json:"discount"`

	Warranty      bool   `json:"warranty"`
	Commission    string `json:"commission"`
	Tip           string `json:"tip"`
	Courtesy      string `json:"courtesy"`
	DiscountPrice string `json:"discount_price"`
	FinalIncome   string `json:"final_income"`
}

// Appointment expects the children to be loaded.
func Appointment(ap *models.Appointment) AppointmentDTO {
	out := AppointmentDTO{
		ID:            ap.ID,
		Date:          salon.FormatDate(ap.Date),
		Time:          ap.Time.String(),
		Branch:        Branch(&ap.Branch),
		Client:        Client(&ap.Client),
		Technician:    Technician(&ap.Technician),
		Service:       Service(&ap.Service),
		Warranty:      ap.Warranty,
		Commission:    ap.Commission.StringFixed(2),
		Tip:           ap.Tip.StringFixed(2),
		Courtesy:      ap.Courtesy.StringFixed(2),
		DiscountPrice: ap.DiscountPrice.StringFixed(2),
		FinalIncome:   ap.FinalIncome.StringFixed(2),
	}

	if ap.Payment != nil {
		p := Payment(ap.Payment)
		out.Payment = &p
	}
	if ap.Discount != nil {
		d := Discount(ap.Discount)
		out.Discount = &d
	}
	return out
}
