package models

import "github.com/lobeca/lobeca-web/internal/domain"

// EstablishmentResponse заведение
type EstablishmentResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	PlanID  *int64 `json:"planID,omitempty"`
}

// PlanResponse тарифный план
type PlanResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	PriceMonthly float64 `json:"priceMonthly"`
	MaxWorkers   int     `json:"maxWorkers"`
	Current      bool    `json:"current"`
}

// CheckoutResponse данные экрана оформления подписки
type CheckoutResponse struct {
	Establishment EstablishmentResponse `json:"establishment"`
	Plans         []PlanResponse        `json:"plans"`
}

// FromDomainCheckout конвертирует domain модель в DTO и отмечает текущий план
func FromDomainCheckout(c *domain.Checkout) *CheckoutResponse {
	resp := &CheckoutResponse{
		Establishment: EstablishmentResponse{
			ID:      c.Establishment.ID,
			Name:    c.Establishment.Name,
			Address: c.Establishment.Address,
			Phone:   c.Establishment.Phone,
			PlanID:  c.Establishment.PlanID,
		},
		Plans: make([]PlanResponse, 0, len(c.Plans)),
	}

	for _, p := range c.Plans {
		resp.Plans = append(resp.Plans, PlanResponse{
			ID:           p.ID,
			Name:         p.Name,
			PriceMonthly: p.PriceMonthly,
			MaxWorkers:   p.MaxWorkers,
			Current:      c.Establishment.PlanID != nil && *c.Establishment.PlanID == p.ID,
		})
	}

	return resp
}
