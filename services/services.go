package services

import (
	"github.com/pdlamini/portfolio/repositories"
)

// Services holds all service instances
type Services struct {
	Contact ContactService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Contact: NewContactService(repos.Contact),
	}
}
