package demo

import (
	"mesalink_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type DemoRoutesManager struct {
	logger       *gecho.Logger
	emailService *services.EmailService
}

func NewDemoRoutesManager(logger *gecho.Logger, emailService *services.EmailService) *DemoRoutesManager {
	return &DemoRoutesManager{
		logger:       logger,
		emailService: emailService,
	}
}

func (drm *DemoRoutesManager) RegisterRoutes(r chi.Router) {
	r.Post("/demo", drm.HandleDemoRequest)
}
