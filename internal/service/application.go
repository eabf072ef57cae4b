package service

import (
	"log/slog"

	"github.com/springvale/admissions/internal/model"
	"github.com/springvale/admissions/internal/repository"
)

type ApplicationService struct {
	appRepo repository.ApplicationRepository
	email   *EmailService
}

func NewApplicationService(appRepo repository.ApplicationRepository, email *EmailService) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		email:   email,
	}
}

// Submit persists the application and, when the notifier is configured,
// fires off the confirmation email without waiting for it. A failed send
// is logged only: the record is already stored and the client response
// must not depend on mail delivery.
func (s *ApplicationService) Submit(app *model.Application) (int64, error) {
	id, err := s.appRepo.Create(app)
	if err != nil {
		return 0, err
	}

	if s.email.Enabled() {
		go func(email, name string) {
			sendErr := s.email.SendApplicationReceived(email, name)
			if sendErr != nil {
				slog.Error("failed to send confirmation email", "error", sendErr, "to", email)
			}
		}(app.Email, app.Name)
	}

	return id, nil
}

// List returns every application, newest first.
func (s *ApplicationService) List() ([]model.Application, error) {
	return s.appRepo.All()
}
