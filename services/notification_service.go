package services

import (
	"log"
	"sync"

	"github.com/olvera93/FoodApp/entity"
	"github.com/olvera93/FoodApp/mailer"
	"github.com/olvera93/FoodApp/repository"
)

// NotificationService delivers mail asynchronously. Dispatch is
// fire-and-forget: failures are logged, recorded on the audit row, and
// never propagated to the business operation that triggered them.
type NotificationService struct {
	Repo   *repository.NotificationRepository
	Mailer mailer.Mailer

	wg sync.WaitGroup
}

func NewNotificationService(repo *repository.NotificationRepository, m mailer.Mailer) *NotificationService {
	return &NotificationService{Repo: repo, Mailer: m}
}

type NotificationIn struct {
	Recipient string
	Subject   string
	Body      string
	IsHTML    bool
}

func (s *NotificationService) Dispatch(in NotificationIn) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.deliver(in)
	}()
}

// Wait blocks until in-flight deliveries finish. Used on shutdown and
// in tests.
func (s *NotificationService) Wait() {
	s.wg.Wait()
}

func (s *NotificationService) deliver(in NotificationIn) {
	sent := true
	if err := s.Mailer.Send(mailer.Message{
		Recipient: in.Recipient,
		Subject:   in.Subject,
		Body:      in.Body,
		IsHTML:    in.IsHTML,
	}); err != nil {
		sent = false
		log.Printf("notification: send to %s failed: %v", in.Recipient, err)
	}

	row := entity.Notification{
		Recipient: in.Recipient,
		Subject:   in.Subject,
		Body:      in.Body,
		Type:      entity.NotificationEmail,
		IsHTML:    in.IsHTML,
		Sent:      sent,
	}
	if err := s.Repo.Create(&row); err != nil {
		log.Printf("notification: persist audit row failed: %v", err)
	}
}
