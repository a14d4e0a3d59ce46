package services

import (
	"errors"
	"log"
	"sort"
	"time"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/repositories"
)

type RequestStore interface {
	Create(req *models.DesignRequest) error
	FindByUser(userID string) ([]models.DesignRequest, error)
	FindByID(id string) (*models.DesignRequest, error)
	List(status string, limit, offset int) ([]models.DesignRequest, int, error)
	UpdateStatus(id, status string) error
}

type MessageStore interface {
	Create(msg *models.Message) error
	List() ([]models.Message, error)
	MarkRead(id string) error
}

type NotificationStore interface {
	Create(n *models.Notification) error
}

type StatusMailer interface {
	SendRequestStatusEmail(toEmail, clientName, projectType, status string) error
}

type RequestService struct {
	requests      RequestStore
	messages      MessageStore
	notifications NotificationStore
	mailer        StatusMailer
}

func NewRequestService() *RequestService {
	svc := &RequestService{
		requests:      repositories.NewRequestRepository(),
		messages:      repositories.NewMessageRepository(),
		notifications: repositories.NewNotificationRepository(),
	}

	if mailer, err := models.NewEmailService(); err == nil {
		svc.mailer = mailer
	}

	return svc
}

// CreateRequest stores a new design request. Status and creation time are
// stamped here; whatever the client sent for those fields is ignored.
func (s *RequestService) CreateRequest(userID string, req models.CreateRequestRequest) (*models.DesignRequest, error) {
	if !models.ValidProjectType(req.ProjectType) {
		return nil, errors.New("unknown project type")
	}

	request := &models.DesignRequest{
		UserID:      userID,
		ClientName:  req.ClientName,
		Email:       req.Email,
		ProjectType: req.ProjectType,
		Description: req.Description,
		Budget:      req.Budget,
		Status:      models.RequestPending,
		CreatedAt:   time.Now(),
	}

	if err := s.requests.Create(request); err != nil {
		return nil, err
	}

	return request, nil
}

// UserRequests returns only the given user's requests, newest first.
func (s *RequestService) UserRequests(userID string) ([]models.DesignRequest, error) {
	requests, err := s.requests.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.DesignRequest, 0, len(requests))
	for _, r := range requests {
		if r.UserID == userID {
			filtered = append(filtered, r)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}

func (s *RequestService) AllRequests(status string, limit, offset int) ([]models.DesignRequest, int, error) {
	return s.requests.List(status, limit, offset)
}

// UpdateStatus overwrites the status field and nothing else. Any status
// may follow any other; the value just has to be one of the four states.
// The request owner, when known, gets a notification and an email.
func (s *RequestService) UpdateStatus(id, status string) (*models.DesignRequest, error) {
	if !models.ValidRequestStatus(status) {
		return nil, errors.New("invalid request status")
	}

	request, err := s.requests.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.requests.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	request.Status = status

	if request.UserID != "" {
		notifType := models.NotificationInfo
		switch status {
		case models.RequestCompleted:
			notifType = models.NotificationSuccess
		case models.RequestRejected:
			notifType = models.NotificationError
		}

		err := s.notifications.Create(&models.Notification{
			UserID:  request.UserID,
			Title:   "Request status updated",
			Message: "Your " + request.ProjectType + " request is now " + status,
			Type:    notifType,
		})
		if err != nil {
			log.Println("Failed to create status notification:", err)
		}
	}

	if s.mailer != nil {
		if err := s.mailer.SendRequestStatusEmail(request.Email, request.ClientName, request.ProjectType, status); err != nil {
			log.Println("Failed to send status email:", err)
		}
	}

	return request, nil
}

// SendMessage stores a contact-form message. Always starts unread.
func (s *RequestService) SendMessage(req models.SendMessageRequest) (*models.Message, error) {
	msg := &models.Message{
		Name:  req.Name,
		Phone: req.Phone,
		Text:  req.Text,
		Date:  time.Now(),
		Read:  false,
	}

	if err := s.messages.Create(msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *RequestService) Messages() ([]models.Message, error) {
	return s.messages.List()
}

func (s *RequestService) MarkMessageRead(id string) error {
	return s.messages.MarkRead(id)
}
