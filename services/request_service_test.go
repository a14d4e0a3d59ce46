package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adhamyosry771-star/filex-design/models"
)

type fakeRequestStore struct {
	requests []models.DesignRequest
}

func (f *fakeRequestStore) Create(req *models.DesignRequest) error {
	req.ID = "req-" + req.ClientName
	f.requests = append(f.requests, *req)
	return nil
}

func (f *fakeRequestStore) FindByUser(userID string) ([]models.DesignRequest, error) {
	// Deliberately returns everything: the service owns filter and order.
	return f.requests, nil
}

func (f *fakeRequestStore) FindByID(id string) (*models.DesignRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			return &f.requests[i], nil
		}
	}
	return nil, errors.New("no rows")
}

func (f *fakeRequestStore) List(status string, limit, offset int) ([]models.DesignRequest, int, error) {
	return f.requests, len(f.requests), nil
}

func (f *fakeRequestStore) UpdateStatus(id, status string) error {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
			return nil
		}
	}
	return errors.New("no rows")
}

type fakeMessageStore struct {
	messages []models.Message
}

func (f *fakeMessageStore) Create(msg *models.Message) error {
	msg.ID = "msg-1"
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageStore) List() ([]models.Message, error) { return f.messages, nil }

func (f *fakeMessageStore) MarkRead(id string) error {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Read = true
			return nil
		}
	}
	return errors.New("no rows")
}

type fakeNotificationStore struct {
	created []models.Notification
}

func (f *fakeNotificationStore) Create(n *models.Notification) error {
	f.created = append(f.created, *n)
	return nil
}

func newTestRequestService(store *fakeRequestStore) (*RequestService, *fakeNotificationStore) {
	notifications := &fakeNotificationStore{}
	return &RequestService{
		requests:      store,
		messages:      &fakeMessageStore{},
		notifications: notifications,
	}, notifications
}

func TestCreateRequestAlwaysStartsPending(t *testing.T) {
	svc, _ := newTestRequestService(&fakeRequestStore{})

	before := time.Now()
	request, err := svc.CreateRequest("user-1", models.CreateRequestRequest{
		ClientName:  "Ali",
		Email:       "ali@example.com",
		ProjectType: models.ProjectLogo,
		Description: "A modern logo for my startup",
		Budget:      "500",
	})
	require.NoError(t, err)

	require.Equal(t, models.RequestPending, request.Status)
	require.False(t, request.CreatedAt.Before(before))
	require.NotEmpty(t, request.ID)
	require.Equal(t, "user-1", request.UserID)
}

func TestCreateRequestRejectsUnknownProjectType(t *testing.T) {
	svc, _ := newTestRequestService(&fakeRequestStore{})

	_, err := svc.CreateRequest("", models.CreateRequestRequest{
		ClientName:  "Ali",
		Email:       "ali@example.com",
		ProjectType: "interior decoration",
		Description: "Not a service we offer",
	})
	require.Error(t, err)
}

func TestUserRequestsFiltersByOwnerNewestFirst(t *testing.T) {
	now := time.Now()
	store := &fakeRequestStore{requests: []models.DesignRequest{
		{ID: "r1", UserID: "user-1", CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "r2", UserID: "user-2", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "r3", UserID: "user-1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "r4", UserID: "", CreatedAt: now},
		{ID: "r5", UserID: "user-1", CreatedAt: now.Add(-30 * time.Minute)},
	}}
	svc, _ := newTestRequestService(store)

	requests, err := svc.UserRequests("user-1")
	require.NoError(t, err)

	require.Len(t, requests, 3)
	require.Equal(t, "r5", requests[0].ID)
	require.Equal(t, "r3", requests[1].ID)
	require.Equal(t, "r1", requests[2].ID)
	for _, r := range requests {
		require.Equal(t, "user-1", r.UserID)
	}
}

func TestUpdateStatusTouchesOnlyStatus(t *testing.T) {
	original := models.DesignRequest{
		ID:          "r1",
		UserID:      "user-1",
		ClientName:  "Ali",
		Email:       "ali@example.com",
		ProjectType: models.ProjectBranding,
		Description: "Full brand identity",
		Budget:      "1000",
		Status:      models.RequestPending,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
	store := &fakeRequestStore{requests: []models.DesignRequest{original}}
	svc, notifications := newTestRequestService(store)

	updated, err := svc.UpdateStatus("r1", models.RequestInProgress)
	require.NoError(t, err)
	require.Equal(t, models.RequestInProgress, updated.Status)

	want := original
	want.Status = models.RequestInProgress
	require.Equal(t, want, store.requests[0])

	require.Len(t, notifications.created, 1)
	require.Equal(t, "user-1", notifications.created[0].UserID)
	require.Equal(t, models.NotificationInfo, notifications.created[0].Type)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	transitions := []struct {
		from, to string
	}{
		{models.RequestPending, models.RequestRejected},
		{models.RequestRejected, models.RequestPending},
		{models.RequestCompleted, models.RequestInProgress},
		{models.RequestCompleted, models.RequestRejected},
	}

	for _, tt := range transitions {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			store := &fakeRequestStore{requests: []models.DesignRequest{
				{ID: "r1", Status: tt.from, ProjectType: models.ProjectLogo},
			}}
			svc, _ := newTestRequestService(store)

			updated, err := svc.UpdateStatus("r1", tt.to)
			require.NoError(t, err)
			require.Equal(t, tt.to, updated.Status)
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := &fakeRequestStore{requests: []models.DesignRequest{{ID: "r1", Status: models.RequestPending}}}
	svc, _ := newTestRequestService(store)

	_, err := svc.UpdateStatus("r1", "ARCHIVED")
	require.Error(t, err)
	require.Equal(t, models.RequestPending, store.requests[0].Status)
}

func TestUpdateStatusSkipsNotificationForAnonymousRequests(t *testing.T) {
	store := &fakeRequestStore{requests: []models.DesignRequest{
		{ID: "r1", UserID: "", Status: models.RequestPending, ProjectType: models.ProjectLogo},
	}}
	svc, notifications := newTestRequestService(store)

	_, err := svc.UpdateStatus("r1", models.RequestCompleted)
	require.NoError(t, err)
	require.Empty(t, notifications.created)
}

func TestSendMessageStartsUnreadWithCurrentTimestamp(t *testing.T) {
	svc, _ := newTestRequestService(&fakeRequestStore{})

	before := time.Now()
	msg, err := svc.SendMessage(models.SendMessageRequest{
		Name:  "Ali",
		Phone: "0100000000",
		Text:  "hi",
	})
	require.NoError(t, err)

	require.False(t, msg.Read)
	require.False(t, msg.Date.Before(before))
	require.Equal(t, "Ali", msg.Name)
	require.Equal(t, "0100000000", msg.Phone)
}
