package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venturelink_backend/internal/services/dto"
	"venturelink_backend/pkg/apperrors"
)

func newNotificationFixture() (*fakeNotificationRepo, *NotificationService) {
	repo := newFakeNotificationRepo()
	return repo, NewNotificationService(repo)
}

func dispatchN(service *NotificationService, to string, n int) {
	for i := 0; i < n; i++ {
		service.Dispatch(dto.NotificationPayload{
			Type:  "new_round",
			Title: "New funding round",
			To:    to,
		})
	}
}

func TestDispatchAbsorbsWriteFailure(t *testing.T) {
	repo, service := newNotificationFixture()
	repo.failFor["user-a"] = assert.AnError

	// Must not panic or propagate anything
	service.Dispatch(dto.NotificationPayload{Type: "new_round", To: "user-a"})

	list, err := service.ListForRecipient("user-a")
	require.NoError(t, err)
	assert.Empty(t, list.Notifications)
}

func TestListForRecipientIsReadOnly(t *testing.T) {
	_, service := newNotificationFixture()
	dispatchN(service, "user-a", 3)
	dispatchN(service, "user-b", 1)

	first, err := service.ListForRecipient("user-a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Total)

	// Reading does not acknowledge
	second, err := service.ListForRecipient("user-a")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAcknowledgeRemovesOnlyThatNotification(t *testing.T) {
	_, service := newNotificationFixture()
	dispatchN(service, "user-a", 2)

	list, err := service.ListForRecipient("user-a")
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)

	require.NoError(t, service.Acknowledge("user-a", list.Notifications[0].ID))

	remaining, err := service.ListForRecipient("user-a")
	require.NoError(t, err)
	require.Len(t, remaining.Notifications, 1)
	assert.Equal(t, list.Notifications[1].ID, remaining.Notifications[0].ID)

	// Acknowledging twice is a 404: the record is gone
	err = service.Acknowledge("user-a", list.Notifications[0].ID)
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestAcknowledgeForeignNotificationLooksMissing(t *testing.T) {
	_, service := newNotificationFixture()
	dispatchN(service, "user-a", 1)

	list, err := service.ListForRecipient("user-a")
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)

	// Another actor cannot acknowledge it, and cannot learn it exists
	err = service.Acknowledge("user-b", list.Notifications[0].ID)
	assertCode(t, err, apperrors.CodeNotFound)

	still, err := service.ListForRecipient("user-a")
	require.NoError(t, err)
	assert.Len(t, still.Notifications, 1)
}

func TestAcknowledgeAllEmptiesInboxOnly(t *testing.T) {
	_, service := newNotificationFixture()
	dispatchN(service, "user-a", 3)
	dispatchN(service, "user-b", 2)

	require.NoError(t, service.AcknowledgeAll("user-a"))

	mine, err := service.ListForRecipient("user-a")
	require.NoError(t, err)
	assert.Empty(t, mine.Notifications)

	theirs, err := service.ListForRecipient("user-b")
	require.NoError(t, err)
	assert.Len(t, theirs.Notifications, 2)
}
