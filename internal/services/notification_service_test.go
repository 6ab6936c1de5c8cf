// internal/services/notification_service_test.go
package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vintagecottage/storefront/internal/models"
)

func TestNotificationAddAndPartition(t *testing.T) {
	svc := NewNotificationService()
	defer svc.Close()

	svc.Add("Product added successfully!", models.SeveritySuccess, true)
	svc.Add("Welcome back", models.SeverityInfo, false)

	admin := svc.ForAdmin()
	assert.Len(t, admin, 1)
	assert.Equal(t, "Product added successfully!", admin[0].Message)

	user := svc.ForUser()
	assert.Len(t, user, 1)
	assert.Equal(t, "Welcome back", user[0].Message)

	assert.Len(t, svc.All(), 2)
}

func TestNotificationNewestFirst(t *testing.T) {
	svc := NewNotificationService()
	defer svc.Close()

	svc.Add("first", models.SeverityInfo, false)
	svc.Add("second", models.SeverityInfo, false)

	all := svc.All()
	assert.Equal(t, "second", all[0].Message)
	assert.Equal(t, "first", all[1].Message)
}

func TestNotificationDedupeWindow(t *testing.T) {
	svc := NewNotificationService()
	defer svc.Close()

	first := svc.Add("saved", models.SeveritySuccess, false)
	assert.NotNil(t, first)

	// Same message and severity inside the window is swallowed.
	assert.Nil(t, svc.Add("saved", models.SeveritySuccess, false))

	// Different severity is a different event.
	assert.NotNil(t, svc.Add("saved", models.SeverityInfo, false))

	assert.Len(t, svc.All(), 2)
}

func TestNotificationCap(t *testing.T) {
	svc := NewNotificationService()
	defer svc.Close()

	for i := 0; i < maxNotifications+10; i++ {
		svc.Add(fmt.Sprintf("event %d", i), models.SeverityInfo, false)
	}

	all := svc.All()
	assert.Len(t, all, maxNotifications)
	// Newest survives the cap.
	assert.Equal(t, fmt.Sprintf("event %d", maxNotifications+9), all[0].Message)
}

func TestNotificationMarkReadAndUnreadCount(t *testing.T) {
	svc := NewNotificationService()
	defer svc.Close()

	n := svc.Add("unread", models.SeverityInfo, false)
	assert.Equal(t, 1, svc.UnreadCount())

	assert.True(t, svc.MarkRead(n.ID))
	assert.Equal(t, 0, svc.UnreadCount())

	assert.False(t, svc.MarkRead("nope"))
}

func TestNotificationRemoveAndClear(t *testing.T) {
	svc := NewNotificationService()
	defer svc.Close()

	n := svc.Add("gone soon", models.SeverityInfo, false)
	assert.True(t, svc.Remove(n.ID))
	assert.False(t, svc.Remove(n.ID))

	svc.Add("a", models.SeverityInfo, false)
	svc.Add("b", models.SeverityInfo, false)
	svc.Clear()
	assert.Empty(t, svc.All())
}

func TestNotificationSnapshotExcludesErrors(t *testing.T) {
	svc := NewNotificationService()
	defer svc.Close()

	svc.Add("ok", models.SeveritySuccess, false)
	svc.Add("boom", models.SeverityError, true)

	snapshot := svc.Snapshot()
	assert.Len(t, snapshot, 1)
	assert.Equal(t, "ok", snapshot[0].Message)
}

func TestNotificationRestoreDropsExpired(t *testing.T) {
	svc := NewNotificationService()
	defer svc.Close()

	svc.Restore([]Notification{
		{ID: "live", Message: "recent", Severity: models.SeverityInfo, Timestamp: time.Now().Add(-time.Hour)},
		{ID: "stale", Message: "old", Severity: models.SeverityInfo, Timestamp: time.Now().Add(-25 * time.Hour)},
	})

	all := svc.All()
	assert.Len(t, all, 1)
	assert.Equal(t, "live", all[0].ID)
}
