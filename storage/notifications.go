package storage

import (
	"github.com/gamer-hub/api-go/models"
)

func (s *Storage) GetUserNotifications(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (s *Storage) CreateNotification(notification *models.Notification) error {
	return s.DB.Create(notification).Error
}

func (s *Storage) MarkNotificationAsRead(id string) error {
	return s.DB.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (s *Storage) GetUnreadNotificationCount(userID string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
