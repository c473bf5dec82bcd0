package storage

import (
	"time"

	"github.com/gamer-hub/api-go/models"
	"gorm.io/gorm"
)

// GetFriends returns every user with an accepted friendship involving userID,
// regardless of which side sent the request.
func (s *Storage) GetFriends(userID string) ([]models.User, error) {
	var friendships []models.Friendship
	err := s.DB.
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, models.FriendshipAccepted).
		Find(&friendships).Error
	if err != nil {
		return nil, err
	}

	friendIDs := make([]string, 0, len(friendships))
	for _, f := range friendships {
		if f.RequesterID == userID {
			friendIDs = append(friendIDs, f.AddresseeID)
		} else {
			friendIDs = append(friendIDs, f.RequesterID)
		}
	}

	friends := []models.User{}
	if len(friendIDs) == 0 {
		return friends, nil
	}
	err = s.DB.Where("id IN ?", friendIDs).Find(&friends).Error
	return friends, err
}

// GetOnlineFriends filters the friend list down to users currently flagged
// online.
func (s *Storage) GetOnlineFriends(userID string) ([]models.User, error) {
	friends, err := s.GetFriends(userID)
	if err != nil {
		return nil, err
	}
	online := []models.User{}
	for _, friend := range friends {
		if friend.IsOnline {
			online = append(online, friend)
		}
	}
	return online, nil
}

// SendFriendRequest creates a pending friendship row. No uniqueness
// constraint guards the pair; repeated requests create additional rows.
func (s *Storage) SendFriendRequest(requesterID, addresseeID string) (*models.Friendship, error) {
	friendship := models.Friendship{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      models.FriendshipPending,
	}
	if err := s.DB.Create(&friendship).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

func (s *Storage) AcceptFriendRequest(friendshipID string) error {
	return s.DB.Model(&models.Friendship{}).
		Where("id = ?", friendshipID).
		Updates(map[string]interface{}{
			"status":     models.FriendshipAccepted,
			"updated_at": time.Now(),
		}).Error
}

// RejectFriendRequest deletes the friendship row entirely; no rejected state
// is retained.
func (s *Storage) RejectFriendRequest(friendshipID string) error {
	return s.DB.Where("id = ?", friendshipID).Delete(&models.Friendship{}).Error
}

func (s *Storage) GetFriendship(id string) (*models.Friendship, error) {
	var friendship models.Friendship
	if err := s.DB.First(&friendship, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &friendship, nil
}

// GetFriendRequests returns the pending incoming requests joined with their
// requesters.
func (s *Storage) GetFriendRequests(userID string) ([]models.Friendship, error) {
	var requests []models.Friendship
	err := s.DB.
		Preload("Requester").
		Where("addressee_id = ? AND status = ?", userID, models.FriendshipPending).
		Find(&requests).Error
	return requests, err
}

// GetFriendshipStatus returns the status of the friendship between the two
// users in either direction, or "" when none exists.
func (s *Storage) GetFriendshipStatus(userID1, userID2 string) (string, error) {
	var friendship models.Friendship
	err := s.DB.
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID1, userID2, userID2, userID1).
		First(&friendship).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return friendship.Status, nil
}
