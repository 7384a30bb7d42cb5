package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"social-go/internal/config"
	"social-go/internal/kafka"
	"social-go/internal/models"
	"social-go/internal/storage"

	"gorm.io/gorm"
)

// FriendshipOp selects the direction of a ChangeFriendship call.
type FriendshipOp string

const (
	FriendshipAdd    FriendshipOp = "add"
	FriendshipRemove FriendshipOp = "remove"
)

var (
	ErrFriendSelf        = fmt.Errorf("%w: cannot befriend yourself", ErrValidation)
	ErrFriendOpInvalid   = fmt.Errorf("%w: unknown friendship operation", ErrValidation)
	ErrFriendUserMissing = errors.New("friend target does not exist")
)

// FriendshipService owns the symmetric friend relation. A friendship is one
// undirected edge between two users; add and remove mutate that single edge
// inside one transaction, so the relation is never observable half-applied.
type FriendshipService interface {
	ChangeFriendship(ctx context.Context, actorID, targetID uint, op FriendshipOp) error
	GetFriendsList(ctx context.Context, userID uint) ([]*models.UserBasicInfo, error)
	AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error)
}

type friendshipService struct {
	db             *gorm.DB
	userRepo       storage.UserRepository
	friendshipRepo storage.FriendshipRepository
	producer       kafka.MessageProducer
	kafkaConfig    config.KafkaConfig
}

// NewFriendshipService creates a new FriendshipService instance.
func NewFriendshipService(
	db *gorm.DB,
	userRepo storage.UserRepository,
	friendshipRepo storage.FriendshipRepository,
	producer kafka.MessageProducer,
	cfg config.KafkaConfig,
) FriendshipService {
	return &friendshipService{
		db:             db,
		userRepo:       userRepo,
		friendshipRepo: friendshipRepo,
		producer:       producer,
		kafkaConfig:    cfg,
	}
}

// ChangeFriendship adds or removes the friendship between actor and target.
//
// add: idempotent (set semantics); the target must exist; self-friending is
// rejected. remove: deleting a friendship that does not exist is a silent
// no-op, matching how the rest of the surface treats set removals.
func (s *friendshipService) ChangeFriendship(ctx context.Context, actorID, targetID uint, op FriendshipOp) error {
	if actorID == targetID {
		return ErrFriendSelf
	}

	switch op {
	case FriendshipAdd:
		return s.addFriend(ctx, actorID, targetID)
	case FriendshipRemove:
		return s.removeFriend(ctx, actorID, targetID)
	default:
		return ErrFriendOpInvalid
	}
}

func (s *friendshipService) addFriend(ctx context.Context, actorID, targetID uint) error {
	_, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFriendUserMissing
		}
		return fmt.Errorf("failed to check friend target %d: %w", targetID, err)
	}

	created := false
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txFriendshipRepo := storage.NewGormFriendshipRepository(tx)

		areFriends, err := txFriendshipRepo.AreUsersFriends(ctx, actorID, targetID)
		if err != nil {
			return fmt.Errorf("failed to check existing friendship: %w", err)
		}
		if areFriends {
			return nil // adding an existing friend is a no-op
		}

		friendship := &models.Friendship{UserID1: actorID, UserID2: targetID}
		friendship.EnsureCanonicalOrder()
		if err := txFriendshipRepo.Create(ctx, friendship); err != nil {
			return fmt.Errorf("failed to create friendship between %d and %d: %w", actorID, targetID, err)
		}
		created = true
		return nil
	})
	if txErr != nil {
		return txErr
	}

	if created {
		log.Printf("Friendship created between %d and %d", actorID, targetID)
		publishActivity(ctx, s.producer, s.kafkaConfig, ActivityEvent{
			Kind:        models.NotificationFriendAdded,
			ActorID:     actorID,
			RecipientID: targetID,
			TargetType:  "user",
			TargetID:    actorID,
		})
	}
	return nil
}

func (s *friendshipService) removeFriend(ctx context.Context, actorID, targetID uint) error {
	removed, err := s.friendshipRepo.Remove(ctx, actorID, targetID)
	if err != nil {
		return fmt.Errorf("failed to remove friendship between %d and %d: %w", actorID, targetID, err)
	}
	if removed {
		log.Printf("Friendship removed between %d and %d", actorID, targetID)
	}
	return nil
}

// GetFriendsList retrieves the basic info for all friends of the given user.
// A user with no friendships gets an empty list, never an error.
func (s *friendshipService) GetFriendsList(ctx context.Context, userID uint) ([]*models.UserBasicInfo, error) {
	friendIDs, err := s.friendshipRepo.GetFriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get friend IDs for user %d: %w", userID, err)
	}

	if len(friendIDs) == 0 {
		return []*models.UserBasicInfo{}, nil
	}

	friendsInfo, err := s.userRepo.GetMultipleBasicInfoByIDs(ctx, friendIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get friend info for user %d: %w", userID, err)
	}

	return friendsInfo, nil
}

// AreFriends reports whether the two users are friends.
func (s *friendshipService) AreFriends(ctx context.Context, userID1, userID2 uint) (bool, error) {
	return s.friendshipRepo.AreUsersFriends(ctx, userID1, userID2)
}
