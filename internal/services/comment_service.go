package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"social-go/internal/config"
	"social-go/internal/kafka"
	"social-go/internal/models"
	"social-go/internal/storage"

	"gorm.io/gorm"
)

var ErrCommentBodyMissing = fmt.Errorf("%w: you must write something in the comment box", ErrValidation)

// CommentService owns comments on posts.
type CommentService interface {
	CreateComment(ctx context.Context, postID, authorID uint, body string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID uint) error
	GetComment(ctx context.Context, commentID uint) (*models.Comment, error)
	ListPostComments(ctx context.Context, postID uint) ([]*models.Comment, error)
}

// commentService is the CommentService implementation.
type commentService struct {
	db          *gorm.DB
	commentRepo storage.CommentRepository
	postRepo    storage.PostRepository
	producer    kafka.MessageProducer
	kafkaConfig config.KafkaConfig
}

// NewCommentService creates a new CommentService instance.
func NewCommentService(
	db *gorm.DB,
	commentRepo storage.CommentRepository,
	postRepo storage.PostRepository,
	producer kafka.MessageProducer,
	cfg config.KafkaConfig,
) CommentService {
	return &commentService{
		db:          db,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		producer:    producer,
		kafkaConfig: cfg,
	}
}

// CreateComment adds a comment to a post. The comment's group is taken from
// the post at creation time, never from the caller.
func (s *commentService) CreateComment(ctx context.Context, postID, authorID uint, body string) (*models.Comment, error) {
	if body == "" {
		return nil, ErrCommentBodyMissing
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:     body,
		PubDate:  time.Now(),
		AuthorID: authorID,
		PostID:   post.ID,
		GroupID:  post.GroupID, // denormalized from the post
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment on post %d: %w", postID, err)
	}

	if post.AuthorID != authorID {
		log.Printf("User %d commented on post %d", authorID, postID)
		publishActivity(ctx, s.producer, s.kafkaConfig, ActivityEvent{
			Kind:        models.NotificationCommentCreated,
			ActorID:     authorID,
			RecipientID: post.AuthorID,
			TargetType:  "post",
			TargetID:    post.ID,
		})
	}
	return comment, nil
}

// DeleteComment hard-deletes a comment. Nothing cascades from it.
func (s *commentService) DeleteComment(ctx context.Context, commentID uint) error {
	_, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// GetComment retrieves a comment by ID.
func (s *commentService) GetComment(ctx context.Context, commentID uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, commentID)
}

// ListPostComments retrieves all comments on a post.
func (s *commentService) ListPostComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
