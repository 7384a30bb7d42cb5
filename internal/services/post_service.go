package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"social-go/internal/config"
	"social-go/internal/kafka"
	"social-go/internal/models"
	"social-go/internal/storage"

	"gorm.io/gorm"
)

var (
	ErrPostFieldsMissing = fmt.Errorf("%w: title and body are both required", ErrValidation)
	ErrPostTitleTaken    = fmt.Errorf("%w: a post with this title already exists", ErrDuplicateKey)
)

// PostService owns posts and their like state.
type PostService interface {
	CreatePost(ctx context.Context, groupID, authorID uint, title, body string) (*models.Post, error)
	EditPost(ctx context.Context, postID uint, title, body string) (*models.Post, error)
	DeletePost(ctx context.Context, postID uint) error
	GetPost(ctx context.Context, postID uint) (*models.Post, error)
	ListGroupPosts(ctx context.Context, groupID uint) ([]*models.Post, error)
	ListUserPosts(ctx context.Context, authorID uint) ([]*models.Post, error)

	LikePost(ctx context.Context, userID, postID uint) (*models.Post, error)
	GetLikerIDs(ctx context.Context, postID uint) ([]uint, error)
}

// postService is the PostService implementation.
type postService struct {
	db          *gorm.DB
	postRepo    storage.PostRepository
	groupRepo   storage.GroupRepository
	producer    kafka.MessageProducer
	kafkaConfig config.KafkaConfig
}

// NewPostService creates a new PostService instance.
func NewPostService(
	db *gorm.DB,
	postRepo storage.PostRepository,
	groupRepo storage.GroupRepository,
	producer kafka.MessageProducer,
	cfg config.KafkaConfig,
) PostService {
	return &postService{
		db:          db,
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		producer:    producer,
		kafkaConfig: cfg,
	}
}

// CreatePost publishes a new post into a group. Title and body are required
// and the title must be unique across all posts, not just within the group.
func (s *postService) CreatePost(ctx context.Context, groupID, authorID uint, title, body string) (*models.Post, error) {
	if title == "" || body == "" {
		return nil, ErrPostFieldsMissing
	}

	_, err := s.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	_, err = s.postRepo.GetByTitle(ctx, title)
	if err == nil {
		return nil, ErrPostTitleTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check post title '%s': %w", title, err)
	}

	post := &models.Post{
		Title:      title,
		Body:       body,
		PubDate:    time.Now(),
		LikesTotal: 0,
		AuthorID:   authorID,
		GroupID:    groupID,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// EditPost updates a post's title and body and refreshes its publish date.
// Authorship stays with the original author regardless of who edits.
func (s *postService) EditPost(ctx context.Context, postID uint, title, body string) (*models.Post, error) {
	if title == "" || body == "" {
		return nil, ErrPostFieldsMissing
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if title != post.Title {
		_, err = s.postRepo.GetByTitle(ctx, title)
		if err == nil {
			return nil, ErrPostTitleTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check post title '%s': %w", title, err)
		}
	}

	post.Title = title
	post.Body = body
	post.PubDate = time.Now()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", postID, err)
	}
	return post, nil
}

// DeletePost hard-deletes a post and all of its comments in one transaction.
func (s *postService) DeletePost(ctx context.Context, postID uint) error {
	_, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCommentRepo := storage.NewGormCommentRepository(tx)
		txPostRepo := storage.NewGormPostRepository(tx)

		if err := txCommentRepo.DeleteByPost(ctx, postID); err != nil {
			return fmt.Errorf("failed to delete comments of post %d: %w", postID, err)
		}
		if err := tx.Where("post_id = ?", postID).Delete(&models.PostLike{}).Error; err != nil {
			return fmt.Errorf("failed to delete likes of post %d: %w", postID, err)
		}
		if err := txPostRepo.Delete(ctx, postID); err != nil {
			return fmt.Errorf("failed to delete post %d: %w", postID, err)
		}
		return nil
	})
}

// GetPost retrieves a post by ID.
func (s *postService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// ListGroupPosts retrieves a group's posts.
func (s *postService) ListGroupPosts(ctx context.Context, groupID uint) ([]*models.Post, error) {
	return s.postRepo.ListByGroup(ctx, groupID)
}

// ListUserPosts retrieves a user's authored posts.
func (s *postService) ListUserPosts(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.postRepo.ListByAuthor(ctx, authorID)
}

// LikePost moves the (user, post) pair from not-liked to liked. The counter
// increment and the likers-set insert happen together inside one transaction
// with the post row locked, so likes_total always equals the set cardinality.
// Liking an already-liked post is a pure no-op; there is no unlike path.
func (s *postService) LikePost(ctx context.Context, userID, postID uint) (*models.Post, error) {
	var result *models.Post
	liked := false

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txPostRepo := storage.NewGormPostRepository(tx)

		post, err := txPostRepo.GetByIDForUpdate(ctx, postID)
		if err != nil {
			return err
		}

		hasLiked, err := txPostRepo.HasLiked(ctx, postID, userID)
		if err != nil {
			return fmt.Errorf("failed to check likers set of post %d: %w", postID, err)
		}
		if hasLiked {
			result = post
			return nil // already liked, nothing to do
		}

		if err := txPostRepo.AddLike(ctx, &models.PostLike{PostID: postID, UserID: userID}); err != nil {
			return fmt.Errorf("failed to add user %d to likers of post %d: %w", userID, postID, err)
		}

		post.LikesTotal++
		if err := txPostRepo.Update(ctx, post); err != nil {
			return fmt.Errorf("failed to update like counter of post %d: %w", postID, err)
		}

		result = post
		liked = true
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if liked && result.AuthorID != userID {
		log.Printf("User %d liked post %d", userID, postID)
		publishActivity(ctx, s.producer, s.kafkaConfig, ActivityEvent{
			Kind:        models.NotificationPostLiked,
			ActorID:     userID,
			RecipientID: result.AuthorID,
			TargetType:  "post",
			TargetID:    postID,
		})
	}
	return result, nil
}

// GetLikerIDs retrieves the likers set of a post.
func (s *postService) GetLikerIDs(ctx context.Context, postID uint) ([]uint, error) {
	return s.postRepo.GetLikerIDs(ctx, postID)
}
