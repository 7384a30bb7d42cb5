package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"social-go/internal/config"
	"social-go/internal/models"
	"social-go/internal/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory SQLite database and migrates the full
// schema into it. One connection is enough and keeps every query on the same
// in-memory database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, storage.AutoMigrateTables(db))
	return db
}

// createTestUser inserts a user with a unique email derived from the name.
func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Nickname:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// createTestGroup inserts a group with all required fields populated.
func createTestGroup(t *testing.T, db *gorm.DB, name string) *models.Group {
	t.Helper()

	group := &models.Group{
		Name:        name,
		Description: name + " description",
		ImageURL:    "/uploads/" + name + ".png",
	}
	require.NoError(t, db.Create(group).Error)
	return group
}

// createTestPost inserts a post directly, bypassing the service checks.
func createTestPost(t *testing.T, db *gorm.DB, group *models.Group, author *models.User, title string) *models.Post {
	t.Helper()

	post := &models.Post{
		Title:    title,
		Body:     "body of " + title,
		PubDate:  time.Now(),
		AuthorID: author.ID,
		GroupID:  group.ID,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

// newTestServices wires the full service graph over one test database with
// the Kafka producer left nil (publishing is then skipped).
type testServices struct {
	db           *gorm.DB
	auth         AuthService
	users        UserService
	friendships  FriendshipService
	groups       GroupService
	posts        PostService
	comments     CommentService
	locations    LocationService
	images       ImageService
	profiles     ProfileService
	notification NotificationService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := setupTestDB(t)

	userRepo := storage.NewGormUserRepository(db)
	friendshipRepo := storage.NewGormFriendshipRepository(db)
	groupRepo := storage.NewGormGroupRepository(db)
	postRepo := storage.NewGormPostRepository(db)
	commentRepo := storage.NewGormCommentRepository(db)
	locationRepo := storage.NewGormLocationRepository(db)
	imageRepo := storage.NewGormImageRepository(db)
	notificationRepo := storage.NewGormNotificationRepository(db)

	friendships := NewFriendshipService(db, userRepo, friendshipRepo, nil, kafkaTestConfig())

	return &testServices{
		db:           db,
		auth:         NewAuthService(userRepo, testConfig()),
		users:        NewUserService(userRepo),
		friendships:  friendships,
		groups:       NewGroupService(db, groupRepo, userRepo),
		posts:        NewPostService(db, postRepo, groupRepo, nil, kafkaTestConfig()),
		comments:     NewCommentService(db, commentRepo, postRepo, nil, kafkaTestConfig()),
		locations:    NewLocationService(locationRepo),
		images:       NewImageService(imageRepo),
		profiles:     NewProfileService(userRepo, groupRepo, postRepo, imageRepo, locationRepo, friendships),
		notification: NewNotificationService(notificationRepo),
	}
}

func testConfig() config.Config {
	cfg := config.Config{}
	cfg.Auth.JWTSecretKey = "test-secret"
	cfg.Auth.JWTExpiry = time.Hour
	return cfg
}

func kafkaTestConfig() config.KafkaConfig {
	return config.KafkaConfig{ActivityTopic: "social-activity-test"}
}

func testCtx() context.Context {
	return context.Background()
}
