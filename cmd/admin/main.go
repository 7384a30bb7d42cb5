package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"social-go/internal/config"
	"social-go/internal/models"
	"social-go/internal/storage"
)

// Small operator CLI for poking at the database directly.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  ./admin show-group <groupID>    - print a group and its posts")
		fmt.Println("  ./admin show-post <postID>      - print a post with comments and like count")
		fmt.Println("  ./admin list-members <groupID>  - list a group's members")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := storage.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	groupRepo := storage.NewGormGroupRepository(db)
	postRepo := storage.NewGormPostRepository(db)
	commentRepo := storage.NewGormCommentRepository(db)

	ctx := context.Background()

	switch os.Args[1] {
	case "show-group":
		groupID := parseIDArg("group ID")
		group, err := groupRepo.GetGroupByID(ctx, groupID)
		if err != nil {
			log.Fatalf("Failed to load group %d: %v", groupID, err)
		}
		fmt.Printf("Group %d: %s\n", group.ID, group.Name)
		fmt.Printf("  Description: %s\n", group.Description)
		fmt.Printf("  Image: %s\n", group.ImageURL)
		fmt.Printf("  Members: %d\n", len(group.Members))

		posts, err := postRepo.ListByGroup(ctx, groupID)
		if err != nil {
			log.Fatalf("Failed to load posts of group %d: %v", groupID, err)
		}
		fmt.Printf("  Posts (%d):\n", len(posts))
		for _, post := range posts {
			fmt.Printf("    [%d] %s (author %d, likes %d, %s)\n",
				post.ID, post.Title, post.AuthorID, post.LikesTotal,
				post.PubDate.Format("2006-01-02 15:04"))
		}

	case "show-post":
		postID := parseIDArg("post ID")
		post, err := postRepo.GetByID(ctx, postID)
		if err != nil {
			log.Fatalf("Failed to load post %d: %v", postID, err)
		}
		likers, err := postRepo.CountLikers(ctx, postID)
		if err != nil {
			log.Fatalf("Failed to count likers of post %d: %v", postID, err)
		}
		fmt.Printf("Post %d: %s\n", post.ID, post.Title)
		fmt.Printf("  Author: %d, Group: %d\n", post.AuthorID, post.GroupID)
		fmt.Printf("  Published: %s\n", post.PubDate.Format("2006-01-02 15:04:05"))
		fmt.Printf("  likes_total=%d, likers set=%d\n", post.LikesTotal, likers)
		if int64(post.LikesTotal) != likers {
			fmt.Println("  WARNING: like counter does not match likers set")
		}

		comments, err := commentRepo.ListByPost(ctx, postID)
		if err != nil {
			log.Fatalf("Failed to load comments of post %d: %v", postID, err)
		}
		fmt.Printf("  Comments (%d):\n", len(comments))
		for _, comment := range comments {
			fmt.Printf("    [%d] author %d: %s\n", comment.ID, comment.AuthorID, comment.Body)
		}

	case "list-members":
		groupID := parseIDArg("group ID")
		members, err := groupRepo.GetGroupMembers(ctx, groupID)
		if err != nil {
			log.Fatalf("Failed to load members of group %d: %v", groupID, err)
		}
		fmt.Printf("Group %d has %d members:\n", groupID, len(members))
		for _, member := range members {
			printMember(member)
		}

	default:
		log.Fatalf("Unknown command: %s", os.Args[1])
	}
}

func parseIDArg(what string) uint {
	if len(os.Args) < 3 {
		log.Fatalf("Missing %s argument", what)
	}
	id, err := strconv.ParseUint(os.Args[2], 10, 32)
	if err != nil {
		log.Fatalf("Invalid %s: %v", what, err)
	}
	return uint(id)
}

func printMember(member *models.GroupMember) {
	name := fmt.Sprintf("user %d", member.UserID)
	if member.User.Username != "" {
		name = member.User.Username
	}
	fmt.Printf("  %s (joined %s)\n", name, member.JoinedAt.Format("2006-01-02"))
}
