package services

import (
	"time"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"github.com/Dhruv9449/Chitros/internal/models"
	"github.com/Dhruv9449/Chitros/internal/repositories"
)

// ContentService owns posts, comments/replies and likes. Every operation
// takes a resolved actor and consults the visibility policy before touching
// storage.
type ContentService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	likeRepo    repositories.LikeRepository
	followRepo  repositories.FollowRepository
}

// NewContentService creates a new ContentService
func NewContentService(
	postRepo repositories.PostRepository,
	commentRepo repositories.CommentRepository,
	likeRepo repositories.LikeRepository,
	followRepo repositories.FollowRepository,
) *ContentService {
	return &ContentService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		followRepo:  followRepo,
	}
}

// CreatePost creates a post authored by the actor. Published defaults to true.
func (s *ContentService) CreatePost(actorID uint, imageRef string, req models.CreatePostRequest) (*models.Post, error) {
	published := true
	if req.Published != nil {
		published = *req.Published
	}
	now := time.Now()
	post := &models.Post{
		ImageURL:    imageRef,
		Description: req.Description,
		Published:   published,
		Location:    req.Location,
		CreatedAt:   now,
		ModifiedAt:  now,
		AuthorID:    actorID,
	}
	if err := s.postRepo.CreatePost(post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post the actor may view
func (s *ContentService) GetPost(actorID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, asNotFound(err)
	}
	follows, err := s.followRepo.IsFollowing(actorID, post.AuthorID)
	if err != nil {
		return nil, err
	}
	if !CanView(actorID, post, follows) {
		return nil, apperrors.ErrForbidden
	}
	return post, nil
}

// EditPost applies the non-nil fields of the patch to the actor's own post
// and bumps the modified timestamp
func (s *ContentService) EditPost(actorID, postID uint, patch models.UpdatePostRequest) (*models.Post, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, asNotFound(err)
	}
	if post.AuthorID != actorID {
		return nil, apperrors.ErrForbidden
	}

	fields := map[string]interface{}{"modified_at": time.Now()}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Published != nil {
		fields["published"] = *patch.Published
	}
	if patch.Location != nil {
		fields["location"] = *patch.Location
	}
	if err := s.postRepo.UpdatePostFields(postID, fields); err != nil {
		return nil, err
	}
	return s.postRepo.GetPostByID(postID)
}

// DeletePost deletes the actor's own post with its comments and likes
func (s *ContentService) DeletePost(actorID, postID uint) error {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return asNotFound(err)
	}
	if post.AuthorID != actorID {
		return apperrors.ErrForbidden
	}
	return s.postRepo.DeletePost(postID)
}

// CreateComment creates a comment on a post, or a reply when parentID is set.
// The parent must be a top-level comment of the same post.
func (s *ContentService) CreateComment(actorID, postID uint, content string, parentID *uint) (*models.Comment, error) {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return nil, asNotFound(err)
	}

	if parentID != nil {
		if _, err := s.commentRepo.GetTopLevelComment(*parentID, postID); err != nil {
			return nil, asNotFound(err)
		}
	}

	follows, err := s.followRepo.IsFollowing(actorID, post.AuthorID)
	if err != nil {
		return nil, err
	}
	if !CanInteract(actorID, post.AuthorID, follows) {
		return nil, apperrors.ErrForbidden
	}

	comment := &models.Comment{
		AuthorID: actorID,
		Content:  content,
		PostID:   postID,
		ParentID: parentID,
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment deletes the actor's own comment; a top-level comment takes
// its replies with it
func (s *ContentService) DeleteComment(actorID, commentID uint) error {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		return asNotFound(err)
	}
	if comment.AuthorID != actorID {
		return apperrors.ErrForbidden
	}
	return s.commentRepo.DeleteComment(commentID)
}

// LikePost records the actor's like on a post, at most once per (actor, post)
func (s *ContentService) LikePost(actorID, postID uint) error {
	post, err := s.postRepo.GetPostByID(postID)
	if err != nil {
		return asNotFound(err)
	}

	follows, err := s.followRepo.IsFollowing(actorID, post.AuthorID)
	if err != nil {
		return err
	}
	if !CanInteract(actorID, post.AuthorID, follows) {
		return apperrors.ErrForbidden
	}

	liked, err := s.likeRepo.HasUserLikedPost(postID, actorID)
	if err != nil {
		return err
	}
	if liked {
		return apperrors.ErrAlreadyLiked
	}

	like := &models.Like{UserID: actorID, PostID: postID}
	if err := s.likeRepo.CreateLike(like); err != nil {
		return asConflict(err, apperrors.ErrAlreadyLiked)
	}
	return nil
}

// UnlikePost removes the actor's like from a post
func (s *ContentService) UnlikePost(actorID, postID uint) error {
	if _, err := s.postRepo.GetPostByID(postID); err != nil {
		return asNotFound(err)
	}
	removed, err := s.likeRepo.DeleteLike(postID, actorID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.ErrNotLiked
	}
	return nil
}

// LikesCount derives a post's like count on read
func (s *ContentService) LikesCount(postID uint) (int64, error) {
	return s.likeRepo.GetLikesCountByPostID(postID)
}
