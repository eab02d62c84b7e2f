// Package blobstore persists uploaded images under a media root and hands
// back stable reference strings. Post images are downscaled to fit 732x732,
// avatars to fit 400x400.
package blobstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Dhruv9449/Chitros/internal/apperrors"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	postBound   = 732
	avatarBound = 400

	postsDir = "posts"
	usersDir = "profile_pictures"
)

// allowed upload extensions
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// BlobStore writes media files below Root and serves them back by reference
type BlobStore struct {
	root string
}

// New creates a BlobStore rooted at dir, creating the post and avatar
// subdirectories if needed
func New(dir string) (*BlobStore, error) {
	for _, sub := range []string{postsDir, usersDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("blobstore: create %s dir: %w", sub, err)
		}
	}
	return &BlobStore{root: dir}, nil
}

// SavePostImage validates, resizes and persists a post image, returning its
// reference of the form "media/posts/<name>"
func (b *BlobStore) SavePostImage(data []byte, filename string) (string, error) {
	name, err := b.save(data, filename, postsDir, postBound)
	if err != nil {
		return "", err
	}
	return "media/posts/" + name, nil
}

// SaveAvatar validates, resizes and persists a profile picture, returning its
// reference of the form "media/users/<name>"
func (b *BlobStore) SaveAvatar(data []byte, filename string) (string, error) {
	name, err := b.save(data, filename, usersDir, avatarBound)
	if err != nil {
		return "", err
	}
	return "media/users/" + name, nil
}

// PostImagePath resolves a stored post image filename to its path on disk
func (b *BlobStore) PostImagePath(filename string) string {
	return filepath.Join(b.root, postsDir, filepath.Base(filename))
}

// AvatarPath resolves a stored avatar filename to its path on disk
func (b *BlobStore) AvatarPath(filename string) string {
	return filepath.Join(b.root, usersDir, filepath.Base(filename))
}

func (b *BlobStore) save(data []byte, filename, sub string, bound int) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", apperrors.ErrUnsupportedMediaType
	}

	name := uuid.NewString() + ext
	path := filepath.Join(b.root, sub, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("blobstore: write %s: %w", name, err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		os.Remove(path)
		return "", apperrors.ErrUnsupportedMediaType
	}
	if img.Bounds().Dx() > bound || img.Bounds().Dy() > bound {
		img = imaging.Fit(img, bound, bound, imaging.Lanczos)
		if err := imaging.Save(img, path); err != nil {
			return "", fmt.Errorf("blobstore: resize %s: %w", name, err)
		}
	}
	return name, nil
}
