package state

import (
	"sort"
	"strings"
	"time"

	"github.com/ruxxapp/ruxx/internal/domain"
)

// ToggleLike toggles membership of the current user's email in the
// reel's liker set. Calling it twice restores the original membership.
// Requires a logged-in user (the screen turns the rejection into a
// login prompt); unknown reel ids return ErrNotFound.
func (a *App) ToggleLike(reelID string) error {
	if a.currentUser == nil {
		return ErrNotAuthenticated
	}

	email := a.currentUser.Email
	for i := range a.reels {
		if a.reels[i].ID != reelID {
			continue
		}
		if a.reels[i].Liked(email) {
			kept := a.reels[i].LikedBy[:0:0]
			for _, e := range a.reels[i].LikedBy {
				if e != email {
					kept = append(kept, e)
				}
			}
			a.reels[i].LikedBy = kept
		} else {
			a.reels[i].LikedBy = append(a.reels[i].LikedBy, email)
		}
		a.saveReels()
		return nil
	}
	return ErrNotFound
}

// AddComment appends a comment by the current user to the reel.
// Comments are stored in append order; newest-first is applied at read
// time. Text that is empty after trimming is rejected.
func (a *App) AddComment(reelID, text string) error {
	if a.currentUser == nil {
		return ErrNotAuthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyComment
	}

	for i := range a.reels {
		if a.reels[i].ID != reelID {
			continue
		}
		a.reels[i].Comments = append(a.reels[i].Comments, domain.Comment{
			User: domain.CommentAuthor{
				Email:  a.currentUser.Email,
				Name:   a.currentUser.Name,
				Avatar: a.currentUser.AvatarURL,
			},
			Text:      text,
			Timestamp: a.now().Format(time.RFC3339),
		})
		a.saveReels()
		return nil
	}
	return ErrNotFound
}

// CommentsNewestFirst returns the reel's comments sorted most recent
// first, without reordering the stored collection.
func CommentsNewestFirst(r domain.Reel) []domain.Comment {
	comments := append([]domain.Comment{}, r.Comments...)
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp > comments[j].Timestamp
	})
	return comments
}
