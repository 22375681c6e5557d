package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/state"
)

// NewReelCommand creates the reel command for like and comment actions.
func NewReelCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reel",
		Short: "React to a reel",
	}
	cmd.AddCommand(newReelLikeCommand(opts))
	cmd.AddCommand(newReelCommentCommand(opts))
	return cmd
}

func newReelLikeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "like <reel-id>",
		Short:         "Toggle your like on a reel",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.App.ToggleLike(args[0]); err != nil {
				return s.fail(reelActionMessage(err, args[0]))
			}
			s.Nav.NavigateToTab(domain.TabReels)
			return s.Render()
		},
	}
}

func newReelCommentCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "comment <reel-id> <text>",
		Short:         "Comment on a reel",
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			text := strings.Join(args[1:], " ")
			if err := s.App.AddComment(args[0], text); err != nil {
				return s.fail(reelActionMessage(err, args[0]))
			}
			s.Nav.NavigateToTab(domain.TabReels)
			return s.Render()
		},
	}
}

func reelActionMessage(err error, reelID string) string {
	switch {
	case errors.Is(err, state.ErrNotAuthenticated):
		return "sign in to react to reels"
	case errors.Is(err, state.ErrNotFound):
		return "no such reel: " + reelID
	case errors.Is(err, state.ErrEmptyComment):
		return "comment text is empty"
	}
	return err.Error()
}
