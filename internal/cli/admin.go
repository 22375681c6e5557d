package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruxxapp/ruxx/internal/dataurl"
	"github.com/ruxxapp/ruxx/internal/domain"
	"github.com/ruxxapp/ruxx/internal/nav"
	"github.com/ruxxapp/ruxx/internal/screen"
	"github.com/ruxxapp/ruxx/internal/state"
)

// requireRole gates back-office commands. The auth screen handles
// signed-out users elsewhere; this is the role check on top.
func (s *Session) requireRole(min domain.Role) error {
	user := s.App.CurrentUser()
	if user == nil {
		return s.fail("sign in with a staff account")
	}
	if !user.Role.AtLeast(min) {
		return s.fail("permission denied: requires " + string(min) + " role")
	}
	return nil
}

// adminScreen renders one back-office listing for a gated command.
func (s *Session) adminScreen(min domain.Role, render func(w io.Writer, app *state.App) error) error {
	if err := s.requireRole(min); err != nil {
		return err
	}
	var sb strings.Builder
	if err := render(&sb, s.App); err != nil {
		return WrapExitError(ExitCommandError, "render failed", err)
	}
	for _, toast := range s.toasts {
		sb.WriteString("* " + toast + "\n")
	}
	return s.Out.Screen(sb.String(), nil)
}

// NewAdminCommand creates the admin command tree. Menu, order and reel
// management needs the admin role; branding, custom pages and user
// management stay superadmin-only.
func NewAdminCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "admin",
		Short:         "Back-office management",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleAdmin); err != nil {
				return err
			}
			s.Nav.NavigateToView(nav.Admin{})
			return s.Render()
		},
	}
	cmd.AddCommand(newAdminListCommand(opts, "dashboard", "Revenue, pending orders, headcounts", domain.RoleAdmin, screen.AdminDashboard))
	cmd.AddCommand(newAdminMenuCommand(opts))
	cmd.AddCommand(newAdminListCommand(opts, "orders", "All orders", domain.RoleAdmin, screen.AdminOrders))
	cmd.AddCommand(newAdminReelsCommand(opts))
	cmd.AddCommand(newAdminUsersCommand(opts))
	cmd.AddCommand(newAdminBrandingCommand(opts))
	cmd.AddCommand(newAdminPagesCommand(opts))
	return cmd
}

func newAdminListCommand(opts *RootOptions, use, short string, min domain.Role, render func(w io.Writer, app *state.App) error) *cobra.Command {
	return &cobra.Command{
		Use:           use,
		Short:         short,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			return s.adminScreen(min, render)
		},
	}
}

func newAdminMenuCommand(opts *RootOptions) *cobra.Command {
	cmd := newAdminListCommand(opts, "menu", "Manage menu items", domain.RoleAdmin, screen.AdminMenu)

	var item domain.FoodItem
	save := &cobra.Command{
		Use:           "save",
		Short:         "Create or edit a menu item (empty --id creates)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleAdmin); err != nil {
				return err
			}
			next := item
			if item.ID != "" {
				existing, ok := s.App.FoodItem(item.ID)
				if !ok {
					return s.fail("no such menu item: " + item.ID)
				}
				next = merged(cmd, existing, item)
			}
			s.App.SaveFoodItem(next)
			return s.adminScreen(domain.RoleAdmin, screen.AdminMenu)
		},
	}
	save.Flags().StringVar(&item.ID, "id", "", "item id (empty creates)")
	save.Flags().StringVar(&item.Name, "name", "", "item name")
	save.Flags().StringVar(&item.Category, "category", "", "menu category")
	save.Flags().IntVar(&item.Price, "price", 0, "list price in whole currency units")
	save.Flags().StringVar(&item.ImageURL, "image", "", "image URL")
	save.Flags().StringVar(&item.Description, "description", "", "item description")
	save.Flags().IntVar(&item.DiscountPercent, "discount", 0, "discount percent (0 for none)")
	cmd.AddCommand(save)

	cmd.AddCommand(&cobra.Command{
		Use:           "rm <id>",
		Short:         "Delete a menu item",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleAdmin); err != nil {
				return err
			}
			if !s.App.DeleteFoodItem(args[0]) {
				return s.fail("no such menu item: " + args[0])
			}
			return s.adminScreen(domain.RoleAdmin, screen.AdminMenu)
		},
	})
	return cmd
}

// merged overlays the flag-set fields of edit onto base, so editing a
// single field leaves the rest of the item alone.
func merged(cmd *cobra.Command, base, edit domain.FoodItem) domain.FoodItem {
	if cmd.Flags().Changed("name") {
		base.Name = edit.Name
	}
	if cmd.Flags().Changed("category") {
		base.Category = edit.Category
	}
	if cmd.Flags().Changed("price") {
		base.Price = edit.Price
	}
	if cmd.Flags().Changed("image") {
		base.ImageURL = edit.ImageURL
	}
	if cmd.Flags().Changed("description") {
		base.Description = edit.Description
	}
	if cmd.Flags().Changed("discount") {
		base.DiscountPercent = edit.DiscountPercent
	}
	return base
}

func newAdminReelsCommand(opts *RootOptions) *cobra.Command {
	cmd := newAdminListCommand(opts, "reels", "Manage reels", domain.RoleAdmin, screen.AdminReels)

	var reel domain.Reel
	save := &cobra.Command{
		Use:           "save",
		Short:         "Create or edit a reel (empty --id creates)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleAdmin); err != nil {
				return err
			}
			next := reel
			if reel.ID != "" {
				existing, ok := s.App.Reel(reel.ID)
				if !ok {
					return s.fail("no such reel: " + reel.ID)
				}
				existing.Title = reel.Title
				if cmd.Flags().Changed("video") {
					existing.VideoURL = reel.VideoURL
				}
				if cmd.Flags().Changed("image") {
					existing.ImageURL = reel.ImageURL
				}
				next = existing
			}
			s.App.SaveReel(next)
			return s.adminScreen(domain.RoleAdmin, screen.AdminReels)
		},
	}
	save.Flags().StringVar(&reel.ID, "id", "", "reel id (empty creates)")
	save.Flags().StringVar(&reel.Title, "title", "", "reel title")
	save.Flags().StringVar(&reel.VideoURL, "video", "", "video URL")
	save.Flags().StringVar(&reel.ImageURL, "image", "", "image URL")
	save.Flags().StringVar(&reel.User.Name, "author", "", "display author")
	cmd.AddCommand(save)

	cmd.AddCommand(&cobra.Command{
		Use:           "rm <id>",
		Short:         "Delete a reel",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleAdmin); err != nil {
				return err
			}
			if !s.App.DeleteReel(args[0]) {
				return s.fail("no such reel: " + args[0])
			}
			return s.adminScreen(domain.RoleAdmin, screen.AdminReels)
		},
	})
	return cmd
}

func newAdminUsersCommand(opts *RootOptions) *cobra.Command {
	cmd := newAdminListCommand(opts, "users", "Manage user accounts", domain.RoleSuperAdmin, screen.AdminUsers)

	cmd.AddCommand(&cobra.Command{
		Use:           "role <email> <role>",
		Short:         "Change a user's role",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleSuperAdmin); err != nil {
				return err
			}
			role := domain.Role(args[1])
			switch role {
			case domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin:
			default:
				return NewExitError(ExitCommandError, "invalid role "+args[1])
			}
			target, ok := findUser(s.App, args[0])
			if !ok {
				return s.fail("no such user: " + args[0])
			}
			target.Role = role
			s.App.SaveUser(args[0], target)
			return s.adminScreen(domain.RoleSuperAdmin, screen.AdminUsers)
		},
	})
	return cmd
}

func findUser(app *state.App, email string) (domain.UserProfile, bool) {
	for _, u := range app.Users() {
		if u.Email == email {
			return u, true
		}
	}
	return domain.UserProfile{}, false
}

func newAdminBrandingCommand(opts *RootOptions) *cobra.Command {
	cmd := newAdminListCommand(opts, "branding", "App name, logo and promo copy", domain.RoleSuperAdmin, screen.AdminBranding)

	var (
		name, promoTitle, promoSubtitle, logoFile string
	)
	set := &cobra.Command{
		Use:           "set",
		Short:         "Update app branding",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleSuperAdmin); err != nil {
				return err
			}
			settings := s.App.Settings()
			if cmd.Flags().Changed("name") {
				settings.AppName = name
			}
			if cmd.Flags().Changed("promo-title") {
				settings.PromoTitle = promoTitle
			}
			if cmd.Flags().Changed("promo-subtitle") {
				settings.PromoSubtitle = promoSubtitle
			}
			if cmd.Flags().Changed("logo") {
				url, err := dataurl.FromFile(logoFile)
				if err != nil {
					return WrapExitError(ExitCommandError, "reading logo failed", err)
				}
				settings.AppLogoURL = url
			}
			s.App.UpdateSettings(settings)
			return s.adminScreen(domain.RoleSuperAdmin, screen.AdminBranding)
		},
	}
	set.Flags().StringVar(&name, "name", "", "app name")
	set.Flags().StringVar(&promoTitle, "promo-title", "", "promo banner title")
	set.Flags().StringVar(&promoSubtitle, "promo-subtitle", "", "promo banner subtitle")
	set.Flags().StringVar(&logoFile, "logo", "", "logo image file (embedded as a data URL)")
	cmd.AddCommand(set)
	return cmd
}

func newAdminPagesCommand(opts *RootOptions) *cobra.Command {
	cmd := newAdminListCommand(opts, "pages", "Manage custom pages", domain.RoleSuperAdmin, screen.AdminPages)

	var page domain.CustomPage
	save := &cobra.Command{
		Use:           "save",
		Short:         "Create or edit a custom page (empty --id creates)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleSuperAdmin); err != nil {
				return err
			}
			next := page
			if page.ID != "" {
				existing, ok := s.App.CustomPage(page.ID)
				if !ok {
					return s.fail("no such page: " + page.ID)
				}
				if cmd.Flags().Changed("title") {
					existing.Title = page.Title
				}
				if cmd.Flags().Changed("icon") {
					existing.Icon = page.Icon
				}
				if cmd.Flags().Changed("content") {
					existing.Content = page.Content
				}
				next = existing
			}
			s.App.SavePage(next)
			return s.adminScreen(domain.RoleSuperAdmin, screen.AdminPages)
		},
	}
	save.Flags().StringVar(&page.ID, "id", "", "page id (empty creates)")
	save.Flags().StringVar(&page.Title, "title", "", "page title")
	save.Flags().StringVar(&page.Icon, "icon", "", "icon tag")
	save.Flags().StringVar(&page.Content, "content", "", "page body text")
	cmd.AddCommand(save)

	cmd.AddCommand(&cobra.Command{
		Use:           "rm <id>",
		Short:         "Delete a custom page",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd)
			if err != nil {
				return err
			}
			defer s.Close()
			if err := s.requireRole(domain.RoleSuperAdmin); err != nil {
				return err
			}
			if !s.App.DeletePage(args[0]) {
				return s.fail("no such page: " + args[0])
			}
			return s.adminScreen(domain.RoleSuperAdmin, screen.AdminPages)
		},
	})
	return cmd
}
