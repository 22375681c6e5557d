// Package seed supplies the default collections used when the store has
// no value for a key: the demo menu, reels, the bootstrap superadmin,
// branding, and the demo payment wallet.
//
// Seed documents are YAML validated against an embedded CUE schema
// before use, so a malformed override fails loudly at startup instead
// of surfacing as a half-empty app later.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/ruxxapp/ruxx/internal/domain"
)

//go:embed seed.yaml
var builtinYAML []byte

//go:embed schema.cue
var schemaCUE string

// Filename is the seed document name looked up in an override directory.
const Filename = "seed.yaml"

// Data holds the default value for every seeded collection. Orders,
// cart, custom pages and the current user always start empty.
type Data struct {
	Settings       domain.AppSettings
	Users          []domain.UserProfile
	FoodItems      []domain.FoodItem
	Reels          []domain.Reel
	PaymentMethods []domain.PaymentMethod
}

// document mirrors the YAML shape. Kept separate from the domain types
// so the stored JSON shape and the seed file can evolve independently.
type document struct {
	Settings struct {
		AppName       string `yaml:"app_name"`
		AppLogoURL    string `yaml:"app_logo_url"`
		PromoTitle    string `yaml:"promo_title"`
		PromoSubtitle string `yaml:"promo_subtitle"`
	} `yaml:"settings"`
	Users []struct {
		Name      string   `yaml:"name"`
		Email     string   `yaml:"email"`
		Phone     string   `yaml:"phone"`
		Addresses []string `yaml:"addresses"`
		AvatarURL string   `yaml:"avatar_url"`
		Password  string   `yaml:"password"`
		Role      string   `yaml:"role"`
	} `yaml:"users"`
	FoodItems []struct {
		ID              string `yaml:"id"`
		Name            string `yaml:"name"`
		Category        string `yaml:"category"`
		Price           int    `yaml:"price"`
		ImageURL        string `yaml:"image_url"`
		Description     string `yaml:"description"`
		DiscountPercent int    `yaml:"discount_percent"`
	} `yaml:"food_items"`
	Reels []struct {
		ID       string   `yaml:"id"`
		VideoURL string   `yaml:"video_url"`
		ImageURL string   `yaml:"image_url"`
		Title    string   `yaml:"title"`
		LikedBy  []string `yaml:"liked_by"`
		Comments []struct {
			Author struct {
				Email  string `yaml:"email"`
				Name   string `yaml:"name"`
				Avatar string `yaml:"avatar"`
			} `yaml:"author"`
			Text      string `yaml:"text"`
			Timestamp string `yaml:"timestamp"`
		} `yaml:"comments"`
		Author struct {
			Name   string `yaml:"name"`
			Avatar string `yaml:"avatar"`
		} `yaml:"author"`
	} `yaml:"reels"`
	PaymentMethods []struct {
		ID     string `yaml:"id"`
		Type   string `yaml:"type"`
		Last4  string `yaml:"last4"`
		Expiry string `yaml:"expiry"`
	} `yaml:"payment_methods"`
}

// Load parses and validates a seed document.
func Load(raw []byte) (Data, error) {
	if err := validate(raw); err != nil {
		return Data{}, err
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Data{}, fmt.Errorf("parse seed document: %w", err)
	}
	return doc.toData()
}

// LoadDir loads seed.yaml from an override directory.
func LoadDir(dir string) (Data, error) {
	raw, err := os.ReadFile(filepath.Join(dir, Filename))
	if err != nil {
		return Data{}, fmt.Errorf("read seed document: %w", err)
	}
	return Load(raw)
}

// Builtin returns the embedded defaults. The embedded document is
// covered by tests, so a failure here means a broken build.
func Builtin() Data {
	data, err := Load(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded seed data invalid: %v", err))
	}
	return data
}

// validate unifies the YAML document with the #Seed schema.
func validate(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse seed document: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile seed schema: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Seed")).Unify(ctx.Encode(doc))
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("seed document invalid: %w", err)
	}
	return nil
}

func (doc document) toData() (Data, error) {
	data := Data{
		Settings: domain.AppSettings{
			AppName:       doc.Settings.AppName,
			AppLogoURL:    doc.Settings.AppLogoURL,
			PromoTitle:    doc.Settings.PromoTitle,
			PromoSubtitle: doc.Settings.PromoSubtitle,
		},
	}

	for _, u := range doc.Users {
		addresses := u.Addresses
		if addresses == nil {
			addresses = []string{}
		}
		data.Users = append(data.Users, domain.UserProfile{
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Addresses: addresses,
			AvatarURL: u.AvatarURL,
			Password:  u.Password,
			Role:      domain.Role(u.Role),
		})
	}

	for _, f := range doc.FoodItems {
		data.FoodItems = append(data.FoodItems, domain.FoodItem{
			ID:              f.ID,
			Name:            f.Name,
			Category:        f.Category,
			Price:           f.Price,
			ImageURL:        f.ImageURL,
			Description:     f.Description,
			DiscountPercent: f.DiscountPercent,
		})
	}

	for _, r := range doc.Reels {
		if r.VideoURL == "" && r.ImageURL == "" {
			return Data{}, fmt.Errorf("seed document invalid: reel %q needs a video or image", r.ID)
		}
		reel := domain.Reel{
			ID:       r.ID,
			VideoURL: r.VideoURL,
			ImageURL: r.ImageURL,
			Title:    r.Title,
			LikedBy:  r.LikedBy,
			User: domain.ReelAuthor{
				Name:   r.Author.Name,
				Avatar: r.Author.Avatar,
			},
		}
		if reel.LikedBy == nil {
			reel.LikedBy = []string{}
		}
		for _, c := range r.Comments {
			reel.Comments = append(reel.Comments, domain.Comment{
				User: domain.CommentAuthor{
					Email:  c.Author.Email,
					Name:   c.Author.Name,
					Avatar: c.Author.Avatar,
				},
				Text:      c.Text,
				Timestamp: c.Timestamp,
			})
		}
		if reel.Comments == nil {
			reel.Comments = []domain.Comment{}
		}
		data.Reels = append(data.Reels, reel)
	}

	for _, pm := range doc.PaymentMethods {
		data.PaymentMethods = append(data.PaymentMethods, domain.PaymentMethod{
			ID:     pm.ID,
			Type:   pm.Type,
			Last4:  pm.Last4,
			Expiry: pm.Expiry,
		})
	}

	return data, nil
}
