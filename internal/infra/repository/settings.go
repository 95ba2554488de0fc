package repository

import (
	"context"
	"encoding/json"

	"lensfolio/internal/domain/settings"
	"lensfolio/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// themeDoc is the jsonb shape of the theme column.
type themeDoc struct {
	Preset       string     `json:"preset"`
	CustomColors *colorsDoc `json:"customColors,omitempty"`
	FontFamily   string     `json:"fontFamily,omitempty"`
}

type colorsDoc struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

func (r *SettingsRepository) Get(ctx context.Context) (settings.PortfolioSettings, error) {
	query := `
		SELECT photographer_name, location, bio, email, instagram, profile_photo,
		       site_title, languages, equipment, is_configured, theme
		FROM portfolio_settings
		WHERE id
	`

	var (
		s         settings.PortfolioSettings
		themeJSON []byte
	)
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.PhotographerName, &s.Location, &s.Bio, &s.Email, &s.Instagram,
		&s.ProfilePhoto, &s.SiteTitle, &s.Languages, &s.Equipment,
		&s.IsConfigured, &themeJSON,
	)
	if err != nil {
		return settings.PortfolioSettings{}, infra.WrapRepoErr("failed to read settings", err)
	}

	var doc themeDoc
	if err := json.Unmarshal(themeJSON, &doc); err != nil {
		return settings.PortfolioSettings{}, infra.WrapRepoErr("failed to decode theme", err)
	}
	s.Theme = themeFromDoc(doc)

	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s settings.PortfolioSettings) error {
	themeJSON, err := json.Marshal(themeToDoc(s.Theme))
	if err != nil {
		return infra.WrapRepoErr("failed to encode theme", err)
	}

	query := `
		UPDATE portfolio_settings
		SET photographer_name = $1, location = $2, bio = $3, email = $4,
		    instagram = $5, profile_photo = $6, site_title = $7, languages = $8,
		    equipment = $9, is_configured = $10, theme = $11
		WHERE id
	`

	_, err = r.pool.Exec(ctx, query,
		s.PhotographerName, s.Location, s.Bio, s.Email, s.Instagram,
		s.ProfilePhoto, s.SiteTitle, s.Languages, s.Equipment,
		s.IsConfigured, themeJSON,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save settings", err)
	}
	return nil
}

func themeFromDoc(doc themeDoc) settings.Theme {
	theme := settings.Theme{
		Preset:     settings.Preset(doc.Preset),
		FontFamily: doc.FontFamily,
	}
	if theme.Preset == "" {
		theme.Preset = settings.PresetMinimalist
	}
	if doc.CustomColors != nil {
		theme.CustomColors = &settings.Colors{
			Primary:    doc.CustomColors.Primary,
			Secondary:  doc.CustomColors.Secondary,
			Accent:     doc.CustomColors.Accent,
			Background: doc.CustomColors.Background,
		}
	}
	return theme
}

func themeToDoc(theme settings.Theme) themeDoc {
	doc := themeDoc{
		Preset:     string(theme.Preset),
		FontFamily: theme.FontFamily,
	}
	if theme.CustomColors != nil {
		doc.CustomColors = &colorsDoc{
			Primary:    theme.CustomColors.Primary,
			Secondary:  theme.CustomColors.Secondary,
			Accent:     theme.CustomColors.Accent,
			Background: theme.CustomColors.Background,
		}
	}
	return doc
}
