package response

import (
	"lensfolio/internal/domain/settings"
)

type ThemeColorsResponse struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Gradient   string `json:"gradient,omitempty"`
}

type ThemeResponse struct {
	Preset       string               `json:"preset"`
	CustomColors *ThemeColorsResponse `json:"customColors,omitempty"`
	FontFamily   string               `json:"fontFamily"`
}

type SettingsResponse struct {
	PhotographerName string        `json:"photographerName"`
	Location         string        `json:"location"`
	Bio              string        `json:"bio"`
	Email            string        `json:"email"`
	Instagram        string        `json:"instagram"`
	ProfilePhoto     string        `json:"profilePhoto"`
	SiteTitle        string        `json:"siteTitle"`
	Languages        string        `json:"languages"`
	Equipment        string        `json:"equipment"`
	IsConfigured     bool          `json:"isConfigured"`
	Theme            ThemeResponse `json:"theme"`
}

func FromSettings(s settings.PortfolioSettings) *SettingsResponse {
	theme := ThemeResponse{
		Preset:     string(s.Theme.Preset),
		FontFamily: s.Theme.FontFamily,
	}
	if s.Theme.CustomColors != nil {
		theme.CustomColors = &ThemeColorsResponse{
			Primary:    s.Theme.CustomColors.Primary,
			Secondary:  s.Theme.CustomColors.Secondary,
			Accent:     s.Theme.CustomColors.Accent,
			Background: s.Theme.CustomColors.Background,
			Gradient:   s.Theme.CustomColors.Gradient,
		}
	}

	return &SettingsResponse{
		PhotographerName: s.PhotographerName,
		Location:         s.Location,
		Bio:              s.Bio,
		Email:            s.Email,
		Instagram:        s.Instagram,
		ProfilePhoto:     s.ProfilePhoto,
		SiteTitle:        s.SiteTitle,
		Languages:        s.Languages,
		Equipment:        s.Equipment,
		IsConfigured:     s.IsConfigured,
		Theme:            theme,
	}
}
