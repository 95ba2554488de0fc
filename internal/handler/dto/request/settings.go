package request

import (
	"lensfolio/internal/domain/settings"
)

type ThemeColorsRequest struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
}

type ThemeRequest struct {
	Preset       string              `json:"preset"`
	CustomColors *ThemeColorsRequest `json:"customColors,omitempty"`
	FontFamily   string              `json:"fontFamily"`
}

type UpdateSettingsRequest struct {
	PhotographerName *string       `json:"photographerName,omitempty"`
	Location         *string       `json:"location,omitempty"`
	Bio              *string       `json:"bio,omitempty"`
	Email            *string       `json:"email,omitempty"`
	Instagram        *string       `json:"instagram,omitempty"`
	ProfilePhoto     *string       `json:"profilePhoto,omitempty"`
	SiteTitle        *string       `json:"siteTitle,omitempty"`
	Languages        *string       `json:"languages,omitempty"`
	Equipment        *string       `json:"equipment,omitempty"`
	Theme            *ThemeRequest `json:"theme,omitempty"`
}

func (r UpdateSettingsRequest) ToUpdate() settings.Update {
	update := settings.Update{
		PhotographerName: r.PhotographerName,
		Location:         r.Location,
		Bio:              r.Bio,
		Email:            r.Email,
		Instagram:        r.Instagram,
		ProfilePhoto:     r.ProfilePhoto,
		SiteTitle:        r.SiteTitle,
		Languages:        r.Languages,
		Equipment:        r.Equipment,
	}
	if r.Theme != nil {
		theme := settings.Theme{
			Preset:     settings.Preset(r.Theme.Preset),
			FontFamily: r.Theme.FontFamily,
		}
		if r.Theme.CustomColors != nil {
			theme.CustomColors = &settings.Colors{
				Primary:    r.Theme.CustomColors.Primary,
				Secondary:  r.Theme.CustomColors.Secondary,
				Accent:     r.Theme.CustomColors.Accent,
				Background: r.Theme.CustomColors.Background,
			}
		}
		update.Theme = &theme
	}
	return update
}

type ContactRequest struct {
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}
