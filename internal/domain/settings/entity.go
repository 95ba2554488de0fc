package settings

// PortfolioSettings is the single, site-wide configuration record edited from
// the admin panel and read by every public page.
type PortfolioSettings struct {
	PhotographerName string
	Location         string
	Bio              string
	Email            string
	Instagram        string
	ProfilePhoto     string
	SiteTitle        string
	Languages        string
	Equipment        string
	IsConfigured     bool
	Theme            Theme
}

// Update is a partial settings change; nil fields are left untouched.
type Update struct {
	PhotographerName *string
	Location         *string
	Bio              *string
	Email            *string
	Instagram        *string
	ProfilePhoto     *string
	SiteTitle        *string
	Languages        *string
	Equipment        *string
	Theme            *Theme
}

// Apply merges an update into the settings. Saving any change marks the site
// as configured, which dismisses the first-run setup screen.
func (s *PortfolioSettings) Apply(u Update) error {
	if u.Theme != nil {
		if err := u.Theme.Validate(); err != nil {
			return err
		}
		s.Theme = *u.Theme
	}

	if u.PhotographerName != nil {
		s.PhotographerName = *u.PhotographerName
	}
	if u.Location != nil {
		s.Location = *u.Location
	}
	if u.Bio != nil {
		s.Bio = *u.Bio
	}
	if u.Email != nil {
		s.Email = *u.Email
	}
	if u.Instagram != nil {
		s.Instagram = *u.Instagram
	}
	if u.ProfilePhoto != nil {
		s.ProfilePhoto = *u.ProfilePhoto
	}
	if u.SiteTitle != nil {
		s.SiteTitle = *u.SiteTitle
	}
	if u.Languages != nil {
		s.Languages = *u.Languages
	}
	if u.Equipment != nil {
		s.Equipment = *u.Equipment
	}

	s.IsConfigured = true
	return nil
}

// Defaults returns the settings a fresh install starts with.
func Defaults() PortfolioSettings {
	return PortfolioSettings{
		PhotographerName: "Your Name",
		SiteTitle:        "Photography Portfolio",
		Theme: Theme{
			Preset:     PresetMinimalist,
			FontFamily: DefaultFontFamily,
		},
	}
}
