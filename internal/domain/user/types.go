package user

// Visibility says which session-dependent page elements are shown.
type Visibility struct {
	LoginLink    bool
	UserInfo     bool
	LogoutAction bool
	AdminLink    bool
	Email        string
}

// VisibilityFor maps the session probe onto the header. A nil profile means
// logged out, whatever the reason the probe failed.
func VisibilityFor(profile *Profile) Visibility {
	if profile == nil {
		return Visibility{LoginLink: true}
	}
	return Visibility{
		UserInfo:     true,
		LogoutAction: true,
		AdminLink:    profile.IsSuperuser,
		Email:        profile.Email,
	}
}

func (v Visibility) LoggedIn() bool {
	return v.UserInfo
}
