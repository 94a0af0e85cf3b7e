package constvars

var ImageAllowedProfilePictureFormats = []string{".jpg", ".jpeg", ".png", ".webp"}

const (
	ProfilePictureObjectPrefix = "profile_picture"
)
