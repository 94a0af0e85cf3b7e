package requests

// UpdateIdentityProfile is a sparse patch of identity-provider user fields.
// Nil pointers mean "leave the remote field untouched"; they are stripped
// before transmission so the update never clobbers unspecified fields.
type UpdateIdentityProfile struct {
	Picture    *string `json:"picture"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Username   *string `json:"username"`
	Phone      *string `json:"phone"`
	Gender     *string `json:"gender"`
	GivenName  *string `json:"givenname"`
	FamilyName *string `json:"familyname"`
	Address    *string `json:"address"`

	// ProfilePicture optionally carries a base64-encoded image that is
	// stored in object storage; the resulting URL becomes the picture field.
	ProfilePicture          string `json:"profile_picture,omitempty"`
	ProfilePictureData      []byte `json:"-"`
	ProfilePictureExtension string `json:"-"`
}
