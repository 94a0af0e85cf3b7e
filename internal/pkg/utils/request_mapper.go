package utils

import (
	"stackwise-service/internal/pkg/dto/requests"
)

// BuildIdentityPatchBody maps a sparse profile update onto the identity
// provider's wire format. Unset fields are omitted entirely so the remote
// record keeps its current values; the metadata group is always present but
// only carries the fields that were set.
func BuildIdentityPatchBody(request *requests.UpdateIdentityProfile) map[string]interface{} {
	body := map[string]interface{}{}

	if request.Picture != nil {
		body["picture"] = *request.Picture
	}
	if request.Email != nil {
		body["email"] = *request.Email
	}
	if request.GivenName != nil {
		body["given_name"] = *request.GivenName
	}
	if request.FamilyName != nil {
		body["family_name"] = *request.FamilyName
	}

	metadata := map[string]interface{}{}
	if request.Gender != nil {
		metadata["gender"] = *request.Gender
	}
	if request.Address != nil {
		metadata["address"] = *request.Address
	}
	if request.Phone != nil {
		metadata["phone"] = *request.Phone
	}
	if request.Username != nil {
		metadata["display_name"] = *request.Username
	}
	body["user_metadata"] = metadata

	return body
}
