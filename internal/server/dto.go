package server

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// minInterests is the onboarding floor: an interest selection only
// counts once the user has picked at least this many labels.
const minInterests = 5

// trackRequest reports a single engagement event. Unknown action kinds
// are accepted and fall back to the default weight.
type trackRequest struct {
	Category string `json:"category"`
	Action   string `json:"action"`
}

func (r trackRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Category, validation.Required),
		validation.Field(&r.Action, validation.Required),
	)
}

// interestsRequest overwrites the interest set wholesale.
type interestsRequest struct {
	Interests []string `json:"interests"`
}

func (r interestsRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Interests,
			validation.Required,
			validation.Length(minInterests, 0),
			validation.Each(validation.Required, validation.Length(1, 64)),
		),
	)
}

// loginRequest carries the server-declared account data for the merge.
type loginRequest struct {
	Interests []string       `json:"interests"`
	Activity  map[string]int `json:"activity"`
}

// profileRequest updates the account owner's display profile.
type profileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

func (r profileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 128)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Bio, validation.Length(0, 512)),
	)
}
