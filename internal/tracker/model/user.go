package model

type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Photo      string `json:"photo"`
	City       string `json:"city"`
	SkillLevel string `json:"skillLevel"`
	PrimaryGym string `json:"primaryGym"`
	FirstLogin bool   `json:"firstLogin"`
}

// UserPatch holds the user settings that can be changed after the first login.
// Nil fields are left untouched.
type UserPatch struct {
	Name       *string `json:"name,omitempty"`
	City       *string `json:"city,omitempty"`
	SkillLevel *string `json:"skillLevel,omitempty"`
	PrimaryGym *string `json:"primaryGym,omitempty"`
}

func (p UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.SkillLevel != nil {
		u.SkillLevel = *p.SkillLevel
	}
	if p.PrimaryGym != nil {
		u.PrimaryGym = *p.PrimaryGym
	}
}

type Friend struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// UserSnapshot is the lightweight copy of a user embedded into workout participants.
type UserSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}
