package identity

import (
	"strconv"
	"strings"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/tracker/model"
)

type City struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Profile is the user info returned by the profile provider.
type Profile struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Photo200  string `json:"photo_200"`
	City      *City  `json:"city,omitempty"`
}

func ProfileFromConfig(fp config.FallbackProfile) Profile {
	p := Profile{
		ID:        fp.ID,
		FirstName: fp.FirstName,
		LastName:  fp.LastName,
		Photo200:  fp.Photo,
	}
	if fp.City != "" {
		p.City = &City{Title: fp.City}
	}
	return p
}

func (p Profile) ToUser() model.User {
	user := model.User{
		ID:    strconv.FormatInt(p.ID, 10),
		Name:  strings.TrimSpace(p.FirstName + " " + p.LastName),
		Photo: p.Photo200,
	}
	if p.City != nil {
		user.City = p.City.Title
	}
	return user
}
