package entity

import "time"

type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Password         string    `json:"-"`
	AgeGroup         string    `json:"ageGroup"`
	Gender           string    `json:"gender"`
	ReadingFrequency string    `json:"readingFrequency"`
	Hobbies          []string  `json:"hobbies"`
	Interests        []string  `json:"interests"`
	Favorites        []string  `json:"favorites"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PublicUser is the view returned to clients after login. The password hash
// never leaves the server.
type PublicUser struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Interests []string `json:"interests"`
}

func (u User) Public() PublicUser {
	interests := u.Interests
	if interests == nil {
		interests = []string{}
	}
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Interests: interests,
	}
}
