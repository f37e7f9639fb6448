package testutil

import (
	"time"

	"bookrec/internal/auth"
	"bookrec/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

// TestUser is a fixture user for handler tests.
var TestUser = entity.User{
	ID:               "test-user-id-123",
	Username:         "testuser",
	Password:         "hashedpassword",
	AgeGroup:         "25-34",
	Gender:           "other",
	ReadingFrequency: "weekly",
	Hobbies:          []string{"hiking"},
	Interests:        []string{"Fantasy", "History"},
	Favorites:        []string{},
	CreatedAt:        time.Now(),
}

// TestBook is a fixture book for handler tests.
var TestBook = entity.Book{
	ID:            "test-book-id-789",
	Title:         "Fantastic Mr Fox",
	Author:        "Roald Dahl",
	Category:      "Children",
	Description:   "A clever fox outwits three farmers.",
	AddedBy:       "System",
	AverageRating: 0,
	CreatedAt:     time.Now(),
}

// GenerateTestToken returns a valid session token for the fixture identity.
func GenerateTestToken(secret, userID, username string) string {
	token, _ := auth.GenerateToken(secret, userID, username, time.Hour)
	return token
}

// GenerateExpiredToken returns a token whose expiry is already in the past.
func GenerateExpiredToken(secret, userID, username string) string {
	c := auth.Claims{
		Sub:      userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := tkn.SignedString([]byte(secret))
	return token
}
