package entity

import "github.com/go-openapi/strfmt"

type User struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Age     int          `json:"age"`
	Email   strfmt.Email `json:"email"`
	Address string       `json:"address"`
}

type Profile struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Phone  string `json:"phone"`
	// ProfileImage and Website are nil when the user did not set them.
	ProfileImage *strfmt.URI `json:"profileImage"`
	Website      *strfmt.URI `json:"website"`
}
