package store

import (
	"github.com/go-openapi/strfmt"
	"github.com/tupyy/fpintro/internal/entity"
	"github.com/tupyy/fpintro/internal/maybe"
)

// UserAPI serves users and profiles from fixed in memory data.
type UserAPI struct {
	users    *Store[entity.User]
	profiles *Store[entity.Profile]
}

func NewUserAPI(users []entity.User, profiles []entity.Profile) *UserAPI {
	return &UserAPI{
		users:    New(users...),
		profiles: New(profiles...),
	}
}

// NewMockUserAPI returns an api seeded with three users, two of them having a profile.
func NewMockUserAPI() *UserAPI {
	return NewUserAPI(mockUsers(), mockProfiles())
}

// FindAll returns every user. An empty store yields an empty, present slice.
func (u *UserAPI) FindAll() maybe.Maybe[[]entity.User] {
	users := make([]entity.User, 0, u.users.Len())
	for iter := u.users.Iter(); iter.HasNext(); {
		user, ok := iter.Next()
		if !ok {
			break
		}
		users = append(users, user)
	}

	return maybe.Of(users)
}

func (u *UserAPI) FindByName(name string) maybe.Maybe[entity.User] {
	user, found := u.users.Find(func(user entity.User) bool { return user.Name == name })
	if !found {
		return maybe.Nothing[entity.User]()
	}
	return maybe.Of(user)
}

func (u *UserAPI) FindProfileByUserID(userID int) maybe.Maybe[entity.Profile] {
	profile, found := u.profiles.Find(func(p entity.Profile) bool { return p.UserID == userID })
	if !found {
		return maybe.Nothing[entity.Profile]()
	}
	return maybe.Of(profile)
}

// ProfileImage chains the lookups from a user name down to the profile image url.
func (u *UserAPI) ProfileImage(name string) maybe.Maybe[string] {
	user := maybe.FlatMap(u.FindAll(), func(_ []entity.User) maybe.Maybe[entity.User] {
		return u.FindByName(name)
	})
	profile := maybe.FlatMap(user, func(user entity.User) maybe.Maybe[entity.Profile] {
		return u.FindProfileByUserID(user.ID)
	})
	image := maybe.Map(profile, func(p entity.Profile) *strfmt.URI { return p.ProfileImage })

	return maybe.Map(image, func(uri *strfmt.URI) string { return uri.String() })
}

func mockUsers() []entity.User {
	return []entity.User{
		{
			ID:      1,
			Name:    "John",
			Age:     30,
			Address: "Seoul",
			Email:   "john@example.net",
		},
		{
			ID:      2,
			Name:    "Jane",
			Age:     25,
			Address: "Busan",
			Email:   "Jane@example.net",
		},
		{
			ID:      3,
			Name:    "Smith",
			Age:     28,
			Address: "Gwangju",
			Email:   "Smith@example.net",
		},
	}
}

func mockProfiles() []entity.Profile {
	uri := func(s string) *strfmt.URI {
		u := strfmt.URI(s)
		return &u
	}

	return []entity.Profile{
		{
			ID:           1,
			UserID:       1,
			Phone:        "01022223333",
			ProfileImage: uri("https://picsum.photos/200"),
			Website:      uri("https://example.com"),
		},
		{
			ID:           2,
			UserID:       2,
			Phone:        "01011112222",
			ProfileImage: uri("https://picsum.photos/201"),
			Website:      uri("https://example.com"),
		},
	}
}
