package store_test

import (
	"github.com/go-openapi/strfmt"
	"github.com/samber/lo"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tupyy/fpintro/internal/entity"
	"github.com/tupyy/fpintro/internal/maybe"
	"github.com/tupyy/fpintro/internal/store"
)

var _ = Describe("user api", func() {
	var api *store.UserAPI

	Context("with the mock data", func() {
		BeforeEach(func() {
			api = store.NewMockUserAPI()
		})

		It("returns all users", func() {
			users := api.FindAll()
			Expect(users.IsPresent()).To(BeTrue())
			Expect(users.GetOrElse(nil)).To(HaveLen(3))

			names := lo.Map(users.GetOrElse(nil), func(u entity.User, _ int) string { return u.Name })
			Expect(names).To(Equal([]string{"John", "Jane", "Smith"}))
		})

		It("finds a user by name", func() {
			jane := api.FindByName("Jane")
			Expect(jane.IsPresent()).To(BeTrue())
			Expect(maybe.Map(jane, func(u entity.User) int { return u.ID }).GetOrElse(0)).To(Equal(2))
		})

		It("returns nothing for an unknown name", func() {
			Expect(api.FindByName("Nobody").IsNothing()).To(BeTrue())
		})

		It("returns nothing for a user without profile", func() {
			smith := api.FindByName("Smith")
			profile := maybe.FlatMap(smith, func(u entity.User) maybe.Maybe[entity.Profile] {
				return api.FindProfileByUserID(u.ID)
			})
			Expect(profile.IsNothing()).To(BeTrue())
			Expect(api.ProfileImage("Smith").GetOrElse("none")).To(Equal("none"))
		})

		It("resolves the profile image of John", func() {
			Expect(api.ProfileImage("John").GetOrElse("none")).To(Equal("https://picsum.photos/200"))
		})
	})

	Context("with custom data", func() {
		BeforeEach(func() {
			image := strfmt.URI("X")
			api = store.NewUserAPI(
				[]entity.User{{Name: "John", ID: 1}, {Name: "Jane", ID: 2}},
				[]entity.Profile{{UserID: 1, ProfileImage: &image}, {UserID: 2}},
			)
		})

		It("chains findAll, findByName, profile lookup and image", func() {
			Expect(api.ProfileImage("John").GetOrElse("none")).To(Equal("X"))
		})

		It("collapses a missing image to nothing", func() {
			Expect(api.FindProfileByUserID(2).IsPresent()).To(BeTrue())
			Expect(api.ProfileImage("Jane").IsNothing()).To(BeTrue())
		})

		It("falls back to the default for an unknown name", func() {
			image := api.ProfileImage("Nobody")
			Expect(image.IsNothing()).To(BeTrue())
			Expect(image.GetOrElse("none")).To(Equal("none"))
		})
	})

	Context("with no users", func() {
		It("still returns an empty but present list", func() {
			api = store.NewUserAPI(nil, nil)
			Expect(api.FindAll().IsPresent()).To(BeTrue())
			Expect(api.FindAll().GetOrElse(nil)).To(BeEmpty())
		})
	})
})
