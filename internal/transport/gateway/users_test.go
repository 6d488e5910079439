package gateway

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type UserStoreTestSuite struct {
	suite.Suite
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreTestSuite))
}

func (s *UserStoreTestSuite) TestParse() {
	store, err := NewUserStore([]string{"admin:admin123:ADMIN", " user:user123 "})
	s.Require().NoError(err)

	admin, err := store.Authenticate("admin", "admin123")
	s.Require().NoError(err)
	s.Equal("ADMIN", admin.Role)

	user, err := store.Authenticate("user", "user123")
	s.Require().NoError(err)
	s.Equal(DefaultRole, user.Role)

	_, err = store.Authenticate("user", "admin123")
	s.Require().ErrorIs(err, ErrInvalidCredentials)
}

func (s *UserStoreTestSuite) TestInvalidEntry() {
	for _, entry := range []string{"admin", ":pass", "admin:", "a:b:c:d"} {
		_, err := NewUserStore([]string{entry})
		s.Error(err, entry)
	}
}
