package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// UserTestSuite provides a test suite for the User entity
type UserTestSuite struct {
	suite.Suite
}

func TestUserTestSuite(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) TestUserCreation() {
	s.Run("ValidUser_ShouldCreateSuccessfully", func() {
		u, err := NewUser("cook@example.com", "Alex Cook", "Sup3rSecret!", 4)

		require.NoError(s.T(), err)
		require.NotNil(s.T(), u)
		assert.Equal(s.T(), "cook@example.com", u.Email())
		assert.Equal(s.T(), "Alex Cook", u.Name())
		assert.True(s.T(), u.IsActive())
		assert.NotEqual(s.T(), "Sup3rSecret!", u.PasswordHash())
	})

	s.Run("InvalidEmail_ShouldReturnError", func() {
		u, err := NewUser("not-an-email", "Alex", "Sup3rSecret!", 4)

		assert.Nil(s.T(), u)
		assert.ErrorIs(s.T(), err, ErrInvalidEmail)
	})

	s.Run("EmptyName_ShouldReturnError", func() {
		u, err := NewUser("cook@example.com", "  ", "Sup3rSecret!", 4)

		assert.Nil(s.T(), u)
		assert.ErrorIs(s.T(), err, ErrNameRequired)
	})

	s.Run("WeakPassword_ShouldReturnError", func() {
		u, err := NewUser("cook@example.com", "Alex", "password", 4)

		assert.Nil(s.T(), u)
		assert.ErrorIs(s.T(), err, ErrWeakPassword)
	})
}

func (s *UserTestSuite) TestCheckPassword() {
	u, err := NewUser("cook@example.com", "Alex", "Sup3rSecret!", 4)
	require.NoError(s.T(), err)

	s.Run("CorrectPassword_ShouldSucceed", func() {
		assert.NoError(s.T(), u.CheckPassword("Sup3rSecret!"))
	})

	s.Run("WrongPassword_ShouldFail", func() {
		assert.Error(s.T(), u.CheckPassword("Wr0ngSecret!"))
	})
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"MeetsAllRules", "Abcdef1!", true},
		{"TooShort", "Ab1!", false},
		{"TooLong", "Abcdefghijklmnop123!x", false},
		{"NoDigit", "Abcdefg!", false},
		{"NoUpper", "abcdefg1!", false},
		{"NoLower", "ABCDEFG1!", false},
		{"NoSymbol", "Abcdefg1", false},
		{"AllowedSymbolVariants", "Abcdef1#", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidatePassword(tt.password))
		})
	}
}
