package password_test

import (
	"strings"
	"testing"
	"tourdesk/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     error
	}{
		{name: "empty", password: "", want: password.ErrTooShort},
		{name: "seven characters", password: "Abc1234", want: password.ErrTooShort},
		{name: "eight characters", password: "Abc12345"},
		{name: "multibyte counts characters", password: "mậtkhẩu1"},
		{name: "exactly 72 bytes", password: strings.Repeat("a", 72)},
		{name: "73 bytes", password: strings.Repeat("a", 73), want: password.ErrTooLong},
		{name: "multibyte over 72 bytes", password: strings.Repeat("ẩ", 30), want: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, password.Check(tt.password), tt.want)
		})
	}
}

func TestHash(t *testing.T) {
	hashed, err := password.Hash("ChangeMe123!")
	require.NoError(t, err)

	assert.NotEqual(t, "ChangeMe123!", hashed)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, password.Cost, cost)

	again, err := password.Hash("ChangeMe123!")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again, "salted hashes differ")

	_, err = password.Hash("short")
	assert.ErrorIs(t, err, password.ErrTooShort)
}

func TestVerify(t *testing.T) {
	hashed, err := password.Hash("hướngdẫnviên")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
		anyError bool
	}{
		{name: "match", password: "hướngdẫnviên", hash: hashed},
		{name: "wrong password", password: "huongdanvien", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hashed, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "hướngdẫnviên", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "hướngdẫnviên", hash: "not-a-bcrypt-hash", anyError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyError:
				require.Error(t, err)
				assert.NotErrorIs(t, err, password.ErrInvalidPassword)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
