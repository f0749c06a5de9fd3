package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(1)
	require.NoError(t, err)
	require.Equal(t, StatusEnabled, st)

	st, err = ParseStatus(0)
	require.NoError(t, err)
	require.Equal(t, StatusDisabled, st)

	for _, v := range []int{-1, 2, 100} {
		_, err := ParseStatus(v)
		require.Error(t, err)
	}
}

func TestStatusValid(t *testing.T) {
	require.True(t, StatusEnabled.Valid())
	require.True(t, StatusDisabled.Valid())
	require.False(t, Status(3).Valid())
}

func TestNewViewMasksPassword(t *testing.T) {
	e := &Employee{
		ID:        42,
		Username:  "admin",
		Name:      "Administrator",
		Password:  "e10adc3949ba59abbe56e057f20f883e",
		Phone:     "13800000000",
		Status:    StatusEnabled,
		CreatedAt: time.Now(),
	}
	v := NewView(e)
	require.Equal(t, PasswordMask, v.Password)
	require.Equal(t, e.ID, v.ID)
	require.Equal(t, e.Username, v.Username)
	require.Equal(t, e.Phone, v.Phone)

	// the digest must not survive serialization of the view
	out, err := json.Marshal(v)
	require.NoError(t, err)
	require.NotContains(t, string(out), e.Password)
	require.Contains(t, string(out), PasswordMask)
}

func TestEmployeeJSONOmitsPassword(t *testing.T) {
	e := &Employee{ID: 1, Username: "admin", Password: "digest"}
	out, err := json.Marshal(e)
	require.NoError(t, err)
	require.NotContains(t, string(out), "digest")
}
