package employee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMD5HasherKnownDigest(t *testing.T) {
	// digest must match rows written by the previous system
	require.Equal(t, "e10adc3949ba59abbe56e057f20f883e", MD5Hasher{}.Hash("123456"))
}

func TestMD5HasherDeterministic(t *testing.T) {
	h := MD5Hasher{}
	require.Equal(t, h.Hash("secret"), h.Hash("secret"))
	require.NotEqual(t, h.Hash("secret"), h.Hash("Secret"))
}

func TestMD5HasherVerify(t *testing.T) {
	h := MD5Hasher{}
	stored := h.Hash("123456")
	require.True(t, h.Verify(stored, "123456"))
	require.False(t, h.Verify(stored, "1234567"))
	require.False(t, h.Verify("", "123456"))
}
