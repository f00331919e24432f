package textcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/codesnap/pkg/codesnap"
)

func TestDecode_ValidUTF8PassesThrough(t *testing.T) {
	input := []byte("const greeting = \"héllo 世界\";\n")

	for _, policy := range []codesnap.DecodePolicy{codesnap.DecodeIgnore, codesnap.DecodeReplace, codesnap.DecodeStrict} {
		t.Run(string(policy), func(t *testing.T) {
			got, err := Decode(input, policy)
			require.NoError(t, err)
			assert.Equal(t, string(input), got)
		})
	}
}

func TestDecode_InvalidUTF8(t *testing.T) {
	input := []byte("ab\xffcd\xc3")

	tests := []struct {
		policy  codesnap.DecodePolicy
		want    string
		wantErr bool
	}{
		{codesnap.DecodeIgnore, "abcd", false},
		{codesnap.DecodeReplace, "ab�cd�", false},
		{codesnap.DecodeStrict, "", true},
	}
	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			got, err := Decode(input, tt.policy)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_EmptyPolicyIsIgnore(t *testing.T) {
	got, err := Decode([]byte("x\x80y"), "")
	require.NoError(t, err)
	assert.Equal(t, "xy", got)
}

func TestDecode_KeepsByteOrderMark(t *testing.T) {
	got, err := Decode([]byte("\xef\xbb\xbf{}"), codesnap.DecodeReplace)
	require.NoError(t, err)
	assert.Equal(t, "\ufeff{}", got)
}

func TestDecode_UnknownPolicy(t *testing.T) {
	_, err := Decode([]byte("x"), "latin1")
	assert.ErrorIs(t, err, codesnap.ErrInvalidConfig)
}
