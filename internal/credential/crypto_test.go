package credential

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_EncryptDecrypt(t *testing.T) {
	cipher := NewCipher("test-master-key")

	encoded, err := cipher.Encrypt("sk-abcdefghijklmnopqrstuvwxyz123456")
	require.NoError(t, err)
	assert.NotContains(t, encoded, "sk-abcdefghijklmnop", "密文不应包含明文")

	plaintext, err := cipher.Decrypt(encoded)
	require.NoError(t, err)
	assert.Equal(t, "sk-abcdefghijklmnopqrstuvwxyz123456", plaintext)
}

func TestCipher_NonceMakesCiphertextUnique(t *testing.T) {
	cipher := NewCipher("test-master-key")

	first, err := cipher.Encrypt("same-plaintext")
	require.NoError(t, err)
	second, err := cipher.Encrypt("same-plaintext")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "相同明文两次加密应产生不同密文")
}

func TestCipher_WrongMasterKey(t *testing.T) {
	encoded, err := NewCipher("key-one").Encrypt("secret-value")
	require.NoError(t, err)

	_, err = NewCipher("key-two").Decrypt(encoded)
	assert.Error(t, err)
}

func TestCipher_DecryptInvalidInput(t *testing.T) {
	cipher := NewCipher("test-master-key")

	_, err := cipher.Decrypt("not valid base64 !!!")
	assert.Error(t, err)

	_, err = cipher.Decrypt("c2hvcnQ=")
	assert.Error(t, err, "长度不足的密文应报错")

	encoded, err := cipher.Encrypt("secret-value")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	_, err = cipher.Decrypt(base64.StdEncoding.EncodeToString(raw))
	assert.Error(t, err, "被篡改的密文应报错")
}

func TestLooksLikeAPIKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{"OpenAI格式", "sk-abcdefghijklmnopqrstuvwxyz123456", true},
		{"带下划线和点", "key_abc.def-ghi_jkl.mno-pqr123", true},
		{"首尾空白被忽略", "  sk-abcdefghijklmnopqrstuvwxyz123456  ", true},
		{"太短", "sk-short", false},
		{"太长", "sk-" + strings.Repeat("a", 300), false},
		{"包含空格", "sk-abc def ghijklmnopqrstuvwxyz", false},
		{"包含中文", "sk-abcdefghijklmn密钥opqrstuvwxyz", false},
		{"空字符串", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeAPIKey(tt.key))
		})
	}
}
