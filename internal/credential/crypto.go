package credential

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	keyIterations = 4096
	keyLength     = 32
)

var (
	cipherSalt    = []byte("chat-tldr-bot.credential.v1")
	apiKeyPattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]+$`)
)

// Cipher 用主密钥加解密群组专属的 API Key
type Cipher struct {
	key []byte
}

// NewCipher 从主密钥派生加密密钥
func NewCipher(masterKey string) *Cipher {
	key := pbkdf2.Key([]byte(masterKey), cipherSalt, keyIterations, keyLength, sha256.New)
	return &Cipher{key: key}
}

// Encrypt 加密明文，返回 Base64 编码的 nonce+密文
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt 解密 Encrypt 的输出
func (c *Cipher) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("解码密文失败: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	if len(data) < gcm.NonceSize() {
		return "", errors.New("密文长度不足")
	}
	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("解密失败: %w", err)
	}
	return string(plaintext), nil
}

// LooksLikeAPIKey 粗略校验 API Key 的形态，不校验有效性
func LooksLikeAPIKey(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 20 || len(s) > 200 {
		return false
	}
	return apiKeyPattern.MatchString(s)
}
