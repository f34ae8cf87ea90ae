package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

const (
	// RequestIDLength là độ dài của request ID
	RequestIDLength = 12
	// idCharset là bộ ký tự được sử dụng để tạo ID (a-zA-Z0-9)
	idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateRequestID tạo ID ngắn a-zA-Z0-9 cho header X-Request-ID.
// Nếu crypto/rand lỗi thì dùng uuid.
func GenerateRequestID() string {
	// rand.Int để mỗi ký tự đều nhau, byte % 62 lệch về đầu charset
	limit := big.NewInt(int64(len(idCharset)))
	buf := make([]byte, RequestIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return uuid.NewString()
		}
		buf[i] = idCharset[n.Int64()]
	}
	return string(buf)
}
