package utils

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

const (
	barcodeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	barcodeLength  = 12
)

var (
	barcodeMu  sync.Mutex
	barcodeRng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
)

// GenerateBarcode returns a 12 character code of digits and uppercase
// letters. Uniqueness is best effort, codes are not checked against
// existing rows.
func GenerateBarcode() string {
	barcodeMu.Lock()
	defer barcodeMu.Unlock()

	b := make([]byte, barcodeLength)
	for i := range b {
		b[i] = barcodeCharset[barcodeRng.Intn(len(barcodeCharset))]
	}
	return string(b)
}
