package internal

import (
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// sha512Reference recomputes the digest independently of the production code.
func sha512Reference(message string) string {
	sum := sha512.Sum512([]byte(message))
	return hex.EncodeToString(sum[:])
}

func TestSigningStringLayout(t *testing.T) {
	hasher := NewHasher("MK", "SALT")
	signed := hasher.SigningString("TXN_1700000000000_a1b2c3", "1.00", "HotelBooking", "John", "john@example.com")

	require.Equal(t, 16, strings.Count(signed, "|"))

	parts := strings.Split(signed, "|")
	require.Len(t, parts, 17)
	require.Equal(t, "MK", parts[0])
	require.Equal(t, "TXN_1700000000000_a1b2c3", parts[1])
	require.Equal(t, "1.00", parts[2])
	require.Equal(t, "HotelBooking", parts[3])
	require.Equal(t, "John", parts[4])
	require.Equal(t, "john@example.com", parts[5])
	require.Equal(t, "SALT", parts[16])

	// the ten reserved optional fields stay in place as empty segments
	for i := 6; i < 16; i++ {
		require.Empty(t, parts[i])
	}
}

func TestRequestSignatureDeterministic(t *testing.T) {
	hasher := NewHasher("MK", "SALT")

	first, err := hasher.RequestSignature("TXN_1700000000000_a1b2c3", "1.00", "HotelBooking", "John", "john@example.com")
	require.NoError(t, err)
	second, err := hasher.RequestSignature("TXN_1700000000000_a1b2c3", "1.00", "HotelBooking", "John", "john@example.com")
	require.NoError(t, err)
	require.Equal(t, first, second)

	signed := hasher.SigningString("TXN_1700000000000_a1b2c3", "1.00", "HotelBooking", "John", "john@example.com")
	require.Equal(t, sha512Reference(signed), first)
}

func TestRequestSignatureEndToEnd(t *testing.T) {
	hasher := NewHasher("MK", "SALT")
	signed := hasher.SigningString("TXN_1700000000000", "1.00", "HotelBooking", "John", "john@example.com")
	require.Equal(t, "MK|TXN_1700000000000|1.00|HotelBooking|John|john@example.com|||||||||||SALT", signed)

	digest, err := hasher.RequestSignature("TXN_1700000000000", "1.00", "HotelBooking", "John", "john@example.com")
	require.NoError(t, err)
	require.Equal(t, sha512Reference(signed), digest)
	require.Equal(t, strings.ToLower(digest), digest)
	require.Len(t, digest, 128)
}

func TestRequestSignatureFieldOrder(t *testing.T) {
	hasher := NewHasher("MK", "SALT")

	reference, err := hasher.RequestSignature("TXN_1", "1.00", "HotelBooking", "John", "john@example.com")
	require.NoError(t, err)

	// swapping any two segments must change the digest
	swapped, err := hasher.RequestSignature("TXN_1", "1.00", "HotelBooking", "john@example.com", "John")
	require.NoError(t, err)
	require.NotEqual(t, reference, swapped)

	swapped, err = hasher.RequestSignature("1.00", "TXN_1", "HotelBooking", "John", "john@example.com")
	require.NoError(t, err)
	require.NotEqual(t, reference, swapped)
}

func TestRequestSignatureRequiresMerchant(t *testing.T) {
	hasher := NewHasher("", "")
	_, err := hasher.RequestSignature("TXN_1", "1.00", "HotelBooking", "John", "john@example.com")
	require.Error(t, err)
}

func TestResponseSignature(t *testing.T) {
	hasher := NewHasher("MK", "SALT")
	digest := hasher.ResponseSignature("success", "john@example.com", "John", "HotelBooking", "1.00", "TXN_1")
	require.Equal(t, sha512Reference("SALT|success|||||||||||john@example.com|John|HotelBooking|1.00|TXN_1|MK"), digest)
}
