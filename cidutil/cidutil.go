package cidutil

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"
)

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
func CIDv1RawSHA256(data []byte) string {
	c, err := CIDv1RawSHA256CID(data)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return c.String()
}

// CIDv1RawSHA256CID returns a CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// Digest returns the hex digest of data. hashAlg must be one of: sha256, sha512, sha3-256.
func Digest(hashAlg string, data []byte) (string, error) {
	switch hashAlg {
	case "sha256":
		s := sha256.Sum256(data)
		return hex.EncodeToString(s[:]), nil
	case "sha512":
		s := sha512.Sum512(data)
		return hex.EncodeToString(s[:]), nil
	case "sha3-256":
		s := sha3.Sum256(data)
		return hex.EncodeToString(s[:]), nil
	default:
		return "", fmt.Errorf("unsupported hash algorithm %q", hashAlg)
	}
}
