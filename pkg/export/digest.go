package export

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Algorithm names a digest in the form accepted on the command line.
type Algorithm string

const (
	MD5     Algorithm = "md5"
	SHA1    Algorithm = "sha1"
	SHA256  Algorithm = "sha256"
	SHA512  Algorithm = "sha512"
	SHA3224 Algorithm = "sha3_224"
	SHA3256 Algorithm = "sha3_256"
	SHA3384 Algorithm = "sha3_384"
	SHA3512 Algorithm = "sha3_512"
)

var (
	// Common is selected by "n".
	Common = []Algorithm{MD5, SHA1, SHA256, SHA512}
	// All is selected by "a".
	All = []Algorithm{MD5, SHA1, SHA256, SHA512, SHA3224, SHA3256, SHA3384, SHA3512}
)

var constructors = map[Algorithm]func() hash.Hash{
	MD5:     md5.New,
	SHA1:    sha1.New,
	SHA256:  sha256.New,
	SHA512:  sha512.New,
	SHA3224: sha3.New224,
	SHA3256: sha3.New256,
	SHA3384: sha3.New384,
	SHA3512: sha3.New512,
}

// New returns a fresh hash for a, or false when a is not supported.
func (a Algorithm) New() (hash.Hash, bool) {
	c, ok := constructors[a]
	if !ok {
		return nil, false
	}
	return c(), true
}

// ParseAlgorithms resolves a selection. Names are trimmed and lowercased;
// duplicates are dropped and unsupported names are returned in unknown.
func ParseAlgorithms(s string) (algs []Algorithm, unknown []string) {
	switch strings.TrimSpace(s) {
	case "":
		return nil, nil
	case "n":
		return append([]Algorithm(nil), Common...), nil
	case "a":
		return append([]Algorithm(nil), All...), nil
	}

	seen := make(map[Algorithm]bool)
	for _, name := range strings.Split(s, ",") {
		a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
		if a == "" || seen[a] {
			continue
		}
		if _, ok := constructors[a]; !ok {
			unknown = append(unknown, string(a))
			continue
		}
		seen[a] = true
		algs = append(algs, a)
	}
	return algs, unknown
}

// Sum is one hex encoded digest.
type Sum struct {
	Algorithm Algorithm
	Hex       string
}

// Digest reads r once and returns a sum per algorithm in the given order.
func Digest(r io.Reader, algs []Algorithm) ([]Sum, error) {
	hashes := make([]hash.Hash, len(algs))
	writers := make([]io.Writer, len(algs))
	for i, a := range algs {
		h, ok := a.New()
		if !ok {
			return nil, fmt.Errorf("%w: unsupported algorithm %q", ErrFailedToHash, a)
		}
		hashes[i], writers[i] = h, h
	}

	if _, err := io.Copy(io.MultiWriter(writers...), r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToHash, err)
	}

	sums := make([]Sum, len(algs))
	for i, h := range hashes {
		sums[i] = Sum{Algorithm: algs[i], Hex: hex.EncodeToString(h.Sum(nil))}
	}
	return sums, nil
}

// DigestFile computes the sums of the file at path.
func DigestFile(path string, algs []Algorithm) ([]Sum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	return Digest(f, algs)
}
