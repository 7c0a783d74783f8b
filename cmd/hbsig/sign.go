package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/georgwiese/hbsig"
	"github.com/georgwiese/hbsig/internal/primitives"
)

func newSignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <path>",
		Short: "Sign a file's SHA-256 digest with the local private key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSign(args[0])
		},
	}
}

// hashFile streams path through SHA-256 without loading it into memory
// whole, unlike the original implementation's single fs::read call.
func hashFile(path string) (primitives.Hash, error) {
	f, err := os.Open(path)
	if err != nil {
		return primitives.Hash{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return primitives.Hash{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var out primitives.Hash
	copy(out[:], h.Sum(nil))
	return out, nil
}

func runSign(path string) error {
	log.Info().Str("path", path).Msg("signing file")

	fileHash, err := hashFile(path)
	if err != nil {
		return fmt.Errorf("hbsig sign: %w", err)
	}

	privateKey, err := loadPrivateKey(defaultPrivateKeyPath)
	if err != nil {
		return fmt.Errorf("hbsig sign: %w", err)
	}

	scheme, _, err := privateKey.Scheme()
	if err != nil {
		return fmt.Errorf("hbsig sign: %w", err)
	}

	start := time.Now()
	sig, err := scheme.Sign(fileHash)
	if err != nil {
		return fmt.Errorf("hbsig sign: %w", err)
	}
	log.Info().Dur("took", time.Since(start)).Msg("signing complete")

	fmt.Printf("File path:      %s\n", path)
	fmt.Printf("Hash:           %s\n", primitives.HashToHex(fileHash))
	fmt.Printf("Public key:     %s\n", primitives.HashToHex(scheme.PublicKey()))

	encoded, err := hbsig.EncodeSignature(sig)
	if err != nil {
		return fmt.Errorf("hbsig sign: %w", err)
	}
	outputPath := path + ".signature"
	if err := os.WriteFile(outputPath, encoded, 0o644); err != nil {
		return fmt.Errorf("hbsig sign: writing signature: %w", err)
	}
	fmt.Printf("Signature path: %s\n", outputPath)

	return nil
}
