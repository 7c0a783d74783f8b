package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/georgwiese/hbsig"
	"github.com/georgwiese/hbsig/internal/primitives"
)

func newVerifyCmd() *cobra.Command {
	var width, depth int
	var d uint64

	cmd := &cobra.Command{
		Use:   "verify <file> <signature-file> <public-key-hex>",
		Short: "Verify a file's signature against a public key",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := runVerify(args[0], args[1], args[2], width, depth, d)
			if err != nil {
				return err
			}
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 16, "q-indexed branching factor the key was generated with")
	cmd.Flags().IntVar(&depth, "depth", 5, "virtual tree depth the key was generated with")
	cmd.Flags().Uint64Var(&d, "d", 255, "Winternitz compression parameter the key was generated with")
	return cmd
}

func runVerify(filePath, signaturePath, publicKeyHex string, width, depth int, dValue uint64) (bool, error) {
	log.Info().Str("file", filePath).Str("signature", signaturePath).Msg("verifying file")

	dParam, err := wotsD(dValue)
	if err != nil {
		return false, fmt.Errorf("hbsig verify: %w", err)
	}

	publicKey, err := primitives.HashFromHex(publicKeyHex)
	if err != nil {
		return false, fmt.Errorf("hbsig verify: malformed public key: %w", err)
	}

	fileHash, err := hashFile(filePath)
	if err != nil {
		return false, fmt.Errorf("hbsig verify: %w", err)
	}

	sigBytes, err := os.ReadFile(signaturePath)
	if err != nil {
		return false, fmt.Errorf("hbsig verify: reading signature %s: %w", signaturePath, err)
	}
	sig, err := hbsig.DecodeSignature(sigBytes)
	if err != nil {
		return false, fmt.Errorf("hbsig verify: malformed signature: %w", err)
	}

	params := hbsig.Params{Width: width, Depth: depth, D: dParam}

	start := time.Now()
	valid := hbsig.Verify(publicKey, fileHash, sig, params)
	log.Info().Dur("took", time.Since(start)).Msg("verification complete")

	fmt.Printf("File path:      %s\n", filePath)
	fmt.Printf("Signature path: %s\n", signaturePath)
	fmt.Printf("Valid:          %t\n", valid)

	return valid, nil
}
