package main

import (
	"crypto/rand"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/georgwiese/hbsig"
	"github.com/georgwiese/hbsig/internal/primitives"
	"github.com/georgwiese/hbsig/wots"
)

func newKeygenCmd() *cobra.Command {
	var width, depth int
	var d uint64

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new private key and print its public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeygen(width, depth, d)
		},
	}
	cmd.Flags().IntVar(&width, "width", 16, "q-indexed branching factor (must be a power of two)")
	cmd.Flags().IntVar(&depth, "depth", 5, "virtual tree depth")
	cmd.Flags().Uint64Var(&d, "d", 255, "Winternitz compression parameter (one of 1, 3, 15, 255)")
	return cmd
}

func runKeygen(width, depth int, dValue uint64) error {
	log.Info().Int("width", width).Int("depth", depth).Uint64("d", dValue).Msg("generating key")

	dParam, err := wots.NewD(dValue)
	if err != nil {
		return fmt.Errorf("hbsig keygen: %w", err)
	}

	var seed primitives.Hash
	if _, err := rand.Read(seed[:]); err != nil {
		return fmt.Errorf("hbsig keygen: reading random seed: %w", err)
	}

	start := time.Now()
	scheme, err := hbsig.NewFromSeed(seed, hbsig.Params{Width: width, Depth: depth, D: dParam})
	if err != nil {
		return fmt.Errorf("hbsig keygen: %w", err)
	}
	log.Info().Dur("took", time.Since(start)).Msg("key generation complete")

	privateKey := hbsig.MarshalPrivateKey(seed, scheme)
	privateKeyJSON, err := privateKey.EncodeJSON()
	if err != nil {
		return fmt.Errorf("hbsig keygen: %w", err)
	}
	if err := os.WriteFile(defaultPrivateKeyPath, privateKeyJSON, 0o600); err != nil {
		return fmt.Errorf("hbsig keygen: writing private key: %w", err)
	}

	fmt.Printf("Public key:       %s\n", primitives.HashToHex(scheme.PublicKey()))
	fmt.Printf("Private key path: %s\n", defaultPrivateKeyPath)

	// Birthday bound: the scheme is safe for well under sqrt(width^depth)
	// signings under one key (spec §4.7's "Birthday bound" note).
	bound := math.Pow(float64(width), float64(depth)/2.0)
	fmt.Printf("\nRemember to rotate this key well before signing sqrt(width^depth) "+
		"messages, which in your case is about %.2e.\n", bound)

	return nil
}
