package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/georgwiese/hbsig"
	"github.com/georgwiese/hbsig/wots"
)

// wotsD validates a --d flag value, prefixing any error with the flag
// name.
func wotsD(d uint64) (wots.D, error) {
	p, err := wots.NewD(d)
	if err != nil {
		return wots.D{}, fmt.Errorf("invalid --d: %w", err)
	}
	return p, nil
}

// loadPrivateKey reads and validates the private key file at path,
// aggregating every independent structural problem it finds (rather than
// stopping at the first) so a misconfigured key file is diagnosed in one
// pass instead of one fix-and-rerun cycle per field.
func loadPrivateKey(path string) (hbsig.PrivateKey, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return hbsig.PrivateKey{}, fmt.Errorf("hbsig: reading private key %s: %w", path, err)
	}

	privateKey, err := hbsig.DecodePrivateKeyJSON(raw)
	if err != nil {
		return hbsig.PrivateKey{}, fmt.Errorf("hbsig: parsing private key %s: %w", path, err)
	}

	var errs *multierror.Error
	if privateKey.Width <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("width must be positive, got %d", privateKey.Width))
	}
	if privateKey.Depth <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("depth must be positive, got %d", privateKey.Depth))
	}
	if privateKey.SeedHex == "" {
		errs = multierror.Append(errs, fmt.Errorf("seed_hex is empty"))
	}
	if privateKey.PublicKey == "" {
		errs = multierror.Append(errs, fmt.Errorf("public_key is empty"))
	}
	if errs != nil {
		return hbsig.PrivateKey{}, fmt.Errorf("hbsig: private key %s is malformed: %w", path, errs.ErrorOrNil())
	}

	return privateKey, nil
}
