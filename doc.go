// Package hbsig implements a stateless hash-based digital signature
// scheme, following Boneh & Shoup chapter 14: a keypair derived from a
// single 256-bit seed can sign arbitrarily many 256-bit message digests
// without retaining any state between signings, and its security reduces
// only to the collision- and preimage-resistance of SHA-256.
//
// The construction is layered:
//
//   - wots: a Winternitz one-time signature built from hash chains.
//   - qots: q independent W-OTS instances bundled under one Merkle root,
//     allowing up to q signatures per root.
//   - hbsig (this package): q-indexed instances arranged into a virtual
//     tree of depth Depth and branching Width; a signature is a chain of
//     q-indexed signatures from the root to a pseudo-randomly chosen
//     leaf.
//
// This is a standalone construction, not an interoperable standard: it
// does not target NIST SLH-DSA/XMSS/LMS bit-compatibility.
package hbsig
