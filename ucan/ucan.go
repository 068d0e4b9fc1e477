package ucan

import (
	"github.com/dagucan/dagucan/core/ipld"
	"github.com/dagucan/dagucan/did"
	"github.com/dagucan/dagucan/principal"
)

// Resource is a string that represents the resource a UCAN holder can act
// upon. It MUST have the format `${string}:${string}`.
type Resource = string

// Ability is a string that represents some action a UCAN holder can
// perform. It MUST have the format `${string}/${string}` or `"*"`.
type Ability = string

// Capability represents an ability a UCAN holder can perform on a resource,
// together with any caveats restricting it.
type Capability[Caveats any] interface {
	Can() Ability
	With() Resource
	Nb() Caveats
}

// Principal is a DID object representation with a `did` accessor.
type Principal interface {
	DID() did.DID
}

// Link is an IPLD link to UCAN data.
type Link = ipld.Link

// Version of the UCAN spec used to produce a specific UCAN.
// It MUST have the format `${number}.${number}.${number}`.
type Version = string

// UTCUnixTimestamp is a timestamp in seconds since the Unix epoch.
type UTCUnixTimestamp = int64

// Nonce is an opaque, randomly generated string providing uniqueness.
// See https://github.com/ucan-wg/spec/#324-nonce
type Nonce = string

// Fact is a map of arbitrary facts and proofs of knowledge. The enclosed
// data MUST be self-evident and externally verifiable: hash preimages,
// server challenges, Merkle proofs, dictionary data, etc.
// See https://github.com/ucan-wg/spec/#325-facts
type Fact = map[string]any

// Signer produces UCAN signatures. It is principal.Signer under a name that
// reads naturally at UCAN call sites (ucan.Issue(signer, ...)).
type Signer = principal.Signer

// Verifier authenticates UCAN signatures.
type Verifier = principal.Verifier
