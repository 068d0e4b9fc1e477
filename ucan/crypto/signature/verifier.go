package signature

import "github.com/dagucan/dagucan/did"

// Verifier is the minimal capability signature.View.Verify needs: enough to
// check a message against a signature. principal.Verifier embeds this same
// shape plus Code/Encode/Raw, and satisfies this interface directly.
type Verifier interface {
	DID() did.DID
	Verify(msg []byte, sig Signature) bool
}
