package models

// Identity is the logged-in user as the terminal client sees it.
type Identity struct {
	Wallet string
	Name   string
	Role   Role
}

// Registration is what the client shows once an account was created and
// saved to the local vault.
type Registration struct {
	Address  string
	Mnemonic string
	Message  string
}

// IssuedCredential is the client-side outcome of an issuance.
type IssuedCredential struct {
	Hash string
	CID  string
}

// VerifyResult is the outcome of checking a document against the ledger.
type VerifyResult struct {
	// Hash is the content hash computed locally from the document.
	Hash string

	Valid      bool
	Revoked    bool
	Credential *Credential
}
