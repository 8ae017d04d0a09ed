package valueobjects

import "fmt"

// SignerType identifies who attested to a completed inspection. Multiple
// sign-offs per inspection are allowed, with no uniqueness per signer type.
type SignerType string

const (
	SignerSupervisor SignerType = "supervisor"
	SignerClient     SignerType = "client"
)

var validSignerTypes = map[SignerType]bool{
	SignerSupervisor: true,
	SignerClient:     true,
}

func (s SignerType) String() string {
	return string(s)
}

func (s SignerType) IsValid() bool {
	return validSignerTypes[s]
}

func NewSignerType(s string) (SignerType, error) {
	signerType := SignerType(s)
	if !signerType.IsValid() {
		return "", fmt.Errorf("invalid signer type: %s", s)
	}
	return signerType, nil
}
