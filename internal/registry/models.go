package registry

import id "warden/pkg/domain"

// Network is the closed set of group networks.
type Network string

const (
	// NetworkNS is a verification-only network.
	NetworkNS Network = "NS"
	// NetworkMK is a verification-only network.
	NetworkMK Network = "MK"
	// NetworkPARNI is the gated network.
	NetworkPARNI Network = "PARNI"
	// NetworkUnknown marks a stored tag outside the known set.
	NetworkUnknown Network = "UNKNOWN"
)

// VerificationNetworks are consulted, in order, when checking eligibility
// for the gated network.
var VerificationNetworks = []Network{NetworkNS, NetworkMK}

// ParseNetwork maps a stored tag to a Network. Unrecognized tags become
// NetworkUnknown.
func ParseNetwork(tag string) Network {
	switch Network(tag) {
	case NetworkNS:
		return NetworkNS
	case NetworkMK:
		return NetworkMK
	case NetworkPARNI:
		return NetworkPARNI
	default:
		return NetworkUnknown
	}
}

func (n Network) String() string { return string(n) }

// IsVerification reports whether join requests to groups in n are left to
// human moderators while membership in n counts toward eligibility.
func (n Network) IsVerification() bool {
	return n == NetworkNS || n == NetworkMK
}

// IsGated reports whether join requests to groups in n are adjudicated.
func (n Network) IsGated() bool {
	return n == NetworkPARNI
}

// Group is a managed chat group. Network is fixed once seeded.
type Group struct {
	ID         id.GroupID
	Network    Network
	Label      string
	RegionCode *int
	// Legacy marks groups carried over from the first deployment.
	Legacy bool
}
