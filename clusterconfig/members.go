package clusterconfig

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net"
	"strings"
)

const LoopbackAddress = "127.0.0.1"

type MemberSource int

const (
	ExplicitIPs MemberSource = iota
	LinkInstances
	LoopbackSingle
)

func (s MemberSource) String() string {
	switch s {
	case ExplicitIPs:
		return "rabbitmq-server.ips"
	case LinkInstances:
		return "rabbitmq-server link"
	case LoopbackSingle:
		return "loopback"
	default:
		return fmt.Sprintf("MemberSource(%d)", int(s))
	}
}

type Node struct {
	Address string
	Octets  [4]byte
	Hash    string
}

// NodeHash is the name every node is known by inside the Erlang cluster.
// Existing deployments depend on the exact digest, so it must stay MD5.
func NodeHash(address string) string {
	sum := md5.Sum([]byte(address))
	return hex.EncodeToString(sum[:])
}

func NewNode(address string) (Node, error) {
	ip := net.ParseIP(address)
	if ip == nil || ip.To4() == nil || strings.Contains(address, ":") {
		return Node{}, InvalidAddressError{Address: address}
	}

	var octets [4]byte
	copy(octets[:], ip.To4())

	return Node{
		Address: address,
		Octets:  octets,
		Hash:    NodeHash(address),
	}, nil
}

func (n Node) ErlangName() string {
	return "rabbit@" + n.Hash
}

func (n Node) ErlangIP() string {
	return fmt.Sprintf("{%d,%d,%d,%d}", n.Octets[0], n.Octets[1], n.Octets[2], n.Octets[3])
}

type Members struct {
	Source MemberSource
	Nodes  []Node
}

func (m Members) Addresses() []string {
	var addresses []string
	for _, node := range m.Nodes {
		addresses = append(addresses, node.Address)
	}
	return addresses
}

// ResolveMembers picks the cluster members: explicit ips win over the link
// instances, and a cluster of one runs standalone on loopback.
func ResolveMembers(ips, linkAddresses []string) (Members, error) {
	var (
		source    MemberSource
		addresses []string
	)

	switch {
	case len(ips) > 0:
		source, addresses = ExplicitIPs, ips
	case len(linkAddresses) > 0:
		source, addresses = LinkInstances, linkAddresses
	default:
		return Members{}, MissingConfigurationError{Property: "rabbitmq-server.ips or rabbitmq-server link instances"}
	}

	nodes := make([]Node, 0, len(addresses))
	for _, address := range addresses {
		node, err := NewNode(address)
		if err != nil {
			return Members{}, err
		}
		nodes = append(nodes, node)
	}

	if len(nodes) == 1 {
		loopback, err := NewNode(LoopbackAddress)
		if err != nil {
			return Members{}, err
		}
		return Members{Source: LoopbackSingle, Nodes: []Node{loopback}}, nil
	}

	return Members{Source: source, Nodes: nodes}, nil
}
