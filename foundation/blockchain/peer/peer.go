// Package peer maintains the set of nodes registered with this node.
package peer

import (
	"sort"
	"sync"
)

// Peer represents information about a node in the network. Two peers are
// the same only when both the id and the host match.
type Peer struct {
	ID   string `json:"id"`   // Address style identifier for the node.
	Host string `json:"host"` // Reachable endpoint, host:port.
}

// New constructs a peer value from its identifier and endpoint.
func New(id string, host string) Peer {
	return Peer{
		ID:   id,
		Host: host,
	}
}

// Match validates if the specified host matches this peer.
func (p Peer) Match(host string) bool {
	return p.Host == host
}

// =============================================================================

// PeerSet represents the data representation to maintain a set of known peers.
type PeerSet struct {
	mu  sync.RWMutex
	set map[Peer]struct{}
}

// NewPeerSet constructs a new info set to manage node peer information.
func NewPeerSet() *PeerSet {
	return &PeerSet{
		set: make(map[Peer]struct{}),
	}
}

// Add adds a new node to the set and reports whether it was absent before.
func (ps *PeerSet) Add(peer Peer) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	_, exists := ps.set[peer]
	if !exists {
		ps.set[peer] = struct{}{}
		return true
	}

	return false
}

// Remove removes a node from the set.
func (ps *PeerSet) Remove(peer Peer) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	delete(ps.set, peer)
}

// Copy returns a list of the known peers ordered by id then host.
func (ps *PeerSet) Copy() []Peer {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	peers := make([]Peer, 0, len(ps.set))
	for peer := range ps.set {
		peers = append(peers, peer)
	}

	sort.Slice(peers, func(i, j int) bool {
		if peers[i].ID != peers[j].ID {
			return peers[i].ID < peers[j].ID
		}
		return peers[i].Host < peers[j].Host
	})

	return peers
}
