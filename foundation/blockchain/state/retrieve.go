package state

import "github.com/ardanlabs/blockledger/foundation/blockchain/genesis"

// RetrieveHostingNode returns the identity of the node.
func (s *State) RetrieveHostingNode() HostingNode {
	return s.hostingNode
}

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}
