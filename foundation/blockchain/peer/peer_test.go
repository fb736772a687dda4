package peer_test

import (
	"testing"

	"github.com/luxchain/ledger/foundation/blockchain/peer"
)

func Test_CRUD(t *testing.T) {
	type table struct {
		name   string
		peers  []peer.Peer
		unique int
	}

	tt := []table{
		{
			name:   "basic",
			peers:  []peer.Peer{{ID: "a", Host: "host1"}, {ID: "b", Host: "host2"}, {ID: "c", Host: "host3"}},
			unique: 3,
		},
		{
			name:   "duplicates",
			peers:  []peer.Peer{{ID: "a", Host: "host1"}, {ID: "a", Host: "host1"}, {ID: "b", Host: "host1"}},
			unique: 2,
		},
	}

	for _, tst := range tt {
		f := func(t *testing.T) {
			ps := peer.NewPeerSet()

			seen := make(map[peer.Peer]bool)
			for _, p := range tst.peers {
				added := ps.Add(p)
				if added == seen[p] {
					t.Fatalf("Test %s:\tShould report %v when adding peer %v.", tst.name, !seen[p], p)
				}
				seen[p] = true
			}

			peers := ps.Copy()
			if len(peers) != tst.unique {
				t.Logf("Test %s:\tgot: %d", tst.name, len(peers))
				t.Logf("Test %s:\texp: %d", tst.name, tst.unique)
				t.Fatalf("Test %s:\tShould get back the right peers.", tst.name)
			}

			for i := 1; i < len(peers); i++ {
				prev, cur := peers[i-1], peers[i]
				if prev.ID > cur.ID || (prev.ID == cur.ID && prev.Host > cur.Host) {
					t.Fatalf("Test %s:\tShould get back peers ordered by id then host.", tst.name)
				}
			}

			ps.Remove(tst.peers[0])
			if len(ps.Copy()) != tst.unique-1 {
				t.Fatalf("Test %s:\tShould be able to remove a peer.", tst.name)
			}
		}

		t.Run(tst.name, f)
	}
}

func Test_Match(t *testing.T) {
	p := peer.New("node-a", "localhost:9080")

	if !p.Match("localhost:9080") {
		t.Fatal("Should match the peer's own host.")
	}

	if p.Match("localhost:9180") {
		t.Fatal("Should not match a different host.")
	}
}
