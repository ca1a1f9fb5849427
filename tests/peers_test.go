package tests

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/nihat99/rl-swarm-contracts/common"
	"github.com/nihat99/rl-swarm-contracts/contracts/coordinator"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// dummyPeerID mimics the identifier format swarm agents derive from their
// libp2p keys.
func dummyPeerID() []byte {
	return []byte("Qm" + base58.Encode(randomBytes(32)))
}

func TestRegisterPeer(t *testing.T) {
	c := newCoordinatorInvoker(t, 3)

	accA := c.NewAccount(t)
	accB := c.NewAccount(t)
	cA := c.WithSigners(accA)
	cB := c.WithSigners(accB)

	// the registering account must sign the transaction
	cB.InvokeFail(t, common.ErrWitnessFailed, "registerPeer", accA.ScriptHash(), []byte("Qm1"))
	cA.InvokeFail(t, "empty peer ID", "registerPeer", accA.ScriptHash(), []byte{})

	h := cA.Invoke(t, stackitem.Null{}, "registerPeer", accA.ScriptHash(), []byte("Qm1"))
	aer := cA.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "PeerRegistered", aer.Events[0].Name)

	// identifier collision, both from another account and from the owner
	cB.InvokeFail(t, coordinator.ErrPeerRegistered, "registerPeer", accB.ScriptHash(), []byte("Qm1"))
	cA.InvokeFail(t, coordinator.ErrPeerRegistered, "registerPeer", accA.ScriptHash(), []byte("Qm1"))

	cB.Invoke(t, stackitem.Null{}, "registerPeer", accB.ScriptHash(), []byte("Qm2"))

	// an account accumulates identifiers, order of registration is kept
	cA.Invoke(t, stackitem.Null{}, "registerPeer", accA.ScriptHash(), []byte("Qm3"))

	s, err := c.TestInvoke(t, "getPeerIDs", []any{accA.ScriptHash(), accB.ScriptHash(), c.CommitteeHash})
	require.NoError(t, err)
	lists, ok := s.Pop().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Equal(t, 3, len(lists))
	requirePeerList(t, lists[0], [][]byte{[]byte("Qm1"), []byte("Qm3")})
	requirePeerList(t, lists[1], [][]byte{[]byte("Qm2")})
	requirePeerList(t, lists[2], [][]byte{})

	requireBytesResult(t, c, [][]byte{
		accA.ScriptHash().BytesBE(),
		accB.ScriptHash().BytesBE(),
		{},
		accA.ScriptHash().BytesBE(),
	}, "getAccounts", []any{[]byte("Qm1"), []byte("Qm2"), []byte("QmUnknown"), []byte("Qm3")})
}

func TestRegisterPeer_GeneratedIDs(t *testing.T) {
	c := newCoordinatorInvoker(t, 3)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	ids := make([][]byte, 3)
	for i := range ids {
		ids[i] = dummyPeerID()
		cAcc.Invoke(t, stackitem.Null{}, "registerPeer", acc.ScriptHash(), ids[i])
	}

	s, err := c.TestInvoke(t, "getPeerIDs", []any{acc.ScriptHash()})
	require.NoError(t, err)
	lists, ok := s.Pop().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Equal(t, 1, len(lists))
	requirePeerList(t, lists[0], ids)
}

func requirePeerList(t *testing.T, item stackitem.Item, expected [][]byte) {
	ids, ok := item.Value().([]stackitem.Item)
	require.True(t, ok)
	require.Equal(t, len(expected), len(ids))
	for i := range ids {
		actual, err := ids[i].TryBytes()
		require.NoError(t, err)
		require.Equal(t, expected[i], actual)
	}
}

// registerPeerFor is shared by the voting and reward suites.
func registerPeerFor(t *testing.T, c *neotest.ContractInvoker, acc neotest.Signer, peerID []byte) *neotest.ContractInvoker {
	cAcc := c.WithSigners(acc)
	cAcc.Invoke(t, stackitem.Null{}, "registerPeer", acc.ScriptHash(), peerID)
	return cAcc
}
