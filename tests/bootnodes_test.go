package tests

import (
	"testing"

	"github.com/nihat99/rl-swarm-contracts/contracts/coordinator"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestBootnodes(t *testing.T) {
	c := newCoordinatorInvoker(t, 3)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, coordinator.ErrUnauthorized, "addBootnodes",
		acc.ScriptHash(), []any{"/dns4/node0/tcp/4001"})

	nodes := []any{
		"/dns4/node0/tcp/4001",
		"/dns4/node1/tcp/4001",
		"/dns4/node2/tcp/4001",
	}
	h := c.Invoke(t, stackitem.Null{}, "addBootnodes", c.CommitteeHash, nodes)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "BootnodesAdded", aer.Events[0].Name)

	c.Invoke(t, int64(3), "bootnodesCount")
	requireBytesResult(t, c, [][]byte{
		[]byte("/dns4/node0/tcp/4001"),
		[]byte("/dns4/node1/tcp/4001"),
		[]byte("/dns4/node2/tcp/4001"),
	}, "bootnodes")

	cAcc.InvokeFail(t, coordinator.ErrUnauthorized, "removeBootnode", acc.ScriptHash(), int64(0))
	c.InvokeFail(t, coordinator.ErrInvalidIndex, "removeBootnode", c.CommitteeHash, int64(3))

	// swap-delete: the last entry takes the freed slot
	c.Invoke(t, stackitem.Null{}, "removeBootnode", c.CommitteeHash, int64(0))
	c.Invoke(t, int64(2), "bootnodesCount")
	requireBytesResult(t, c, [][]byte{
		[]byte("/dns4/node2/tcp/4001"),
		[]byte("/dns4/node1/tcp/4001"),
	}, "bootnodes")

	// removing the last entry is a plain truncation
	c.Invoke(t, stackitem.Null{}, "removeBootnode", c.CommitteeHash, int64(1))
	requireBytesResult(t, c, [][]byte{
		[]byte("/dns4/node2/tcp/4001"),
	}, "bootnodes")

	cAcc.InvokeFail(t, coordinator.ErrUnauthorized, "clearBootnodes", acc.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "clearBootnodes", c.CommitteeHash)
	c.Invoke(t, int64(0), "bootnodesCount")
	requireBytesResult(t, c, [][]byte{}, "bootnodes")
}
