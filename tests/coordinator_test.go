package tests

import (
	"testing"

	"github.com/nihat99/rl-swarm-contracts/common"
	"github.com/nihat99/rl-swarm-contracts/contracts/coordinator"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestCoordinator_Deploy(t *testing.T) {
	c := newCoordinatorInvoker(t, 3)

	c.Invoke(t, int64(0), "currentRound")
	c.Invoke(t, int64(0), "currentStage")
	c.Invoke(t, int64(3), "stageCount")
	c.Invoke(t, int64(0), "stageDuration")

	c.Invoke(t, true, "hasRole", coordinator.OwnerRole, c.CommitteeHash)
	c.Invoke(t, true, "hasRole", coordinator.StageManagerRole, c.CommitteeHash)
	c.Invoke(t, true, "hasRole", coordinator.BootnodeManagerRole, c.CommitteeHash)
}

func TestCoordinator_Version(t *testing.T) {
	c := newCoordinatorInvoker(t, 3)
	c.Invoke(t, int64(common.Version), "version")
}

func TestCoordinator_Roles(t *testing.T) {
	c := newCoordinatorInvoker(t, 3)

	acc := c.NewAccount(t)
	accHash := acc.ScriptHash()
	cAcc := c.WithSigners(acc)

	c.Invoke(t, false, "hasRole", coordinator.StageManagerRole, accHash)

	// only an owner may grant, and the acting account must sign
	cAcc.InvokeFail(t, coordinator.ErrUnauthorized,
		"grantRole", accHash, coordinator.StageManagerRole, accHash)
	cAcc.InvokeFail(t, common.ErrWitnessFailed,
		"grantRole", c.CommitteeHash, coordinator.StageManagerRole, accHash)

	h := c.Invoke(t, stackitem.Null{}, "grantRole", c.CommitteeHash, coordinator.StageManagerRole, accHash)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "RoleGranted", aer.Events[0].Name)

	c.Invoke(t, true, "hasRole", coordinator.StageManagerRole, accHash)

	// redundant grant succeeds and still notifies
	h = c.Invoke(t, stackitem.Null{}, "grantRole", c.CommitteeHash, coordinator.StageManagerRole, accHash)
	aer = c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "RoleGranted", aer.Events[0].Name)

	c.Invoke(t, stackitem.Null{}, "revokeRole", c.CommitteeHash, coordinator.StageManagerRole, accHash)
	c.Invoke(t, false, "hasRole", coordinator.StageManagerRole, accHash)

	// revoking an unheld role is accepted as well
	c.Invoke(t, stackitem.Null{}, "revokeRole", c.CommitteeHash, coordinator.StageManagerRole, accHash)

	// a granted owner may manage roles in turn
	c.Invoke(t, stackitem.Null{}, "grantRole", c.CommitteeHash, coordinator.OwnerRole, accHash)
	cAcc.Invoke(t, stackitem.Null{}, "grantRole", accHash, coordinator.BootnodeManagerRole, accHash)
	c.Invoke(t, true, "hasRole", coordinator.BootnodeManagerRole, accHash)
}

func TestCoordinator_Advance(t *testing.T) {
	c := newCoordinatorInvoker(t, 3)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, coordinator.ErrUnauthorized, "advance", acc.ScriptHash())

	pair := func(round, stage int64) stackitem.Item {
		return stackitem.NewArray([]stackitem.Item{
			stackitem.Make(round), stackitem.Make(stage),
		})
	}

	h := c.Invoke(t, pair(0, 1), "advance", c.CommitteeHash)
	aer := c.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "StageAdvanced", aer.Events[0].Name)

	c.Invoke(t, pair(0, 2), "advance", c.CommitteeHash)

	// third call rolls the round over and additionally notifies RoundAdvanced
	h = c.Invoke(t, pair(1, 0), "advance", c.CommitteeHash)
	aer = c.CheckHalt(t, h)
	require.Equal(t, 2, len(aer.Events))
	require.Equal(t, "StageAdvanced", aer.Events[0].Name)
	require.Equal(t, "RoundAdvanced", aer.Events[1].Name)

	c.Invoke(t, int64(1), "currentRound")
	c.Invoke(t, int64(0), "currentStage")
}

func TestCoordinator_AdvanceSingleStage(t *testing.T) {
	c := newCoordinatorInvoker(t, 1)

	for i := int64(1); i <= 3; i++ {
		expected := stackitem.NewArray([]stackitem.Item{
			stackitem.Make(i), stackitem.Make(0),
		})
		h := c.Invoke(t, expected, "advance", c.CommitteeHash)
		aer := c.CheckHalt(t, h)
		require.Equal(t, 2, len(aer.Events))
		require.Equal(t, "RoundAdvanced", aer.Events[1].Name)
	}
}

func TestCoordinator_AdvanceNoStages(t *testing.T) {
	c := newCoordinatorInvoker(t, 0)
	c.InvokeFail(t, coordinator.ErrNoStages, "advance", c.CommitteeHash)

	c.Invoke(t, stackitem.Null{}, "setStageCount", c.CommitteeHash, int64(2))
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(0), stackitem.Make(1),
	}), "advance", c.CommitteeHash)
}

func TestCoordinator_StageCountShrink(t *testing.T) {
	c := newCoordinatorInvoker(t, 5)

	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(0), stackitem.Make(1),
	}), "advance", c.CommitteeHash)
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(0), stackitem.Make(2),
	}), "advance", c.CommitteeHash)

	// the in-flight stage index is past the new count, so the next advance
	// rolls the round over
	c.Invoke(t, stackitem.Null{}, "setStageCount", c.CommitteeHash, int64(2))
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(1), stackitem.Make(0),
	}), "advance", c.CommitteeHash)
}

func TestCoordinator_StageDuration(t *testing.T) {
	c := newCoordinatorInvoker(t, 3)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.InvokeFail(t, coordinator.ErrUnauthorized, "setStageDuration", acc.ScriptHash(), int64(10))

	c.Invoke(t, stackitem.Null{}, "setStageDuration", c.CommitteeHash, int64(1000))
	c.Invoke(t, int64(1000), "stageDuration")
	c.InvokeFail(t, coordinator.ErrStageNotElapsed, "advance", c.CommitteeHash)

	// every transaction lands in a fresh block, so one-block duration passes
	c.Invoke(t, stackitem.Null{}, "setStageDuration", c.CommitteeHash, int64(1))
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(0), stackitem.Make(1),
	}), "advance", c.CommitteeHash)

	c.Invoke(t, stackitem.Null{}, "setStageDuration", c.CommitteeHash, int64(0))
	c.Invoke(t, stackitem.NewArray([]stackitem.Item{
		stackitem.Make(0), stackitem.Make(2),
	}), "advance", c.CommitteeHash)
}
