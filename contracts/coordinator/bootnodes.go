package coordinator

import (
	"github.com/nihat99/rl-swarm-contracts/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// AddBootnodes appends network bootstrap endpoints to the directory. It can
// be invoked only by a bootnode manager. It produces the BootnodesAdded
// notification.
func AddBootnodes(manager interop.Hash160, nodes []string) {
	ctx := storage.GetContext()
	requireRole(ctx, manager, BootnodeManagerRole)

	list := common.GetList(ctx, bootnodesKey)
	for i := range nodes {
		list = append(list, []byte(nodes[i]))
	}
	common.SetSerialized(ctx, bootnodesKey, list)

	runtime.Notify("BootnodesAdded", nodes)
}

// RemoveBootnode removes the endpoint at the given index by overwriting it
// with the last entry and truncating the list. Indexes are not stable across
// removals. It can be invoked only by a bootnode manager and panics with
// ErrInvalidIndex when the index is out of range. It produces the
// BootnodeRemoved notification.
func RemoveBootnode(manager interop.Hash160, index int) {
	ctx := storage.GetContext()
	requireRole(ctx, manager, BootnodeManagerRole)

	list := common.GetList(ctx, bootnodesKey)
	if index < 0 || index >= len(list) {
		panic(ErrInvalidIndex)
	}

	last := len(list) - 1
	if index != last {
		list[index] = list[last]
	}

	shortened := [][]byte{}
	for i := 0; i < last; i++ {
		shortened = append(shortened, list[i])
	}
	common.SetSerialized(ctx, bootnodesKey, shortened)

	runtime.Notify("BootnodeRemoved", index)
}

// ClearBootnodes resets the directory to empty in one operation. It can be
// invoked only by a bootnode manager. It produces the BootnodesCleared
// notification.
func ClearBootnodes(manager interop.Hash160) {
	ctx := storage.GetContext()
	requireRole(ctx, manager, BootnodeManagerRole)

	common.SetSerialized(ctx, bootnodesKey, [][]byte{})

	runtime.Notify("BootnodesCleared")
}

// Bootnodes returns all registered endpoints.
func Bootnodes() []string {
	ctx := storage.GetReadOnlyContext()

	list := common.GetList(ctx, bootnodesKey)
	result := []string{}
	for i := range list {
		result = append(result, string(list[i]))
	}

	return result
}

// BootnodesCount returns the number of registered endpoints.
func BootnodesCount() int {
	ctx := storage.GetReadOnlyContext()
	return len(common.GetList(ctx, bootnodesKey))
}
