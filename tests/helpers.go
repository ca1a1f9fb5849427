package tests

import (
	"math/rand"
	"path"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const coordinatorPath = "../contracts/coordinator"

func randomBytes(n int) []byte {
	a := make([]byte, n)
	rand.Read(a) //nolint:staticcheck // SA1019: rand.Read has been deprecated since Go 1.20
	return a
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

func deployCoordinatorContract(t *testing.T, e *neotest.Executor, owner util.Uint160, stageCount int64) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, coordinatorPath,
		path.Join(coordinatorPath, "config.yml"))

	e.DeployContract(t, c, []any{owner, stageCount})
	return c.Hash
}

// newCoordinatorInvoker deploys the coordinator with the committee as the
// initial holder of every role and returns a committee-signed invoker.
func newCoordinatorInvoker(t *testing.T, stageCount int64) *neotest.ContractInvoker {
	e := newExecutor(t)
	h := deployCoordinatorContract(t, e, e.CommitteeHash, stageCount)
	return e.CommitteeInvoker(h)
}

// requireBytesResult invokes a read method and checks that it returns the
// expected list of byte values, ignoring Buffer/ByteString representation.
func requireBytesResult(t *testing.T, c *neotest.ContractInvoker, expected [][]byte, method string, args ...any) {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	items, ok := s.Pop().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Equal(t, len(expected), len(items))

	for i := range items {
		actual, err := items[i].TryBytes()
		require.NoError(t, err)
		require.Equal(t, expected[i], actual)
	}
}

// requireIntsResult invokes a read method and checks that it returns the
// expected list of integers.
func requireIntsResult(t *testing.T, c *neotest.ContractInvoker, expected []int64, method string, args ...any) {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())

	items, ok := s.Pop().Value().([]stackitem.Item)
	require.True(t, ok)
	require.Equal(t, len(expected), len(items))

	for i := range items {
		actual, err := items[i].TryInteger()
		require.NoError(t, err)
		require.Equal(t, expected[i], actual.Int64())
	}
}
