package coordinator

import (
	"github.com/nihat99/rl-swarm-contracts/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

func peerKey(peerID []byte) []byte {
	return append([]byte{peerPrefix}, peerID...)
}

func accountKey(account interop.Hash160) []byte {
	return append([]byte{accountPrefix}, account...)
}

// requirePeerOwner checks that the peer ID is registered to the given
// account. It panics with ErrUnauthorized otherwise.
func requirePeerOwner(ctx storage.Context, account interop.Hash160, peerID []byte) {
	raw := storage.Get(ctx, peerKey(peerID))
	if raw == nil || !common.BytesEqual(raw.(interop.Hash160), account) {
		panic(ErrUnauthorized)
	}
}

// RegisterPeer binds an opaque peer identifier to the account. Registration
// is permissionless but the transaction must be signed by the account. An
// account accumulates identifiers: every call with a fresh identifier
// extends its set. An identifier already bound to any account, the caller
// included, is rejected with ErrPeerRegistered. It produces the
// PeerRegistered notification.
func RegisterPeer(account interop.Hash160, peerID []byte) {
	ctx := storage.GetContext()
	common.CheckWitness(account)

	if len(peerID) == 0 {
		panic("empty peer ID")
	}
	if storage.Get(ctx, peerKey(peerID)) != nil {
		panic(ErrPeerRegistered)
	}

	storage.Put(ctx, peerKey(peerID), account)

	ids := common.GetList(ctx, accountKey(account))
	ids = append(ids, peerID)
	common.SetSerialized(ctx, accountKey(account), ids)

	runtime.Notify("PeerRegistered", account, peerID)
}

// GetPeerIDs returns the peer identifier lists of the given accounts in
// input order. Accounts that never registered produce an empty list.
func GetPeerIDs(accounts []interop.Hash160) [][][]byte {
	ctx := storage.GetReadOnlyContext()

	result := [][][]byte{}
	for i := range accounts {
		result = append(result, common.GetList(ctx, accountKey(accounts[i])))
	}

	return result
}

// GetAccounts returns the owning account of every given peer identifier in
// input order. Unregistered identifiers produce an empty value.
func GetAccounts(peerIDs [][]byte) []interop.Hash160 {
	ctx := storage.GetReadOnlyContext()

	result := []interop.Hash160{}
	for i := range peerIDs {
		raw := storage.Get(ctx, peerKey(peerIDs[i]))
		if raw == nil {
			result = append(result, interop.Hash160([]byte{}))
		} else {
			result = append(result, raw.(interop.Hash160))
		}
	}

	return result
}

// Peers returns an iterator over all registered bindings. Keys are peer
// identifiers, values are owning accounts.
func Peers() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{peerPrefix}, storage.RemovePrefix)
}
