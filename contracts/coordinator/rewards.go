package coordinator

import (
	"github.com/nihat99/rl-swarm-contracts/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

func rewardID(round int, stage int, peerID []byte) []byte {
	return common.CompositeID([][]byte{convert.ToBytes(round), convert.ToBytes(stage), peerID})
}

func submittedKey(id []byte) []byte {
	return append([]byte{submittedPrefix}, id...)
}

func amountKey(id []byte) []byte {
	return append([]byte{amountPrefix}, id...)
}

func totalKey(peerID []byte) []byte {
	return append([]byte{totalPrefix}, peerID...)
}

// SubmitReward records a signed reward amount for the (round, stage, peerID)
// key and adds it to the peer's running total. The transaction must be
// signed by the account owning the peer identity. Exactly one submission per
// key is accepted (ErrRewardSubmitted on repeats); unlike voting, any
// started-or-not round is accepted, which allows retroactive settlement. The
// amount may be negative. It produces the RewardSubmitted and
// TotalRewardUpdated notifications.
func SubmitReward(account interop.Hash160, round int, stage int, amount int, peerID []byte) {
	ctx := storage.GetContext()
	common.CheckWitness(account)

	if round < 0 || stage < 0 {
		panic(ErrInvalidRound)
	}
	requirePeerOwner(ctx, account, peerID)

	id := rewardID(round, stage, peerID)
	if storage.Get(ctx, submittedKey(id)) != nil {
		panic(ErrRewardSubmitted)
	}

	storage.Put(ctx, submittedKey(id), 1)
	storage.Put(ctx, amountKey(id), amount)

	total := common.GetInt(ctx, totalKey(peerID)) + amount
	storage.Put(ctx, totalKey(peerID), total)

	runtime.Notify("RewardSubmitted", round, stage, peerID, amount)
	runtime.Notify("TotalRewardUpdated", peerID, total)
}

// RoundStageReward returns, in input order, the sum of amounts stored for
// (round, stage) across each account's registered peer identifiers. Accounts
// without identifiers or submissions produce zero.
func RoundStageReward(round int, stage int, accounts []interop.Hash160) []int {
	ctx := storage.GetReadOnlyContext()

	result := []int{}
	for i := range accounts {
		ids := common.GetList(ctx, accountKey(accounts[i]))
		sum := 0
		for j := range ids {
			sum += common.GetInt(ctx, amountKey(rewardID(round, stage, ids[j])))
		}
		result = append(result, sum)
	}

	return result
}

// TotalRewards returns the cumulative reward of every given peer identifier
// in input order, zero for identifiers that never received a submission.
func TotalRewards(peerIDs [][]byte) []int {
	ctx := storage.GetReadOnlyContext()

	result := []int{}
	for i := range peerIDs {
		result = append(result, common.GetInt(ctx, totalKey(peerIDs[i])))
	}

	return result
}
