package coordinator

import (
	"github.com/nihat99/rl-swarm-contracts/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/ledger"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Role tags gating mutating methods of the contract. An account may hold any
// number of roles, a role may be held by any number of accounts.
const (
	// OwnerRole allows managing role assignments and stage configuration.
	OwnerRole = "owner"
	// StageManagerRole allows advancing the round/stage machine.
	StageManagerRole = "stageManager"
	// BootnodeManagerRole allows mutating the bootnode directory.
	BootnodeManagerRole = "bootnodeManager"
)

const (
	configuredKey       = "initconfig"
	roundKey            = "round"
	stageKey            = "stage"
	stageCountKey       = "stageCount"
	stageDurationKey    = "stageDuration"
	lastAdvanceBlockKey = "lastAdvanceBlock"

	winnerBoardKey = "winners"
	voterBoardKey  = "voters"
	bootnodesKey   = "bootnodes"

	rolePrefix      = 'r'
	peerPrefix      = 'p'
	accountPrefix   = 'a'
	votePrefix      = 'v'
	winsPrefix      = 'w'
	votesCastPrefix = 'c'
	submittedPrefix = 's'
	amountPrefix    = 'm'
	totalPrefix     = 't'
)

// leaderboardCap limits both leaderboards to the top 100 entries.
const leaderboardCap = 100

const (
	// ErrUnauthorized is thrown when the acting account lacks the role or
	// peer identity required by the method.
	ErrUnauthorized = "unauthorized"
	// ErrNoStages is thrown by Advance when the stage count is zero.
	ErrNoStages = "no stages configured"
	// ErrStageNotElapsed is thrown by Advance when the configured stage
	// duration has not passed since the previous advancement.
	ErrStageNotElapsed = "stage duration not elapsed"
	// ErrInvalidIndex is thrown by RemoveBootnode on an out-of-range index.
	ErrInvalidIndex = "invalid bootnode index"
	// ErrInvalidRound is thrown by SubmitVotes for a round that has not
	// started yet.
	ErrInvalidRound = "invalid round number"
	// ErrAlreadyVoted is thrown by SubmitVotes on a repeated submission for
	// the same round from the same account.
	ErrAlreadyVoted = "already voted in this round"
	// ErrInvalidVote is thrown by SubmitVotes when the choice list repeats
	// a peer ID.
	ErrInvalidVote = "duplicate peer ID in vote list"
	// ErrPeerRegistered is thrown by RegisterPeer on an identifier collision.
	ErrPeerRegistered = "peer ID already registered"
	// ErrRewardSubmitted is thrown by SubmitReward on a repeated submission
	// for the same (round, stage, peer ID) key.
	ErrRewardSubmitted = "reward already submitted"
	// ErrInvalidRange is thrown by leaderboard reads when start exceeds end.
	ErrInvalidRange = "invalid leaderboard range"
)

// _deploy sets up the initial state of the coordinator: the deploying
// committee passes the account receiving all management roles and the number
// of stages in a round. Rounds start at (0, 0).
// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)
		common.CheckVersion(version)
		return
	}

	if storage.Get(ctx, configuredKey) != nil {
		panic("contract is already initialized")
	}

	var args = data.(struct {
		owner      interop.Hash160
		stageCount int
	})

	if len(args.owner) != interop.Hash160Len {
		panic("incorrect owner account")
	}
	if args.stageCount < 0 {
		panic("negative stage count")
	}

	storage.Put(ctx, roleKey(args.owner, OwnerRole), 1)
	storage.Put(ctx, roleKey(args.owner, StageManagerRole), 1)
	storage.Put(ctx, roleKey(args.owner, BootnodeManagerRole), 1)

	storage.Put(ctx, roundKey, 0)
	storage.Put(ctx, stageKey, 0)
	storage.Put(ctx, stageCountKey, args.stageCount)
	storage.Put(ctx, stageDurationKey, 0)
	storage.Put(ctx, lastAdvanceBlockKey, ledger.CurrentIndex())
	storage.Put(ctx, configuredKey, true)

	runtime.Log("swarm coordinator contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("swarm coordinator contract updated")
}

func roleKey(account interop.Hash160, role string) []byte {
	key := append([]byte{rolePrefix}, account...)
	return append(key, role...)
}

// requireRole checks that the acting account signed the transaction and
// currently holds the role. Role checks precede every state mutation.
func requireRole(ctx storage.Context, account interop.Hash160, role string) {
	common.CheckWitness(account)
	if storage.Get(ctx, roleKey(account, role)) == nil {
		panic(ErrUnauthorized)
	}
}

// GrantRole assigns the role to the account. It can be invoked only by an
// owner. Granting an already held role succeeds and still produces the
// RoleGranted notification.
func GrantRole(owner interop.Hash160, role string, account interop.Hash160) {
	ctx := storage.GetContext()
	requireRole(ctx, owner, OwnerRole)

	storage.Put(ctx, roleKey(account, role), 1)
	runtime.Notify("RoleGranted", role, account)
}

// RevokeRole removes the role from the account. It can be invoked only by an
// owner. Revoking an unheld role succeeds and still produces the RoleRevoked
// notification.
func RevokeRole(owner interop.Hash160, role string, account interop.Hash160) {
	ctx := storage.GetContext()
	requireRole(ctx, owner, OwnerRole)

	storage.Delete(ctx, roleKey(account, role))
	runtime.Notify("RoleRevoked", role, account)
}

// HasRole returns true if the account currently holds the role.
func HasRole(role string, account interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, roleKey(account, role)) != nil
}

// SetStageCount changes the number of stages in a round. It can be invoked
// only by an owner. The change applies prospectively: an in-flight stage
// index beyond the new count rolls the round over on the next Advance.
func SetStageCount(owner interop.Hash160, count int) {
	ctx := storage.GetContext()
	requireRole(ctx, owner, OwnerRole)

	if count < 0 {
		panic("negative stage count")
	}

	storage.Put(ctx, stageCountKey, count)
	runtime.Notify("StageCountSet", count)
}

// SetStageDuration changes the minimal number of blocks between two
// advancements. It can be invoked only by an owner. Zero (the default)
// disables the gate and makes Advance unconditional.
func SetStageDuration(owner interop.Hash160, blocks int) {
	ctx := storage.GetContext()
	requireRole(ctx, owner, OwnerRole)

	if blocks < 0 {
		panic("negative stage duration")
	}

	storage.Put(ctx, stageDurationKey, blocks)
	runtime.Notify("StageDurationSet", blocks)
}

// Advance moves the protocol one stage forward, rolling the round over after
// the last stage. It can be invoked only by a stage manager. It produces the
// StageAdvanced notification on every call and additionally RoundAdvanced
// when the round increments. Returns the resulting [round, stage] pair.
func Advance(manager interop.Hash160) []int {
	ctx := storage.GetContext()
	requireRole(ctx, manager, StageManagerRole)

	count := common.GetInt(ctx, stageCountKey)
	if count == 0 {
		panic(ErrNoStages)
	}

	duration := common.GetInt(ctx, stageDurationKey)
	if duration > 0 {
		last := common.GetInt(ctx, lastAdvanceBlockKey)
		if ledger.CurrentIndex()-last < duration {
			panic(ErrStageNotElapsed)
		}
	}

	round := common.GetInt(ctx, roundKey)
	stage := common.GetInt(ctx, stageKey)
	if stage+1 < count {
		stage++
	} else {
		round++
		stage = 0
	}

	storage.Put(ctx, roundKey, round)
	storage.Put(ctx, stageKey, stage)
	storage.Put(ctx, lastAdvanceBlockKey, ledger.CurrentIndex())

	runtime.Notify("StageAdvanced", round, stage)
	if stage == 0 {
		runtime.Notify("RoundAdvanced", round)
	}

	return []int{round, stage}
}

// CurrentRound returns the current round number.
func CurrentRound() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, roundKey)
}

// CurrentStage returns the current stage number within the round.
func CurrentStage() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, stageKey)
}

// StageCount returns the configured number of stages in a round.
func StageCount() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, stageCountKey)
}

// StageDuration returns the minimal number of blocks between advancements,
// zero if the gate is disabled.
func StageDuration() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, stageDurationKey)
}

// LastAdvanceBlock returns the block index of the latest successful
// advancement (the deployment block if there was none).
func LastAdvanceBlock() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, lastAdvanceBlockKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}
