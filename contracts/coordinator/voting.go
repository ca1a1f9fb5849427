package coordinator

import (
	"github.com/nihat99/rl-swarm-contracts/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

func voteKey(account interop.Hash160, round int) []byte {
	key := append([]byte{votePrefix}, account...)
	return append(key, convert.ToBytes(round)...)
}

func counterKey(prefix byte, id []byte) []byte {
	return append([]byte{prefix}, id...)
}

// SubmitVotes records the account's vote set for the round and updates both
// leaderboards. The transaction must be signed by the account. Preconditions,
// each with its own error: the round must have started (ErrInvalidRound), the
// account must not have voted in it yet (ErrAlreadyVoted), the choice list
// must not repeat an identifier (ErrInvalidVote) and voterPeerID must be
// registered to the account (ErrUnauthorized). It produces the VotesSubmitted
// notification.
func SubmitVotes(account interop.Hash160, round int, choices [][]byte, voterPeerID []byte) {
	ctx := storage.GetContext()
	common.CheckWitness(account)

	if round < 0 || round > common.GetInt(ctx, roundKey) {
		panic(ErrInvalidRound)
	}
	if storage.Get(ctx, voteKey(account, round)) != nil {
		panic(ErrAlreadyVoted)
	}
	for i := 0; i < len(choices); i++ {
		for j := i + 1; j < len(choices); j++ {
			if common.BytesEqual(choices[i], choices[j]) {
				panic(ErrInvalidVote)
			}
		}
	}
	requirePeerOwner(ctx, account, voterPeerID)

	common.SetSerialized(ctx, voteKey(account, round), choices)

	for i := range choices {
		wins := bumpCounter(ctx, winsPrefix, choices[i])
		promote(ctx, winnerBoardKey, winsPrefix, choices[i], wins)
	}

	cast := bumpCounter(ctx, votesCastPrefix, voterPeerID)
	promote(ctx, voterBoardKey, votesCastPrefix, voterPeerID, cast)

	runtime.Notify("VotesSubmitted", round, account, voterPeerID, choices)
}

func bumpCounter(ctx storage.Context, prefix byte, id []byte) int {
	key := counterKey(prefix, id)
	cnt := common.GetInt(ctx, key) + 1
	storage.Put(ctx, key, cnt)
	return cnt
}

// promote maintains a bounded descending leaderboard after the counter of id
// was raised to cnt. A new entry is appended while there is room, otherwise
// it replaces the tail only if it outcounts it. The entry then bubbles up
// past strictly smaller predecessors. Equal counters never swap, so the
// first key to reach a count keeps ranking above later entrants: the order
// is reproducible from the submission history. The pass is bounded by
// leaderboardCap regardless of how many keys were ever counted.
func promote(ctx storage.Context, boardKey string, prefix byte, id []byte, cnt int) {
	board := common.GetList(ctx, boardKey)

	pos := -1
	for i := range board {
		if common.BytesEqual(board[i], id) {
			pos = i
			break
		}
	}

	if pos < 0 {
		if len(board) < leaderboardCap {
			board = append(board, id)
			pos = len(board) - 1
		} else {
			tail := leaderboardCap - 1
			if common.GetInt(ctx, counterKey(prefix, board[tail])) >= cnt {
				return
			}
			board[tail] = id
			pos = tail
		}
	}

	for pos > 0 && common.GetInt(ctx, counterKey(prefix, board[pos-1])) < cnt {
		board[pos] = board[pos-1]
		board[pos-1] = id
		pos--
	}

	common.SetSerialized(ctx, boardKey, board)
}

func boardSlice(boardKey string, start int, end int) [][]byte {
	if start < 0 || start > end {
		panic(ErrInvalidRange)
	}

	ctx := storage.GetReadOnlyContext()
	board := common.GetList(ctx, boardKey)

	if end > len(board) {
		end = len(board)
	}
	if start > len(board) {
		start = len(board)
	}

	result := [][]byte{}
	for i := start; i < end; i++ {
		result = append(result, board[i])
	}

	return result
}

// TotalWins returns the number of accepted votes naming the peer identifier.
func TotalWins(peerID []byte) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, counterKey(winsPrefix, peerID))
}

// VoterVoteCount returns the number of vote sets submitted under the voter
// identity.
func VoterVoteCount(voterPeerID []byte) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, counterKey(votesCastPrefix, voterPeerID))
}

// WinnerLeaderboard returns the [start, end) slice of the winner board,
// sorted by win count descending. Bounds beyond the list length are clamped,
// start past end panics with ErrInvalidRange.
func WinnerLeaderboard(start int, end int) [][]byte {
	return boardSlice(winnerBoardKey, start, end)
}

// VoterLeaderboard returns the [start, end) slice of the voter board with
// the same bounds handling as WinnerLeaderboard.
func VoterLeaderboard(start int, end int) [][]byte {
	return boardSlice(voterBoardKey, start, end)
}

// VoterVotes returns the vote set cast in the round by the account owning
// the voter identity, empty if there was none.
func VoterVotes(round int, voterPeerID []byte) [][]byte {
	ctx := storage.GetReadOnlyContext()

	raw := storage.Get(ctx, peerKey(voterPeerID))
	if raw == nil {
		return [][]byte{}
	}

	return common.GetList(ctx, voteKey(raw.(interop.Hash160), round))
}
