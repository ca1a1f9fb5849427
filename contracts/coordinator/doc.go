/*
Package coordinator contains implementation of the Swarm Coordinator contract.

The contract is the single source of truth for a decentralized
reinforcement-learning swarm: it tracks round/stage progression of the
training protocol, binds on-chain accounts to opaque peer identifiers,
publishes network bootstrap endpoints, tallies per-round votes into bounded
winner/voter leaderboards and accrues per-peer rewards. Off-chain agents only
read and submit; the contract enforces who may submit what and that repeated
submissions of votes (per round and account) and rewards (per round, stage
and peer) never succeed twice.

# Contract notifications

RoleGranted and RoleRevoked notifications. Produced on every role mutation,
including redundant ones.

	RoleGranted / RoleRevoked
	  - name: role
	    type: String
	  - name: account
	    type: Hash160

StageAdvanced notification. Produced on every successful Advance call.

	StageAdvanced
	  - name: round
	    type: Integer
	  - name: stage
	    type: Integer

RoundAdvanced notification. Produced when Advance rolls the round over.

	RoundAdvanced
	  - name: round
	    type: Integer

StageCountSet and StageDurationSet notifications. Produced on configuration
changes.

	StageCountSet
	  - name: count
	    type: Integer
	StageDurationSet
	  - name: blocks
	    type: Integer

PeerRegistered notification. Produced when an account claims a fresh peer
identifier.

	PeerRegistered
	  - name: account
	    type: Hash160
	  - name: peerID
	    type: ByteArray

BootnodesAdded, BootnodeRemoved and BootnodesCleared notifications. Produced
on bootnode directory mutations.

	BootnodesAdded
	  - name: nodes
	    type: Array
	BootnodeRemoved
	  - name: index
	    type: Integer
	BootnodesCleared

VotesSubmitted notification. Produced when a vote set is accepted.

	VotesSubmitted
	  - name: round
	    type: Integer
	  - name: account
	    type: Hash160
	  - name: voterPeerID
	    type: ByteArray
	  - name: choices
	    type: Array

RewardSubmitted and TotalRewardUpdated notifications. Produced together when
a reward submission is accepted; the latter carries the new running total.

	RewardSubmitted
	  - name: round
	    type: Integer
	  - name: stage
	    type: Integer
	  - name: peerID
	    type: ByteArray
	  - name: amount
	    type: Integer
	TotalRewardUpdated
	  - name: peerID
	    type: ByteArray
	  - name: total
	    type: Integer
*/
package coordinator

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'initconfig' -> bool
   one-time initialization guard
 - 'round' -> int
   current round number, starts at 0
 - 'stage' -> int
   current stage within the round, resets to 0 on rollover
 - 'stageCount' -> int
   configured number of stages in a round
 - 'stageDuration' -> int
   minimal blocks between advancements, 0 disables the gate
 - 'lastAdvanceBlock' -> int
   block index of the latest advancement
 - 'r<account><role>' -> 1
   role membership, account is a fixed 20-byte script hash
 - 'p<peer_id>' -> 20-byte script hash
   owning account of the peer identifier
 - 'a<account>' -> std.Serialize([][]byte)
   ordered peer identifier list of the account
 - 'bootnodes' -> std.Serialize([][]byte)
   bootstrap endpoint list, positions unstable across removals
 - 'v<account><round>' -> std.Serialize([][]byte)
   vote set of the account for the round, write-once
 - 'w<peer_id>' -> int
   win tally of the peer
 - 'c<peer_id>' -> int
   vote sets submitted under the voter identity
 - 'winners' / 'voters' -> std.Serialize([][]byte)
   leaderboards, at most 100 entries, descending by counter
 - 's<ID>' -> 1 and 'm<ID>' -> int
   reward submission flag and amount, where ID is the SHA-256 over the
   length-prefixed (round, stage, peer_id) triple
 - 't<peer_id>' -> int
   cumulative reward of the peer, signed

# Access
Mutations are gated either by a role held by the witnessed acting account
(roles, stage machine, bootnodes) or by the peer identity registry (votes,
rewards). Reads are unrestricted and use the read-only storage context.
*/
