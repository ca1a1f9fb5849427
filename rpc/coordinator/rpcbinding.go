// Package coordinator contains RPC wrappers for Swarm Coordinator contract.
package coordinator

import (
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash    util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash  util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// Bootnodes invokes `bootnodes` method of contract.
func (c *ContractReader) Bootnodes() ([]string, error) {
	return unwrap.ArrayOfUTF8Strings(c.invoker.Call(c.hash, "bootnodes"))
}

// BootnodesCount invokes `bootnodesCount` method of contract.
func (c *ContractReader) BootnodesCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "bootnodesCount"))
}

// CurrentRound invokes `currentRound` method of contract.
func (c *ContractReader) CurrentRound() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "currentRound"))
}

// CurrentStage invokes `currentStage` method of contract.
func (c *ContractReader) CurrentStage() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "currentStage"))
}

// GetAccounts invokes `getAccounts` method of contract.
func (c *ContractReader) GetAccounts(peerIDs [][]byte) ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "getAccounts", peerIDs))
}

// GetPeerIDs invokes `getPeerIDs` method of contract.
func (c *ContractReader) GetPeerIDs(accounts []util.Uint160) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.Call(c.hash, "getPeerIDs", accounts))
}

// HasRole invokes `hasRole` method of contract.
func (c *ContractReader) HasRole(role string, account util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasRole", role, account))
}

// LastAdvanceBlock invokes `lastAdvanceBlock` method of contract.
func (c *ContractReader) LastAdvanceBlock() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "lastAdvanceBlock"))
}

// Peers invokes `peers` method of contract.
func (c *ContractReader) Peers() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "peers"))
}

// PeersExpanded is similar to Peers (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) PeersExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "peers", _numOfIteratorItems))
}

// RoundStageReward invokes `roundStageReward` method of contract.
func (c *ContractReader) RoundStageReward(round *big.Int, stage *big.Int, accounts []util.Uint160) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.Call(c.hash, "roundStageReward", round, stage, accounts))
}

// StageCount invokes `stageCount` method of contract.
func (c *ContractReader) StageCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "stageCount"))
}

// StageDuration invokes `stageDuration` method of contract.
func (c *ContractReader) StageDuration() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "stageDuration"))
}

// TotalRewards invokes `totalRewards` method of contract.
func (c *ContractReader) TotalRewards(peerIDs [][]byte) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.Call(c.hash, "totalRewards", peerIDs))
}

// TotalWins invokes `totalWins` method of contract.
func (c *ContractReader) TotalWins(peerID []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "totalWins", peerID))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// VoterLeaderboard invokes `voterLeaderboard` method of contract.
func (c *ContractReader) VoterLeaderboard(start *big.Int, end *big.Int) ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "voterLeaderboard", start, end))
}

// VoterVoteCount invokes `voterVoteCount` method of contract.
func (c *ContractReader) VoterVoteCount(voterPeerID []byte) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "voterVoteCount", voterPeerID))
}

// VoterVotes invokes `voterVotes` method of contract.
func (c *ContractReader) VoterVotes(round *big.Int, voterPeerID []byte) ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "voterVotes", round, voterPeerID))
}

// WinnerLeaderboard invokes `winnerLeaderboard` method of contract.
func (c *ContractReader) WinnerLeaderboard(start *big.Int, end *big.Int) ([][]byte, error) {
	return unwrap.ArrayOfBytes(c.invoker.Call(c.hash, "winnerLeaderboard", start, end))
}

// AddBootnodes creates a transaction invoking `addBootnodes` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddBootnodes(manager util.Uint160, nodes []string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addBootnodes", manager, nodes)
}

// AddBootnodesTransaction creates a transaction invoking `addBootnodes` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddBootnodesTransaction(manager util.Uint160, nodes []string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addBootnodes", manager, nodes)
}

// AddBootnodesUnsigned creates a transaction invoking `addBootnodes` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddBootnodesUnsigned(manager util.Uint160, nodes []string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addBootnodes", nil, manager, nodes)
}

// Advance creates a transaction invoking `advance` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Advance(manager util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "advance", manager)
}

// AdvanceTransaction creates a transaction invoking `advance` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AdvanceTransaction(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "advance", manager)
}

// AdvanceUnsigned creates a transaction invoking `advance` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AdvanceUnsigned(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "advance", nil, manager)
}

// ClearBootnodes creates a transaction invoking `clearBootnodes` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ClearBootnodes(manager util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "clearBootnodes", manager)
}

// ClearBootnodesTransaction creates a transaction invoking `clearBootnodes` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ClearBootnodesTransaction(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "clearBootnodes", manager)
}

// ClearBootnodesUnsigned creates a transaction invoking `clearBootnodes` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ClearBootnodesUnsigned(manager util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "clearBootnodes", nil, manager)
}

// GrantRole creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) GrantRole(owner util.Uint160, role string, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "grantRole", owner, role, account)
}

// GrantRoleTransaction creates a transaction invoking `grantRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) GrantRoleTransaction(owner util.Uint160, role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "grantRole", owner, role, account)
}

// GrantRoleUnsigned creates a transaction invoking `grantRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) GrantRoleUnsigned(owner util.Uint160, role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "grantRole", nil, owner, role, account)
}

// RegisterPeer creates a transaction invoking `registerPeer` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RegisterPeer(account util.Uint160, peerID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "registerPeer", account, peerID)
}

// RegisterPeerTransaction creates a transaction invoking `registerPeer` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterPeerTransaction(account util.Uint160, peerID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "registerPeer", account, peerID)
}

// RegisterPeerUnsigned creates a transaction invoking `registerPeer` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterPeerUnsigned(account util.Uint160, peerID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "registerPeer", nil, account, peerID)
}

// RemoveBootnode creates a transaction invoking `removeBootnode` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RemoveBootnode(manager util.Uint160, index *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "removeBootnode", manager, index)
}

// RemoveBootnodeTransaction creates a transaction invoking `removeBootnode` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RemoveBootnodeTransaction(manager util.Uint160, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "removeBootnode", manager, index)
}

// RemoveBootnodeUnsigned creates a transaction invoking `removeBootnode` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RemoveBootnodeUnsigned(manager util.Uint160, index *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "removeBootnode", nil, manager, index)
}

// RevokeRole creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) RevokeRole(owner util.Uint160, role string, account util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "revokeRole", owner, role, account)
}

// RevokeRoleTransaction creates a transaction invoking `revokeRole` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RevokeRoleTransaction(owner util.Uint160, role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "revokeRole", owner, role, account)
}

// RevokeRoleUnsigned creates a transaction invoking `revokeRole` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RevokeRoleUnsigned(owner util.Uint160, role string, account util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "revokeRole", nil, owner, role, account)
}

// SetStageCount creates a transaction invoking `setStageCount` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetStageCount(owner util.Uint160, count *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setStageCount", owner, count)
}

// SetStageCountTransaction creates a transaction invoking `setStageCount` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetStageCountTransaction(owner util.Uint160, count *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setStageCount", owner, count)
}

// SetStageCountUnsigned creates a transaction invoking `setStageCount` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetStageCountUnsigned(owner util.Uint160, count *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setStageCount", nil, owner, count)
}

// SetStageDuration creates a transaction invoking `setStageDuration` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetStageDuration(owner util.Uint160, blocks *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setStageDuration", owner, blocks)
}

// SetStageDurationTransaction creates a transaction invoking `setStageDuration` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetStageDurationTransaction(owner util.Uint160, blocks *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setStageDuration", owner, blocks)
}

// SetStageDurationUnsigned creates a transaction invoking `setStageDuration` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetStageDurationUnsigned(owner util.Uint160, blocks *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setStageDuration", nil, owner, blocks)
}

// SubmitReward creates a transaction invoking `submitReward` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitReward(account util.Uint160, round *big.Int, stage *big.Int, amount *big.Int, peerID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitReward", account, round, stage, amount, peerID)
}

// SubmitRewardTransaction creates a transaction invoking `submitReward` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitRewardTransaction(account util.Uint160, round *big.Int, stage *big.Int, amount *big.Int, peerID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitReward", account, round, stage, amount, peerID)
}

// SubmitRewardUnsigned creates a transaction invoking `submitReward` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitRewardUnsigned(account util.Uint160, round *big.Int, stage *big.Int, amount *big.Int, peerID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitReward", nil, account, round, stage, amount, peerID)
}

// SubmitVotes creates a transaction invoking `submitVotes` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SubmitVotes(account util.Uint160, round *big.Int, choices [][]byte, voterPeerID []byte) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "submitVotes", account, round, choices, voterPeerID)
}

// SubmitVotesTransaction creates a transaction invoking `submitVotes` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SubmitVotesTransaction(account util.Uint160, round *big.Int, choices [][]byte, voterPeerID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "submitVotes", account, round, choices, voterPeerID)
}

// SubmitVotesUnsigned creates a transaction invoking `submitVotes` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SubmitVotesUnsigned(account util.Uint160, round *big.Int, choices [][]byte, voterPeerID []byte) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "submitVotes", nil, account, round, choices, voterPeerID)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}
