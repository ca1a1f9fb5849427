// Package deploy provides the Swarm Coordinator contract deployment routine.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

// Blockchain groups services provided by a Neo blockchain network that are
// required to deploy the coordinator contract.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to
	// the blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by
	// its address. It returns an error with 'Unknown contract' substring if
	// the contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// Prm groups parameters of Deploy.
type Prm struct {
	// Writes progress of the procedure. Optional.
	Logger *zap.Logger

	// Particular Neo blockchain instance to be used.
	Blockchain Blockchain

	// Account deploying the contract and paying fees. Must be unlocked.
	LocalAccount *wallet.Account

	// Compiled coordinator contract.
	NEF      nef.File
	Manifest manifest.Manifest

	// Account receiving every management role of the coordinator.
	Owner util.Uint160

	// Initial number of stages in a round.
	StageCount int64
}

// Deploy initializes the Swarm Coordinator contract on the given blockchain
// and returns its address. Deploy is idempotent: if the contract deployed by
// the local account already exists on the chain, its address is returned
// without any transaction being sent.
func Deploy(ctx context.Context, prm Prm) (util.Uint160, error) {
	if err := ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	l := prm.Logger
	if l == nil {
		l = zap.NewNop()
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	deployer := prm.LocalAccount.ScriptHash()
	addr := state.CreateContractHash(deployer, prm.NEF.Checksum, prm.Manifest.Name)

	stateOnChain, err := prm.Blockchain.GetContractStateByHash(addr)
	if err == nil {
		l.Info("coordinator contract is already deployed",
			zap.Stringer("address", addr), zap.Int32("id", stateOnChain.ID))
		return addr, nil
	} else if !strings.Contains(err.Error(), "Unknown contract") {
		return util.Uint160{}, fmt.Errorf("read on-chain state of the contract: %w", err)
	}

	l.Info("deploying coordinator contract...",
		zap.Stringer("deployer", deployer), zap.Stringer("address", addr),
		zap.Stringer("owner", prm.Owner), zap.Int64("stage count", prm.StageCount))

	txHash, vub, err := management.New(act).Deploy(&prm.NEF, &prm.Manifest,
		[]any{prm.Owner, prm.StageCount})
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send contract deployment transaction: %w", err)
	}

	l.Info("deployment transaction sent, waiting for persistence...",
		zap.Stringer("tx", txHash), zap.Uint32("vub", vub))

	aer, err := act.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deployment transaction: %w", err)
	}
	if aer.VMState != vmstate.Halt {
		return util.Uint160{}, errors.New("deployment transaction faulted: " + aer.FaultException)
	}

	l.Info("coordinator contract successfully deployed", zap.Stringer("address", addr))

	return addr, nil
}
