// Command coordinator-dump prints the public state of a deployed Swarm
// Coordinator contract: round/stage progression, bootnode directory,
// leaderboards and reward totals.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"github.com/mr-tron/base58"
	"github.com/nihat99/rl-swarm-contracts/rpc/coordinator"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// leaderboardPreview limits how many leaderboard entries are printed.
const leaderboardPreview = 10

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractAddress := flag.String("contract", "", "LE address of the coordinator contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractAddress == "":
		log.Fatal("missing contract address")
	}

	addr, err := util.Uint160DecodeStringLE(*contractAddress)
	if err != nil {
		log.Fatal(fmt.Errorf("decode contract address: %w", err))
	}

	err = _dump(*neoRPCEndpoint, addr)
	if err != nil {
		log.Fatal(err)
	}
}

func _dump(neoBlockchainRPCEndpoint string, addr util.Uint160) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	reader := coordinator.NewReader(b.invoker, addr)

	version, err := reader.Version()
	if err != nil {
		return fmt.Errorf("get contract version: %w", err)
	}
	round, err := reader.CurrentRound()
	if err != nil {
		return fmt.Errorf("get current round: %w", err)
	}
	stage, err := reader.CurrentStage()
	if err != nil {
		return fmt.Errorf("get current stage: %w", err)
	}
	stageCount, err := reader.StageCount()
	if err != nil {
		return fmt.Errorf("get stage count: %w", err)
	}

	w := os.Stdout
	fmt.Fprintf(w, "contract:    %s (version %s)\n", addr.StringLE(), version)
	fmt.Fprintf(w, "progression: round %s, stage %s of %s\n", round, stage, stageCount)

	bootnodes, err := reader.Bootnodes()
	if err != nil {
		return fmt.Errorf("get bootnodes: %w", err)
	}

	fmt.Fprintf(w, "bootnodes (%d):\n", len(bootnodes))
	for i := range bootnodes {
		fmt.Fprintf(w, "  [%d] %s\n", i, bootnodes[i])
	}

	err = dumpLeaderboard(w, "winners", reader.WinnerLeaderboard, reader.TotalWins)
	if err != nil {
		return err
	}

	return dumpLeaderboard(w, "voters", reader.VoterLeaderboard, reader.VoterVoteCount)
}

func dumpLeaderboard(w *os.File, label string,
	board func(*big.Int, *big.Int) ([][]byte, error),
	counter func([]byte) (*big.Int, error)) error {
	entries, err := board(big.NewInt(0), big.NewInt(leaderboardPreview))
	if err != nil {
		return fmt.Errorf("get %s leaderboard: %w", label, err)
	}

	fmt.Fprintf(w, "top %s:\n", label)
	for i := range entries {
		cnt, err := counter(entries[i])
		if err != nil {
			return fmt.Errorf("get counter of %s entry #%d: %w", label, i, err)
		}

		fmt.Fprintf(w, "  #%d %s: %s\n", i+1, renderPeerID(entries[i]), cnt)
	}

	return nil
}

// renderPeerID returns the identifier as-is when it is printable text (the
// usual base58 multihash form), base58-encoding raw bytes otherwise.
func renderPeerID(id []byte) string {
	for i := range id {
		if id[i] < 0x20 || id[i] > 0x7e {
			return base58.Encode(id)
		}
	}
	return string(id)
}
