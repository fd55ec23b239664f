package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcspirits/spirits-api/internal/config"
	"github.com/arcspirits/spirits-api/internal/engine/shopsim"
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
)

var (
	simSeed         uint64
	simPlayers      int
	simShopSize     int
	simStages       int
	simIterations   int
	simPurchaseRate float64
	simCopiesSpec   string
	simRarityFile   string
	simShowProgress bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a shop simulation locally",
	Long: `Run a Monte-Carlo shop simulation without a server or redis and print
the expected per-stage distribution as JSON.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&simSeed, "seed", 0, "RNG seed, 0 uses a random source")
	simulateCmd.Flags().IntVar(&simPlayers, "players", 4, "number of players")
	simulateCmd.Flags().IntVar(&simShopSize, "shop-size", 5, "shop slots refilled each stage")
	simulateCmd.Flags().IntVar(&simStages, "stages", 3, "stages to simulate")
	simulateCmd.Flags().IntVar(&simIterations, "iterations", shopsim.DefaultIterations, "Monte-Carlo iterations")
	simulateCmd.Flags().Float64Var(&simPurchaseRate, "purchase-rate", shopsim.DefaultPurchaseSuccessRate, "chance a planned purchase succeeds")
	simulateCmd.Flags().StringVar(&simCopiesSpec, "copies", "", "pool sizes as rarity=count pairs, e.g. common=8,rare=6")
	simulateCmd.Flags().StringVar(&simRarityFile, "rarity-file", "", "rarity table YAML supplying pool sizes")
	simulateCmd.Flags().BoolVar(&simShowProgress, "progress", false, "print progress to stderr")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	copies, err := resolveCopies()
	if err != nil {
		return err
	}

	params := shopsim.Params{
		CopiesByRarity:      copies,
		Players:             simPlayers,
		ShopSize:            simShopSize,
		Stages:              simStages,
		PurchaseSuccessRate: &simPurchaseRate,
		Iterations:          simIterations,
	}
	if simSeed != 0 {
		params.RNG = shopsim.NewSeededRNG(simSeed)
	}
	if simShowProgress {
		params.Progress = func(completed, total int) {
			fmt.Fprintf(os.Stderr, "%d/%d iterations\n", completed, total)
		}
	}

	result := shopsim.Run(params)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode result")
	}
	fmt.Println(string(out))
	return nil
}

func resolveCopies() (map[spirits.Rarity]int, error) {
	if simRarityFile != "" {
		table, err := config.LoadRarityFile(simRarityFile)
		if err != nil {
			return nil, err
		}
		copies := make(map[spirits.Rarity]int, len(table))
		for _, rc := range table {
			copies[rc.Rarity] = rc.Copies
		}
		return copies, nil
	}

	if simCopiesSpec == "" {
		copies := make(map[spirits.Rarity]int)
		for _, rc := range spirits.DefaultRarityConfigs() {
			copies[rc.Rarity] = rc.Copies
		}
		return copies, nil
	}

	return parseCopiesSpec(simCopiesSpec)
}

func parseCopiesSpec(spec string) (map[spirits.Rarity]int, error) {
	copies := make(map[spirits.Rarity]int)
	for _, pair := range strings.Split(spec, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return nil, errors.InvalidArgumentf("malformed copies entry %q, want rarity=count", pair)
		}
		rarity := spirits.Rarity(key)
		if !rarity.IsValid() {
			return nil, errors.InvalidArgumentf("unknown rarity %q", key)
		}
		count, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.InvalidArgumentf("bad count for %s: %v", key, err)
		}
		copies[rarity] = count
	}
	return copies, nil
}
