package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/arcspirits/spirits-api/internal/config"
	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
	"github.com/arcspirits/spirits-api/internal/orchestrators/catalog"
	"github.com/arcspirits/spirits-api/internal/pkg/clock"
	"github.com/arcspirits/spirits-api/internal/pkg/idgen"
	redisclient "github.com/arcspirits/spirits-api/internal/redis"
	cardrepo "github.com/arcspirits/spirits-api/internal/repositories/card"
	monsterrepo "github.com/arcspirits/spirits-api/internal/repositories/monster"
)

var (
	seedConfigPath string
	seedFile       string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a catalog YAML file into redis",
	Long:  `Seed creates every monster and card from a YAML catalog file through the regular catalog validation.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedConfigPath, "config", "", "path to config file (defaults apply when empty)")
	seedCmd.Flags().StringVar(&seedFile, "file", "", "catalog YAML file to load")
	_ = seedCmd.MarkFlagRequired("file")
}

// seedMonster mirrors the monster fields a catalog file may set.
type seedMonster struct {
	Name          string         `yaml:"name"`
	Rarity        spirits.Rarity `yaml:"rarity"`
	ShopTakeLimit int            `yaml:"shop_take_limit"`
	Count         int            `yaml:"count"`
	StageMin      int            `yaml:"stage_min"`
	StageMax      int            `yaml:"stage_max"`
	Lore          string         `yaml:"lore"`
	ArtRef        string         `yaml:"art_ref"`
	Strength      int            `yaml:"strength"`
}

// seedCard mirrors the card fields a catalog file may set.
type seedCard struct {
	Name   string           `yaml:"name"`
	Kind   spirits.CardKind `yaml:"kind"`
	Rarity spirits.Rarity   `yaml:"rarity"`
	Cost   int              `yaml:"cost"`
	Copies int              `yaml:"copies"`
	Effect string           `yaml:"effect"`
	ArtRef string           `yaml:"art_ref"`
}

type seedCatalog struct {
	Monsters []seedMonster `yaml:"monsters"`
	Cards    []seedCard    `yaml:"cards"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}
	defer func() { _ = logger.Sync() }()

	data, err := os.ReadFile(seedFile) // #nosec G304 // path comes from the operator
	if err != nil {
		return errors.Wrapf(err, "failed to read seed file %s", seedFile)
	}

	var doc seedCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse seed file")
	}
	if len(doc.Monsters) == 0 && len(doc.Cards) == 0 {
		return errors.InvalidArgument("seed file has no monsters or cards")
	}

	cfg, err := config.Load(seedConfigPath)
	if err != nil {
		return err
	}

	client, err := redisclient.NewClient(cfg.Redis.Endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create redis client")
	}
	defer func() { _ = client.Close() }()

	clk := clock.New()

	monsterRepo, err := monsterrepo.NewRedis(&monsterrepo.Config{Client: client, Clock: clk})
	if err != nil {
		return err
	}
	cardRepo, err := cardrepo.NewRedis(&cardrepo.Config{Client: client, Clock: clk})
	if err != nil {
		return err
	}

	catalogService, err := catalog.NewOrchestrator(&catalog.Config{
		MonsterRepo: monsterRepo,
		CardRepo:    cardRepo,
		IDGenerator: idgen.NewUUID("mon"),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	for _, m := range doc.Monsters {
		out, createErr := catalogService.CreateMonster(ctx, &catalog.CreateMonsterInput{
			Name:          m.Name,
			Rarity:        m.Rarity,
			ShopTakeLimit: m.ShopTakeLimit,
			Count:         m.Count,
			StageMin:      m.StageMin,
			StageMax:      m.StageMax,
			Lore:          m.Lore,
			ArtRef:        m.ArtRef,
			Strength:      m.Strength,
		})
		if createErr != nil {
			return errors.Wrapf(createErr, "failed to seed monster %q", m.Name)
		}
		logger.Info("seeded monster", zap.String("id", out.Monster.ID), zap.String("name", m.Name))
	}

	for _, c := range doc.Cards {
		out, createErr := catalogService.CreateCard(ctx, &catalog.CreateCardInput{
			Name:   c.Name,
			Kind:   c.Kind,
			Rarity: c.Rarity,
			Cost:   c.Cost,
			Copies: c.Copies,
			Effect: c.Effect,
			ArtRef: c.ArtRef,
		})
		if createErr != nil {
			return errors.Wrapf(createErr, "failed to seed card %q", c.Name)
		}
		logger.Info("seeded card", zap.String("id", out.Card.ID), zap.String("name", c.Name))
	}

	logger.Info("seed complete",
		zap.Int("monsters", len(doc.Monsters)),
		zap.Int("cards", len(doc.Cards)))
	return nil
}
