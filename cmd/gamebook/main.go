// Package main provides an interactive gamebook player. It loads a book and
// its series data, walks sections, and persists progress to named save slots
// when a profile is supplied.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hennsa/Aon-sub000/internal/config"
	"github.com/hennsa/Aon-sub000/internal/game/book"
	"github.com/hennsa/Aon-sub000/internal/game/character"
	"github.com/hennsa/Aon-sub000/internal/game/combat"
	"github.com/hennsa/Aon-sub000/internal/game/dice"
	"github.com/hennsa/Aon-sub000/internal/game/engine"
	"github.com/hennsa/Aon-sub000/internal/game/rules"
	"github.com/hennsa/Aon-sub000/internal/game/series"
	"github.com/hennsa/Aon-sub000/internal/observability"
	"github.com/hennsa/Aon-sub000/internal/storage/postgres"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	bookPath := flag.String("book", "", "path to a book JSON file (required)")
	profileName := flag.String("profile", "", "profile name; empty = no persistence")
	slot := flag.String("slot", "slot-1", "save slot name")
	flag.Parse()

	if *bookPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	b, err := book.LoadFromFile(*bookPath)
	if err != nil {
		logger.Fatal("loading book", zap.Error(err))
	}

	catalogs, tables := series.DirLoaders(cfg.Content.DataDir)
	reg := series.NewRegistry(catalogs, tables)

	src := dice.NewCryptoSource()
	eng, err := engine.New(reg, src, logger)
	if err != nil {
		logger.Fatal("creating engine", zap.Error(err))
	}

	var saves *postgres.SaveRepository
	var profileID int64
	if *profileName != "" {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("connecting to database", zap.Error(err))
		}
		defer pool.Close()

		profileID, err = openProfile(ctx, pool, *profileName)
		if err != nil {
			logger.Fatal("opening profile", zap.Error(err))
		}
		saves = postgres.NewSaveRepository(pool.DB())
	}

	state, err := openState(ctx, saves, profileID, *slot, b, src)
	if err != nil {
		logger.Fatal("opening game state", zap.Error(err))
	}

	logger.Info("session started",
		zap.String("book", b.ID),
		zap.String("series", b.SeriesID),
		zap.String("section", state.SectionID),
		zap.Duration("startup", time.Since(start)),
	)

	play(ctx, eng, b, state, saves, profileID, *slot, logger)
}

// openProfile authenticates the named profile, creating it on first use.
// The passphrase is read from GAMEBOOK_PASSPHRASE.
func openProfile(ctx context.Context, pool *postgres.Pool, name string) (int64, error) {
	passphrase := os.Getenv("GAMEBOOK_PASSPHRASE")
	if passphrase == "" {
		return 0, errors.New("GAMEBOOK_PASSPHRASE must be set when using a profile")
	}

	repo := postgres.NewProfileRepository(pool.DB())
	p, err := repo.Authenticate(ctx, name, passphrase)
	if errors.Is(err, postgres.ErrProfileNotFound) {
		p, err = repo.Create(ctx, name, passphrase)
	}
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// openState resumes the save slot when one exists, otherwise rolls a fresh
// character at the book's first section.
func openState(ctx context.Context, saves *postgres.SaveRepository, profileID int64, slot string, b *book.Book, src dice.Source) (*character.GameState, error) {
	if saves != nil {
		s, err := saves.Get(ctx, profileID, slot)
		if err == nil {
			if s.State.BookID != b.ID {
				return nil, fmt.Errorf("slot %q holds progress for book %q", slot, s.State.BookID)
			}
			return &s.State, nil
		}
		if !errors.Is(err, postgres.ErrSaveNotFound) {
			return nil, err
		}
	}

	ch := character.Character{
		Name:        "Adventurer",
		CombatSkill: 10 + dice.RollDigit(src),
		Endurance:   20 + dice.RollDigit(src),
	}
	return character.NewGameState(b.ID, b.SeriesID, b.Sections[0].ID, ch), nil
}

func play(ctx context.Context, eng *engine.Engine, b *book.Book, state *character.GameState, saves *postgres.SaveRepository, profileID int64, slot string, logger *zap.Logger) {
	rctx := rules.NewContext(state)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		sec, ok := b.Section(state.SectionID)
		if !ok {
			fmt.Printf("section %q not found; the story ends here\n", state.SectionID)
			return
		}
		printSection(eng, sec, rctx)

		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "q":
			return
		case "stats":
			printStats(rctx.Character())
		case "fight":
			runCombat(eng, rctx, fields[1:])
		default:
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 1 || n > len(sec.Choices) {
				fmt.Println("enter a choice number, 'fight <name> <cs> <end>', 'stats', or 'quit'")
				continue
			}
			res, err := eng.ApplyChoice(&sec.Choices[n-1], rctx)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			if !res.Taken {
				fmt.Println("you do not meet the requirements for that choice")
				continue
			}
			if res.Roll >= 0 {
				fmt.Printf("you rolled %d\n", res.Roll)
			}
			if rctx.Character().IsDefeated() {
				fmt.Println("your endurance is spent; the adventure is over")
				return
			}
			persist(ctx, saves, profileID, slot, state, logger)
		}
	}
}

func printSection(eng *engine.Engine, sec *book.Section, rctx *rules.Context) {
	if sec.Title != "" {
		fmt.Printf("\n== %s ==\n", sec.Title)
	} else {
		fmt.Printf("\n== %s ==\n", sec.ID)
	}
	for _, blk := range sec.Blocks {
		fmt.Println(blk.Text)
	}
	for i := range sec.Choices {
		ch := &sec.Choices[i]
		marker := " "
		if eval, err := eng.EvaluateChoice(ch, rctx); err == nil && !eval.Available {
			marker = "x"
		}
		fmt.Printf(" %d.%s %s\n", i+1, marker, ch.Text)
	}
}

func printStats(ch *character.Character) {
	fmt.Printf("%s  CS %d (effective %d)  END %d\n",
		ch.Name, ch.CombatSkill, ch.EffectiveCombatSkill(), ch.Endurance)
	for _, d := range ch.Disciplines {
		fmt.Printf("  discipline: %s\n", d)
	}
	for _, it := range ch.Inventory.Items {
		fmt.Printf("  item: %s (%s)\n", it.Name, it.Category)
	}
}

// runCombat fights an ad-hoc enemy round by round until one side is defeated.
func runCombat(eng *engine.Engine, rctx *rules.Context, args []string) {
	if len(args) != 3 {
		fmt.Println("usage: fight <name> <combat-skill> <endurance>")
		return
	}
	cs, err1 := strconv.Atoi(args[1])
	end, err2 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil {
		fmt.Println("usage: fight <name> <combat-skill> <endurance>")
		return
	}
	enemy := combat.Enemy{Name: args[0], CombatSkill: cs, Endurance: end}

	for {
		res, err := eng.ResolveCombatRound(rctx, enemy, eng.RollRandomNumber())
		if err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
		rctx.Character().ApplyEnduranceDamage(res.PlayerLoss)
		enemy.Endurance = res.EnemyEndurance

		fmt.Printf("ratio %+d, roll %d: you lose %d, %s loses %d (you %d, %s %d)\n",
			res.Ratio, res.Roll, res.PlayerLoss, enemy.Name, res.EnemyLoss,
			res.PlayerEndurance, enemy.Name, res.EnemyEndurance)

		if res.PlayerDefeated {
			fmt.Println("you have been defeated")
			return
		}
		if res.EnemyDefeated {
			fmt.Printf("%s is defeated\n", enemy.Name)
			return
		}
	}
}

func persist(ctx context.Context, saves *postgres.SaveRepository, profileID int64, slot string, state *character.GameState, logger *zap.Logger) {
	if saves == nil {
		return
	}
	if _, err := saves.Put(ctx, profileID, slot, *state); err != nil {
		logger.Warn("saving progress", zap.Error(err))
		return
	}
	if err := saves.SetActive(ctx, profileID, state.SeriesID, slot); err != nil {
		logger.Warn("marking active save", zap.Error(err))
	}
}
