// Command courtsplit is a terminal front end for a shared badminton ledger:
// a roster of players, a history of sessions, and equal per-player cost
// shares aggregated by month. All state lives in a local embedded store.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jteoh/courtsplit/internal/service"
	"github.com/jteoh/courtsplit/internal/storage"
	badgerstore "github.com/jteoh/courtsplit/internal/storage/badger"
	"github.com/jteoh/courtsplit/internal/storage/sqlite"
	"github.com/jteoh/courtsplit/pkg/logging"
)

const usage = `Usage: courtsplit <command> [flags]

Roster:
  players                         list the current roster
  add-player <name>               add a player
  remove-player [-y] <index>      remove the player at a roster position

Sessions:
  record -date -court -shuttle -shuttles -players   record a session
  edit <id> [same flags as record]                  edit a session
  delete [-y] <id>                                  delete a session
  history                                           list all sessions

Monthly view:
  months                          list months that have sessions
  monthly <YYYY-MM>               per-player totals for a month
`

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store, err := openStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	state, err := service.Load(ctx, store)
	if err != nil {
		slog.Error("Failed to load ledger", "error", err)
		os.Exit(1)
	}

	roster := service.NewRosterService(state)
	ledger := service.NewLedgerService(state)

	if err := run(ctx, cfg, roster, ledger, os.Args[1], os.Args[2:]); err != nil {
		fail(err)
		os.Exit(1)
	}
}

func openStore(cfg Config) (storage.Store, error) {
	switch cfg.Engine {
	case "sqlite":
		return sqlite.New(cfg.DataPath)
	case "badger":
		return badgerstore.New(cfg.DataPath)
	default:
		return nil, fmt.Errorf("unknown storage engine %q (want sqlite or badger)", cfg.Engine)
	}
}

func run(ctx context.Context, cfg Config, roster *service.RosterService, ledger *service.LedgerService, command string, args []string) error {
	switch command {
	case "players":
		renderRoster(roster.Players())
		return nil

	case "add-player":
		name := strings.Join(args, " ")
		if err := roster.AddPlayer(ctx, name); err != nil {
			return err
		}
		ok("Added %s", strings.TrimSpace(name))
		return nil

	case "remove-player":
		return removePlayer(ctx, roster, args)

	case "record":
		input, err := parseSessionFlags("record", args, service.SessionInput{})
		if err != nil {
			return err
		}
		sess, err := ledger.CreateSession(ctx, input)
		if err != nil {
			return err
		}
		renderSummary(cfg, sess)
		return nil

	case "edit":
		return editSession(ctx, cfg, ledger, args)

	case "delete":
		return deleteSession(ctx, ledger, args)

	case "history":
		renderHistory(cfg, ledger.Sessions())
		return nil

	case "months":
		renderMonths(ledger.Months())
		return nil

	case "monthly":
		if len(args) != 1 {
			return fmt.Errorf("usage: courtsplit monthly <YYYY-MM>")
		}
		renderMonthly(cfg, args[0], ledger.MonthlyTotals(args[0]))
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func removePlayer(ctx context.Context, roster *service.RosterService, args []string) error {
	fs := flag.NewFlagSet("remove-player", flag.ContinueOnError)
	yes := fs.Bool("y", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: courtsplit remove-player [-y] <index>")
	}
	index, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("index must be a number: %q", fs.Arg(0))
	}

	players := roster.Players()
	name := fmt.Sprintf("player %d", index)
	if index >= 0 && index < len(players) {
		name = players[index]
	}
	if !*yes && !confirm(fmt.Sprintf("Remove %s from new sessions?", name)) {
		return nil
	}
	if err := roster.RemovePlayer(ctx, index); err != nil {
		return err
	}
	ok("Removed %s", name)
	return nil
}

func editSession(ctx context.Context, cfg Config, ledger *service.LedgerService, args []string) error {
	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		return fmt.Errorf("usage: courtsplit edit <id> [flags]")
	}
	id := args[0]

	// Prefill from the current record so flags only need to name what changed.
	current, err := ledger.Session(id)
	if err != nil {
		return err
	}
	defaults := service.SessionInput{
		Date:         current.Date,
		CourtCost:    current.CourtCost,
		ShuttleCost:  current.ShuttleCost,
		ShuttlesUsed: current.ShuttlesUsed,
		Participants: current.Participants,
	}

	input, err := parseSessionFlags("edit", args[1:], defaults)
	if err != nil {
		return err
	}
	sess, err := ledger.UpdateSession(ctx, id, input)
	if err != nil {
		return err
	}
	renderSummary(cfg, sess)
	return nil
}

func deleteSession(ctx context.Context, ledger *service.LedgerService, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	yes := fs.Bool("y", false, "skip confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: courtsplit delete [-y] <id>")
	}
	id := fs.Arg(0)

	if !*yes && !confirm("Delete this session?") {
		return nil
	}
	if err := ledger.DeleteSession(ctx, id); err != nil {
		return err
	}
	ok("Deleted %s", id)
	return nil
}

func parseSessionFlags(name string, args []string, defaults service.SessionInput) (service.SessionInput, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	date := fs.String("date", defaults.Date, "session date (YYYY-MM-DD)")
	court := fs.Float64("court", defaults.CourtCost, "court booking cost")
	shuttle := fs.Float64("shuttle", defaults.ShuttleCost, "cost per shuttle")
	shuttles := fs.Float64("shuttles", defaults.ShuttlesUsed, "shuttles used")
	players := fs.String("players", strings.Join(defaults.Participants, ","), "comma-separated player names")
	if err := fs.Parse(args); err != nil {
		return service.SessionInput{}, err
	}

	return service.SessionInput{
		Date:         *date,
		CourtCost:    *court,
		ShuttleCost:  *shuttle,
		ShuttlesUsed: *shuttles,
		Participants: splitPlayers(*players),
	}, nil
}

func splitPlayers(csv string) []string {
	var names []string
	for _, part := range strings.Split(csv, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
