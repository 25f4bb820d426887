// Command timeclock-rebuild reconciles daily summaries from the attendance
// rows themselves. The upsert path the live API uses is order-sensitive;
// running this periodically (or after incidents) restores the authoritative
// rollups for a date range
package main

import (
	"context"
	"flag"

	"timeclock/internal/modkit"
	"timeclock/internal/modkit/module"
	"timeclock/internal/platform/config"
	"timeclock/internal/platform/logger"
	"timeclock/internal/platform/store"

	rebuildmod "timeclock/internal/services/rebuild/module"
	rollupmod "timeclock/internal/services/rollup/module"
	rostermod "timeclock/internal/services/roster/module"
)

func main() {
	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	rebCfg := root.Prefix("REBUILD_")

	l := logger.Get()
	st, err := store.Open(context.Background(), store.Config{
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// flags win; REBUILD_* env fills the gaps so cron jobs need no argv
	var (
		fStart = flag.String("start", rebCfg.MayString("START", ""), "start date YYYY-MM-DD (inclusive)")
		fEnd   = flag.String("end", rebCfg.MayString("END", ""), "end date YYYY-MM-DD (inclusive)")
		fUID   = flag.String("uid", rebCfg.MayString("UID", ""), "rebuild a single user (default: everyone)")
	)
	flag.Parse()

	if *fStart == "" || *fEnd == "" {
		l.Panic().Msg("must provide -start and -end (or REBUILD_START / REBUILD_END)")
	}

	// Shared deps for modules
	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	roster := rostermod.New(deps)
	rosterPorts := module.MustPortsOf[rostermod.Ports](roster)

	rollup := rollupmod.New(deps, rosterPorts.Users)
	rollupPorts := module.MustPortsOf[rollupmod.Ports](rollup)

	reb := rebuildmod.New(deps, rosterPorts.Users, rollupPorts.Aggregator)

	module.Register(roster.Name(), roster.Ports())
	module.Register(rollup.Name(), rollup.Ports())
	module.Register(reb.Name(), reb.Ports())

	ctx := context.Background()
	rebPorts := reb.Ports().(rebuildmod.Ports)

	report, err := rebPorts.Runner.RunRange(ctx, *fStart, *fEnd, *fUID)
	if err != nil {
		l.Fatal().Err(err).Msg("rebuild failed")
	}
	l.Info().
		Int("users", report.Users).
		Int("days", report.Days).
		Int("rebuilt", report.Rebuilt).
		Msg("rebuild complete")
}
