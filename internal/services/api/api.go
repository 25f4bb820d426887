// Package api composes the timeclock HTTP surface from its modules
package api

import (
	"timeclock/internal/core/timecalc"
	"timeclock/internal/platform/config"
	"timeclock/internal/platform/logger"
	phttp "timeclock/internal/platform/net/http"
	"timeclock/internal/platform/store"
	"timeclock/internal/platform/tokens"

	"timeclock/internal/modkit"
	"timeclock/internal/modkit/httpkit"
	"timeclock/internal/modkit/module"
	"timeclock/internal/modkit/swaggerkit"

	adminmod "timeclock/internal/services/api/admin/module"
	attapimod "timeclock/internal/services/api/attendance/module"
	authmod "timeclock/internal/services/api/auth/module"
	metamod "timeclock/internal/services/api/meta/module"

	// Headless modules own the domain ports the API modules consume
	attmod "timeclock/internal/services/attendance/module"
	rollupmod "timeclock/internal/services/rollup/module"
	rostermod "timeclock/internal/services/roster/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
	}

	// fixed-offset metrics engine, shared by every consumer so work dates agree
	engine := timecalc.NewWithOffset(opt.Config.MayInt("TZ_OFFSET_HOURS", 8))

	// bearer token codec plus the auth seam the protected surfaces mount
	codec := tokens.New(opt.Config.Prefix("AUTH_"))
	authPort := httpkit.NewPortFunc(func(raw string) (string, string, error) {
		claims, err := codec.Verify(raw)
		if err != nil {
			return "", "", err
		}
		return claims.UID, claims.Role, nil
	})

	// Construct the headless modules first and extract their ports
	roster := rostermod.New(deps)
	rosterPorts := module.MustPortsOf[rostermod.Ports](roster)

	rollup := rollupmod.New(deps, rosterPorts.Users)
	rollupPorts := module.MustPortsOf[rollupmod.Ports](rollup)

	attendance := attmod.New(deps, attmod.Options{
		Users:   rosterPorts.Users,
		Rollup:  rollupPorts.Aggregator,
		Reports: rollupPorts.Reports,
		Engine:  engine,
	})
	attPorts := module.MustPortsOf[attmod.Ports](attendance)

	mods := []module.Module{
		roster,
		rollup,
		attendance,
		metamod.New(deps),
		authmod.New(deps, modkit.WithPorts(authmod.Ports{
			Accounts: rosterPorts.Accounts,
			Codec:    codec,
			Auth:     authPort,
		})),
		attapimod.New(deps, modkit.WithPorts(attapimod.Ports{
			Punches: attPorts.Punches,
			Reports: rollupPorts.Reports,
			Auth:    authPort,
		})),
		adminmod.New(deps, modkit.WithPorts(adminmod.Ports{
			Editor:  attPorts.Admin,
			Roster:  rosterPorts.Admin,
			Reports: rollupPorts.Reports,
			Auth:    authPort,
		})),
	}

	// everything mounts at the root behind the common middleware stack
	httpkit.MountRoot(r, httpkit.CommonStack(), func(root httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(root)
		}
	})
}
