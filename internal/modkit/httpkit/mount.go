package httpkit

import (
	"net/http"
)

// MountRoot opens a router group at the server root, applies any per-scope
// middleware, then invokes mount to register routes on that scoped router
//
// example:
//
//	httpkit.MountRoot(r, httpkit.CommonStack(), func(root httpkit.Router) {
//	  attendance.MountRoutes(root)
//	})
func MountRoot(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	r.Group(func(root Router) {
		if len(mw) > 0 {
			root.Use(mw...)
		}
		mount(root)
	})
}
