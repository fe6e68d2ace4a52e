package catalog

import "github.com/dmagro/ethrpc/jsonrpc"

// mustAddParam appends v to req. Every catalog constructor builds its
// parameters from this package's own wire value types, which always
// marshal; a failure here means a type stopped being what it claims to
// be, not a problem the caller caused.
func mustAddParam(req *jsonrpc.Request, v any) {
	if err := req.AddParam(v); err != nil {
		panic("catalog: parameter failed to marshal: " + err.Error())
	}
}
