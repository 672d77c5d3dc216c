// Package calllog records the SOAP calls received by the mock server so
// tests and the CLI can inspect what a client sent.
//
// It is distinct from operational logging, which goes through log/slog.
//
//	store := calllog.NewMemoryStore(100)
//	handler, _ := soap.NewHandler(cfg, soap.WithCallLog(store))
//	// ... exercise a client against handler ...
//	for _, e := range store.List(&calllog.Filter{Operation: "s1157"}) {
//	    fmt.Println(e.Params["P2"])
//	}
package calllog
