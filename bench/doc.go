// Package bench measures cast throughput over generated object sets.
//
// A workload names a hierarchy shape and a range of kinds; the runner
// builds that many objects, optionally shuffles them, and times each probe
// (a cast to one target type) over the set. Each probe's sum counts its
// successful casts. Workloads are read from castbench.toml files, and
// results can be recorded in a SQLite history with a Store.
//
//	cfg := bench.DefaultConfig()
//	report, err := bench.NewRunner().Run(ctx, cfg)
package bench
