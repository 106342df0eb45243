// Package reconcile compares the ported-number reference set with live HLR
// lookups and decides whether drift must be alerted.
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Normalizer: converts a provider-shaped lookup response into a Record
//    holding only network_id and owner_id. Missing or non-string values
//    become nil; it never fails.
//
// 2. Diff: compares a reference Group with a live Group and returns one
//    Discrepancy per mismatched field, in reference key order and with
//    network_id before owner_id. A number absent from live compares as nil.
//
// 3. Engine: for each group, in order, fetches live data through a Fetcher,
//    normalizes it, diffs it and records whether the group matched. When any
//    group differs, the discrepancy lines of every mismatched group are joined
//    into a single alert body and handed to the AlertSender exactly once.
//
// # Failure Handling
//
//   - A failed lookup for one number yields an all-nil live record for that
//     number only.
//   - A failed batch for a group leaves the whole live group empty, so every
//     non-nil reference field is reported, and the group never matches.
//   - A failed alert delivery is logged and reported, never retried, and does
//     not change the run result.
//
// # Usage Example
//
//	engine := reconcile.NewEngine(hlrClient, smsSender, reconcile.DefaultNormalizer(), logger, nil)
//	report, err := engine.Run(ctx, referenceSet, reconcile.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Results)
package reconcile
