// Package teamdraw splits a roster of people into teams and lets every person
// look up their own team by name.
//
// The allocator balances team sizes (they differ by at most one) and spreads
// each department across as many teams as possible. Once the organizer
// publishes a draw, participants query it by "First Last" or "Last First",
// with accents, case and extra spaces ignored. Unknown names get fuzzy
// suggestions instead of a bare miss.
//
// # Quick Start
//
//	import "github.com/arloliu/teamdraw"
//
//	cfg := teamdraw.DefaultConfig()
//	mgr, err := teamdraw.NewManager(&cfg,
//	    teamdraw.WithRosterSource(source.NewFile("roster.yaml")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := mgr.Draw(ctx, 7); err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := mgr.Publish(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	res := mgr.Lookup(ctx, "lukasz gorski")
//	switch res.Status {
//	case teamdraw.LookupFound:
//	    fmt.Println("team", res.TeamNumber)
//	case teamdraw.LookupSuggested:
//	    fmt.Println("did you mean", res.Suggestions[0].DisplayName)
//	}
//
// # Lifecycle
//
// The organizer moves through three states:
//
//	Idle → Drafted → Published
//
// Draw and Allocate produce a new draft without touching what participants
// see. Publish swaps the draft in atomically; Clear withdraws it.
//
// # Sharing a Draw Across Processes
//
// With WithNATS or WithKeyValue, Publish and Clear are mirrored to a NATS
// JetStream KV bucket and Start follows that bucket, so read-only processes see
// the organizer's draw:
//
//	mgr, _ := teamdraw.NewManager(&cfg, teamdraw.WithNATS(nc))
//	if err := mgr.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer mgr.Stop(context.Background())
//
// See the examples/ directory for complete working examples.
package teamdraw
