package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/teamdraw/types"
)

func renderPartition(w io.Writer, p types.Partition, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		return renderTeams(w, p.Teams)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}

		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(p)
	default:
		return fmt.Errorf("unknown output format %q (want text, yaml or json)", format)
	}
}

// renderTeams prints one block per team:
//
//	Team 1 (3)
//	  Anna Nowak      Engineer   Engineering
func renderTeams(w io.Writer, teams []types.Team) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, team := range teams {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "Team %d (%d)\n", team.Number, team.Size())
		for _, m := range team.Members {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", m.DisplayName(), m.Position, m.Department)
		}
	}

	return tw.Flush()
}

func renderLookup(w io.Writer, query string, res types.LookupResult) error {
	var err error
	switch res.Status {
	case types.LookupFound:
		err = renderTeams(w, []types.Team{{Number: res.TeamNumber, Members: res.Members}})
	case types.LookupSuggested:
		var b strings.Builder
		fmt.Fprintf(&b, "No participant named %q. Did you mean:\n", query)
		for _, s := range res.Suggestions {
			fmt.Fprintf(&b, "  %s\t(teamdraw lookup --key %q)\n", s.DisplayName, s.Key)
		}
		_, err = io.WriteString(w, b.String())
	case types.LookupNoMatch:
		_, err = fmt.Fprintf(w, "No participant named %q.\n", query)
	case types.LookupNotPublished:
		_, err = fmt.Fprintln(w, "Teams have not been published yet.")
	}

	return err
}
