package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/sadopc/folio/internal/core/catalog"
	"github.com/sadopc/folio/internal/core/filter"
	"github.com/sadopc/folio/internal/ui/view"
)

func listCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	domainFlag := fs.String("domain", filter.All, "Only list projects in this domain")
	featuredFlag := fs.Bool("featured", false, "Only list featured projects")
	outputFlag := fs.String("output", "text", "Output format: text, json, yaml")
	colorFlag := fs.String("color", "auto", "Highlight json and yaml output: auto, always, never")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: folio list [flags]\n\n")
		fmt.Fprintf(stderr, "List projects in catalog order.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  folio list\n")
		fmt.Fprintf(stderr, "  folio list --domain AI/ML\n")
		fmt.Fprintf(stderr, "  folio list --featured --output json\n")
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	switch *outputFlag {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(stderr, "Error: invalid output format %q (must be text, json, or yaml)\n", *outputFlag)
		return 2
	}
	color, err := parseColorMode(*colorFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	engine := filter.New(catalog.Default())
	projects := engine.Apply(*domainFlag)
	if *featuredFlag {
		projects = onlyFeatured(projects)
	}

	if err := writeProjects(stdout, projects, *outputFlag, color.enabled(stdout)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func onlyFeatured(projects []catalog.Project) []catalog.Project {
	out := []catalog.Project{}
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func writeProjects(w io.Writer, projects []catalog.Project, format string, color bool) error {
	switch format {
	case "json":
		return writeJSON(w, projects, color)
	case "yaml":
		data, err := yaml.Marshal(projects)
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		out := string(data)
		if color {
			out = highlight(out, "yaml")
		}
		_, err = io.WriteString(w, out)
		return err
	}

	if len(projects) == 0 {
		return nil
	}
	for _, p := range projects {
		mark := " "
		if p.Featured {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-16s %-11s %s\n", mark, p.ID, p.Domain, p.Title)
	}
	fmt.Fprintf(w, "\n%s\n", english.Plural(len(projects), "project", ""))
	return nil
}

func writeJSON(w io.Writer, v any, color bool) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	out := string(pretty.Pretty(data))
	if color {
		out = highlight(out, "json")
	}
	_, err = io.WriteString(w, out)
	return err
}

func domainsCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("domains", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: folio domains\n\n")
		fmt.Fprintf(stderr, "List project domains in the order they first appear.\n")
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	engine := filter.New(catalog.Default())
	for _, d := range engine.Domains() {
		n := len(engine.Apply(d))
		fmt.Fprintf(stdout, "%-11s %s\n", d, english.Plural(n, "project", ""))
	}
	return 0
}

// detailRecord is the machine-readable form of a project detail.
type detailRecord struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Domain     string        `json:"domain"`
	Highlights []string      `json:"highlights"`
	Tech       []string      `json:"tech"`
	Actions    []view.Action `json:"actions"`
}

func showCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outputFlag := fs.String("output", "text", "Output format: text, json")
	colorFlag := fs.String("color", "auto", "Highlight json output: auto, always, never")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: folio show <id> [flags]\n\n")
		fmt.Fprintf(stderr, "Show one project with its links.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	// Allow flags after the id.
	var positional []string
	for len(args) > 0 {
		if err := fs.Parse(args); err != nil {
			return 2
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		args = fs.Args()[1:]
	}

	if len(positional) != 1 {
		fmt.Fprintf(stderr, "Error: exactly one project id is required\n\n")
		fs.Usage()
		return 2
	}
	switch *outputFlag {
	case "text", "json":
	default:
		fmt.Fprintf(stderr, "Error: invalid output format %q (must be text or json)\n", *outputFlag)
		return 2
	}
	color, err := parseColorMode(*colorFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	p, ok := catalog.Default().Get(positional[0])
	if !ok {
		fmt.Fprintf(stderr, "Error: no project with id %q\n", positional[0])
		return 1
	}
	d := view.NewDetail(p)

	if *outputFlag == "json" {
		rec := detailRecord{
			ID:         d.ID,
			Title:      d.Title,
			Domain:     d.Domain,
			Highlights: d.Highlights,
			Tech:       d.Tech,
		}
		for _, a := range []view.Action{d.Repo, d.Demo} {
			if a.Visible {
				rec.Actions = append(rec.Actions, a)
			}
		}
		if err := writeJSON(stdout, rec, color.enabled(stdout)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	fmt.Fprintf(stdout, "%s\n%s\n\nHighlights:\n", d.Title, d.Domain)
	for _, h := range d.Highlights {
		fmt.Fprintf(stdout, "  • %s\n", h)
	}
	fmt.Fprintf(stdout, "\nTech: %s\n\n", strings.Join(d.Tech, ", "))
	for _, a := range []view.Action{d.Repo, d.Demo} {
		switch {
		case !a.Visible:
		case a.Enabled:
			fmt.Fprintf(stdout, "%s: %s\n", a.Label, a.URL)
		default:
			fmt.Fprintf(stdout, "%s\n", a.Label)
		}
	}
	return 0
}
