// Package flagx lets several flag sets share one command line: each set picks
// out its own flags and ignores everything else.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the arguments of args that belong to the named flags.
// Names are given without dashes and match both -name and --name. A value
// may be joined with '=' or follow as the next argument; a following
// argument that starts with '-' is not taken as a value.
func FilterArgs(args []string, names ...string) []string {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		name, _, joined := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !known[name] {
			continue
		}

		filtered = append(filtered, arg)
		if !joined && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// Parse parses into fs only the arguments of flags that fs defines.
func Parse(fs *flag.FlagSet, args []string) error {
	var names []string
	fs.VisitAll(func(f *flag.Flag) { names = append(names, f.Name) })
	return fs.Parse(FilterArgs(args, names...))
}

// ConfigFileFlag returns the value of -c or -config in args, or "". The file
// may be JSON or YAML.
func ConfigFileFlag(args []string) string {
	var config string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = Parse(fs, args)

	return config
}
