// Package flagx extracts a known subset of command-line flags so several
// configuration layers can parse os.Args without tripping over each other.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs keeps only the flags named in allowedFlags together with their
// values. Both "-c conf.json" and "-c=conf.json" forms are recognised; a token
// starting with "-" is never taken as a value.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, found := strings.Cut(arg, "="); found && strings.HasPrefix(arg, "-") {
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; !ok {
			continue
		}
		filtered = append(filtered, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			filtered = append(filtered, args[i+1])
			i++
		}
	}
	return filtered
}

// SourceFiles returns the JSON config path (-c / -config) and the dotenv
// path (-e / -env) given on the command line. Missing flags yield "".
func SourceFiles() (jsonFile, envFile string) {
	args := FilterArgs(os.Args[1:], []string{"-c", "-config", "-e", "-env"})

	fs := flag.NewFlagSet("sources", flag.ContinueOnError)
	fs.StringVar(&jsonFile, "config", "", "Path to config file")
	fs.StringVar(&jsonFile, "c", "", "Path to config file (short)")
	fs.StringVar(&envFile, "env", "", "Path to .env file")
	fs.StringVar(&envFile, "e", "", "Path to .env file (short)")
	_ = fs.Parse(args)

	return jsonFile, envFile
}
